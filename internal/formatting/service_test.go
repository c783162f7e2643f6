package formatting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/templates"
)

type stubLLM struct {
	content string
	err     error
	reqs    []llm.Request
}

func (s *stubLLM) Complete(_ context.Context, req llm.Request) (llm.Completion, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return llm.Completion{}, s.err
	}
	return llm.Completion{Content: s.content}, nil
}

type stubCompiler struct {
	sources []string
	err     error
}

func (s *stubCompiler) Compile(_ context.Context, source string) ([]byte, error) {
	s.sources = append(s.sources, source)
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-fake"), nil
}

var fixedNow = time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)

func newTestService(t *testing.T, client *stubLLM, compiler *stubCompiler) *Service {
	t.Helper()
	resumeRepo := resumes.NewMemoryRepo()
	if err := resumeRepo.Create(context.Background(), resumes.Resume{
		ID: "r1", UserID: "u1", Content: "Jane Doe\nGo engineer", JobTitle: "Go Dev", CompanyName: "Acme", CreatedAt: fixedNow,
	}); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	catalog := templates.NewService(templates.MustLoadCatalog(), templates.NewMemorySettingsRepo())
	svc := NewService(NewMemoryRepo(), catalog, resumeRepo, client, compiler, Models{Format: "fmt-model", Latex: "latex-model"})
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func TestFormatWithTemplate(t *testing.T) {
	client := &stubLLM{content: "```latex\n\\documentclass{article}\n```"}
	svc := newTestService(t, client, &stubCompiler{})

	out, err := svc.FormatWithTemplate(context.Background(), "Jane Doe", "modern-professional")
	if err != nil {
		t.Fatalf("FormatWithTemplate: %v", err)
	}
	if out.FormattedContent != `\documentclass{article}` || out.TemplateID != "modern-professional" {
		t.Fatalf("unexpected result %#v", out)
	}
	req := client.reqs[0]
	if req.Model != "fmt-model" || req.MaxTokens != 2048 {
		t.Fatalf("unexpected request %#v", req)
	}
	if !strings.Contains(req.User, "{{NAME}}") || !strings.Contains(req.User, "Jane Doe") {
		t.Fatalf("prompt missing template or content")
	}

	for _, tc := range []struct{ content, id string }{{"", "modern-professional"}, {"x", ""}, {"x", "nope"}} {
		if _, err := svc.FormatWithTemplate(context.Background(), tc.content, tc.id); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("FormatWithTemplate(%q, %q) = %v, want ErrInvalidInput", tc.content, tc.id, err)
		}
	}
}

func TestGenerateLatexFromStoredResumePersists(t *testing.T) {
	client := &stubLLM{content: "Here you go:\n\\documentclass{article}\\begin{document}Hi\\end{document}\nEnjoy!"}
	svc := newTestService(t, client, &stubCompiler{})

	out, err := svc.GenerateLatex(context.Background(), "u1", GenerateLatexInput{ResumeID: "r1", Style: "creative"})
	if err != nil {
		t.Fatalf("GenerateLatex: %v", err)
	}
	want := `\documentclass{article}\begin{document}Hi\end{document}`
	if out.LatexContent != want {
		t.Fatalf("latex = %q", out.LatexContent)
	}
	if out.Saved == nil {
		t.Fatal("expected saved formatted resume")
	}
	wantID := "r1_creative_" + "1775369228000"
	if out.Saved.ID != wantID || out.Saved.Title != "Go Dev at Acme" {
		t.Fatalf("unexpected saved record %#v", out.Saved)
	}
	if client.reqs[0].MaxTokens != 4000 || client.reqs[0].Model != "latex-model" {
		t.Fatalf("unexpected request %#v", client.reqs[0])
	}

	stored, err := svc.Get(context.Background(), "u1", wantID)
	if err != nil || stored.LatexContent != want {
		t.Fatalf("stored record mismatch: %v %#v", err, stored)
	}
}

func TestGenerateLatexInlineContentIsNotPersisted(t *testing.T) {
	svc := newTestService(t, &stubLLM{content: `\documentclass{article}`}, &stubCompiler{})
	out, err := svc.GenerateLatex(context.Background(), "u1", GenerateLatexInput{ResumeContent: "text", Style: "academic"})
	if err != nil {
		t.Fatalf("GenerateLatex: %v", err)
	}
	if out.Saved != nil {
		t.Fatalf("inline generation should not persist")
	}
	list, _ := svc.List(context.Background(), "u1", 10, 0)
	if len(list) != 0 {
		t.Fatalf("expected no stored records, got %d", len(list))
	}
}

func TestGenerateLatexErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *stubLLM
		in     GenerateLatexInput
		want   error
	}{
		{name: "unknown style", client: &stubLLM{content: "x"}, in: GenerateLatexInput{ResumeContent: "a", Style: "fancy"}, want: ErrInvalidInput},
		{name: "missing content", client: &stubLLM{content: "x"}, in: GenerateLatexInput{Style: "creative"}, want: ErrInvalidInput},
		{name: "unknown resume", client: &stubLLM{content: "x"}, in: GenerateLatexInput{ResumeID: "zz", Style: "creative"}, want: ErrResumeNotFound},
		{name: "empty output", client: &stubLLM{content: "```latex\n```"}, in: GenerateLatexInput{ResumeContent: "a", Style: "creative"}, want: ErrGenerationFailed},
		{name: "llm error", client: &stubLLM{err: errors.New("boom")}, in: GenerateLatexInput{ResumeContent: "a", Style: "creative"}, want: ErrGenerationFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t, tc.client, &stubCompiler{})
			if _, err := svc.GenerateLatex(context.Background(), "u1", tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	svc := newTestService(t, &stubLLM{}, &stubCompiler{})
	out, err := svc.RenderTemplate("modern-professional", map[string]string{"NAME": "Jane & Co"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !strings.Contains(out, `Jane \& Co`) || strings.Contains(out, "{{NAME}}") {
		t.Fatalf("template not filled with escaped value")
	}
	if _, err := svc.RenderTemplate("nope", nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	compiler := &stubCompiler{}
	svc := newTestService(t, &stubLLM{}, compiler)
	_ = svc.Repo.Create(context.Background(), FormattedResume{ID: "f1", UserID: "u1", LatexContent: `\documentclass{article}`, CreatedAt: fixedNow})

	pdf, fr, err := svc.RenderPDF(context.Background(), "u1", "f1")
	if err != nil || string(pdf) != "%PDF-fake" || fr.ID != "f1" {
		t.Fatalf("RenderPDF: %v %q %#v", err, pdf, fr)
	}
	if compiler.sources[0] != `\documentclass{article}` {
		t.Fatalf("stored latex should compile verbatim")
	}
	if _, _, err := svc.RenderPDF(context.Background(), "u2", "f1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
