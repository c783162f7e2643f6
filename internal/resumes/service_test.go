package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/jobs"
	"resume-builder/internal/latex"
	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
)

type recordingLLM struct {
	reqs    []llm.Request
	content string
	err     error
}

func (r *recordingLLM) Complete(_ context.Context, req llm.Request) (llm.Completion, error) {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return llm.Completion{}, r.err
	}
	return llm.Completion{
		Content: r.content,
		Model:   req.Model,
		Usage:   llm.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}, nil
}

type fakeCompiler struct {
	sources []string
	err     error
}

func (f *fakeCompiler) Compile(_ context.Context, source string) ([]byte, error) {
	f.sources = append(f.sources, source)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.5 fake"), nil
}

func newTestService(client llm.Client, compiler latex.PDFCompiler) (*Service, *jobs.MemoryRepo) {
	jobRepo := jobs.NewMemoryRepo()
	svc := NewService(NewMemoryRepo(), jobRepo, client, compiler, "llama-3.3-70b-versatile")
	svc.Now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	return svc, jobRepo
}

func TestGenerateInlineJob(t *testing.T) {
	client := &recordingLLM{content: "Here is a tailored resume for you:\nJane Doe\njane@example.com"}
	svc, _ := newTestService(client, &fakeCompiler{})

	res, err := svc.Generate(context.Background(), "u1", GenerateInput{
		Job:         &prompts.Job{Title: "Go Dev", Company: "Acme", Description: "Write Go"},
		InlineJobID: "job-9",
		UserData:    map[string]any{"name": "Jane Doe"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Content != "Jane Doe\njane@example.com" {
		t.Fatalf("content not cleaned: %q", res.Content)
	}
	if res.JobID != "job-9" || res.JobTitle != "Go Dev" || res.Usage.TotalTokens != 30 {
		t.Fatalf("unexpected resume %#v", res)
	}
	if len(client.reqs) != 1 {
		t.Fatalf("expected one LLM call, got %d", len(client.reqs))
	}
	req := client.reqs[0]
	if req.Temperature != 0.3 || req.MaxTokens != 1500 || req.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected request parameters %#v", req)
	}
	if !strings.Contains(req.User, "Acme") || !strings.Contains(req.User, `"name": "Jane Doe"`) {
		t.Fatalf("prompt missing job or user data: %q", req.User)
	}

	stored, err := svc.Get(context.Background(), "u1", res.ID)
	if err != nil || stored.Content != res.Content {
		t.Fatalf("stored resume mismatch: %v %#v", err, stored)
	}
}

func TestGenerateBySavedJob(t *testing.T) {
	client := &recordingLLM{content: "resume body"}
	svc, jobRepo := newTestService(client, &fakeCompiler{})
	now := time.Now().UTC()
	if err := jobRepo.Create(context.Background(), jobs.JobDescription{
		ID: "j1", UserID: "u1", Title: "SRE", Company: "Initech", Description: "Keep it up", CreatedAt: now, ExtractedAt: now,
	}); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	res, err := svc.Generate(context.Background(), "u1", GenerateInput{JobID: "j1", UserData: map[string]any{"skills": []string{"go"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.JobID != "j1" || res.CompanyName != "Initech" {
		t.Fatalf("unexpected resume %#v", res)
	}

	if _, err := svc.Generate(context.Background(), "u2", GenerateInput{JobID: "j1", UserData: map[string]any{"a": 1}}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for other user, got %v", err)
	}
}

func TestGenerateFailures(t *testing.T) {
	job := &prompts.Job{Title: "Dev", Description: "d"}
	tests := []struct {
		name   string
		client *recordingLLM
		in     GenerateInput
		want   error
	}{
		{name: "no job", client: &recordingLLM{content: "x"}, in: GenerateInput{UserData: map[string]any{"a": 1}}, want: ErrInvalidInput},
		{name: "no user data", client: &recordingLLM{content: "x"}, in: GenerateInput{Job: job}, want: ErrInvalidInput},
		{name: "llm error", client: &recordingLLM{err: errors.New("upstream 500")}, in: GenerateInput{Job: job, UserData: map[string]any{"a": 1}}, want: ErrGenerationFailed},
		{name: "empty completion", client: &recordingLLM{content: "  "}, in: GenerateInput{Job: job, UserData: map[string]any{"a": 1}}, want: ErrGenerationFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(tc.client, &fakeCompiler{})
			if _, err := svc.Generate(context.Background(), "u1", tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			list, _ := svc.List(context.Background(), "u1", 10, 0)
			if len(list) != 0 {
				t.Fatalf("failed generation must not persist, got %d", len(list))
			}
		})
	}
}

func TestRenderPDF(t *testing.T) {
	compiler := &fakeCompiler{}
	svc, _ := newTestService(&recordingLLM{}, compiler)
	ctx := context.Background()
	_ = svc.Repo.Create(ctx, Resume{ID: "r1", UserID: "u1", Content: "R&D lead, 100% uptime", CreatedAt: time.Now()})
	_ = svc.Repo.Create(ctx, Resume{ID: "r2", UserID: "u1", Content: "   ", CreatedAt: time.Now()})

	pdf, err := svc.RenderPDF(ctx, "u1", "r1")
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatalf("unexpected pdf bytes %q", pdf)
	}
	if len(compiler.sources) != 1 || !strings.Contains(compiler.sources[0], `R\&D lead, 100\% uptime`) {
		t.Fatalf("content not escaped into document: %v", compiler.sources)
	}

	if _, err := svc.RenderPDF(ctx, "u1", "r2"); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if _, err := svc.RenderPDF(ctx, "u2", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	compiler.err = latex.ErrCompileFailed
	if _, err := svc.RenderPDF(ctx, "u1", "r1"); !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}
