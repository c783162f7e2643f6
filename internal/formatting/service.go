package formatting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/latex"
	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/templates"
)

const (
	formatTemperature = 0.3
	formatMaxTokens   = 2048
	latexTemperature  = 0.3
	latexMaxTokens    = 4000
)

// TemplateCatalog is the part of the template service formatting uses.
type TemplateCatalog interface {
	Get(id string) (templates.Template, error)
	Render(id string, fields map[string]string) (string, error)
}

// ResumeReader loads a user's generated resume.
type ResumeReader interface {
	Get(ctx context.Context, userID, id string) (resumes.Resume, error)
}

// Models names the LLM used by each formatting feature.
type Models struct {
	Format string
	Latex  string
}

// Service turns resume text into LaTeX and PDFs.
type Service struct {
	Repo      Repo
	Templates TemplateCatalog
	Resumes   ResumeReader
	LLM       llm.Client
	Compiler  latex.PDFCompiler
	Models    Models
	Now       func() time.Time
}

// NewService builds a Service.
func NewService(repo Repo, catalog TemplateCatalog, resumeReader ResumeReader, client llm.Client, compiler latex.PDFCompiler, models Models) *Service {
	return &Service{
		Repo:      repo,
		Templates: catalog,
		Resumes:   resumeReader,
		LLM:       client,
		Compiler:  compiler,
		Models:    models,
		Now:       time.Now,
	}
}

// FormatResult is the LLM's fill of a catalog template.
type FormatResult struct {
	FormattedContent string `json:"formattedContent"`
	TemplateID       string `json:"templateId"`
}

// FormatWithTemplate asks the LLM to fill the catalog template with resume content.
func (s *Service) FormatWithTemplate(ctx context.Context, resumeContent, templateID string) (FormatResult, error) {
	if strings.TrimSpace(resumeContent) == "" || strings.TrimSpace(templateID) == "" {
		return FormatResult{}, fmt.Errorf("%w: Missing required fields", ErrInvalidInput)
	}
	tpl, err := s.Templates.Get(templateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) || errors.Is(err, templates.ErrInvalidInput) {
			return FormatResult{}, fmt.Errorf("%w: Invalid template ID", ErrInvalidInput)
		}
		return FormatResult{}, err
	}
	prompt, err := prompts.TemplateFormatting(tpl.ID, resumeContent, tpl.LatexTemplate)
	if err != nil {
		return FormatResult{}, fmt.Errorf("%w: Invalid template ID", ErrInvalidInput)
	}
	completion, err := s.LLM.Complete(ctx, llm.Request{
		Model:       s.Models.Format,
		System:      prompt.System,
		User:        prompt.User,
		Temperature: formatTemperature,
		MaxTokens:   formatMaxTokens,
		Feature:     "template_format",
	})
	if err != nil {
		return FormatResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	content := prompts.StripCodeFences(completion.Content)
	if content == "" {
		return FormatResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, llm.ErrEmptyCompletion)
	}
	return FormatResult{FormattedContent: content, TemplateID: tpl.ID}, nil
}

// GenerateLatexInput selects the resume text by stored id or inline content.
type GenerateLatexInput struct {
	ResumeID      string
	ResumeContent string
	Style         string
}

// LatexResult is a generated LaTeX document. Saved is set when the document
// was produced from a stored resume and persisted.
type LatexResult struct {
	LatexContent string
	Style        string
	Saved        *FormattedResume
}

// GenerateLatex asks the LLM for a full LaTeX document in the requested style.
func (s *Service) GenerateLatex(ctx context.Context, userID string, in GenerateLatexInput) (LatexResult, error) {
	if strings.TrimSpace(userID) == "" {
		return LatexResult{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	content := in.ResumeContent
	var source *resumes.Resume
	if id := strings.TrimSpace(in.ResumeID); id != "" {
		res, err := s.Resumes.Get(ctx, userID, id)
		if err != nil {
			if errors.Is(err, resumes.ErrNotFound) {
				return LatexResult{}, ErrResumeNotFound
			}
			return LatexResult{}, err
		}
		source = &res
		content = res.Content
	}

	prompt, err := prompts.LatexDocument(in.Style, content)
	if err != nil {
		return LatexResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	completion, err := s.LLM.Complete(ctx, llm.Request{
		Model:       s.Models.Latex,
		System:      prompt.System,
		User:        prompt.User,
		Temperature: latexTemperature,
		MaxTokens:   latexMaxTokens,
		Feature:     "latex_document",
	})
	if err != nil {
		return LatexResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	doc := prompts.CleanLatexDocument(completion.Content)
	if doc == "" {
		return LatexResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, llm.ErrEmptyCompletion)
	}

	result := LatexResult{LatexContent: doc, Style: in.Style}
	if source == nil {
		return result, nil
	}

	now := s.now()
	fr := FormattedResume{
		ID:               FormattedID(source.ID, in.Style, now),
		UserID:           userID,
		OriginalResumeID: source.ID,
		LatexContent:     doc,
		Template:         in.Style,
		Title:            resumeTitle(*source),
		CreatedAt:        now,
	}
	if err := s.Repo.Create(ctx, fr); err != nil {
		return LatexResult{}, err
	}
	telemetry.Info("formatting.saved", map[string]any{
		"user_id":      userID,
		"resume_id":    source.ID,
		"formatted_id": fr.ID,
		"style":        in.Style,
	})
	result.Saved = &fr
	return result, nil
}

func resumeTitle(r resumes.Resume) string {
	switch {
	case r.JobTitle != "" && r.CompanyName != "":
		return r.JobTitle + " at " + r.CompanyName
	case r.JobTitle != "":
		return r.JobTitle
	default:
		return "Resume " + r.ID
	}
}

// RenderTemplate fills a catalog template deterministically with escaped fields.
func (s *Service) RenderTemplate(templateID string, fields map[string]string) (string, error) {
	if strings.TrimSpace(templateID) == "" {
		return "", fmt.Errorf("%w: templateId is required", ErrInvalidInput)
	}
	out, err := s.Templates.Render(templateID, fields)
	if err != nil {
		switch {
		case errors.Is(err, templates.ErrNotFound):
			return "", ErrTemplateNotFound
		case errors.Is(err, templates.ErrInvalidInput):
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return "", err
	}
	return out, nil
}

// List returns the user's formatted resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]FormattedResume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("%w: invalid pagination", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Get returns one formatted resume.
func (s *Service) Get(ctx context.Context, userID, id string) (FormattedResume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return FormattedResume{}, fmt.Errorf("%w: userId and id are required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, userID, id)
}

// RenderPDF compiles a stored formatted resume.
func (s *Service) RenderPDF(ctx context.Context, userID, id string) ([]byte, FormattedResume, error) {
	fr, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, FormattedResume{}, err
	}
	pdf, err := s.Compiler.Compile(ctx, fr.LatexContent)
	if err != nil {
		return nil, FormattedResume{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return pdf, fr, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
