package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/jobs"
	"resume-builder/internal/latex"
	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
	"resume-builder/internal/shared/telemetry"
)

const (
	generationTemperature = 0.3
	generationMaxTokens   = 1500
)

// JobLookup resolves a saved job description for the user.
type JobLookup interface {
	Get(ctx context.Context, userID, id string) (jobs.JobDescription, error)
}

// Service generates, stores and renders resumes.
type Service struct {
	Repo     Repo
	Jobs     JobLookup
	LLM      llm.Client
	Compiler latex.PDFCompiler
	Model    string
	Now      func() time.Time
}

// NewService builds a Service.
func NewService(repo Repo, jobLookup JobLookup, client llm.Client, compiler latex.PDFCompiler, model string) *Service {
	return &Service{
		Repo:     repo,
		Jobs:     jobLookup,
		LLM:      client,
		Compiler: compiler,
		Model:    model,
		Now:      time.Now,
	}
}

// GenerateInput selects the target job either inline or by saved id.
type GenerateInput struct {
	Job *prompts.Job
	// InlineJobID is the id carried on an inline job, stored without lookup.
	InlineJobID string
	JobID       string
	UserData    any
}

// Generate asks the LLM for a resume tailored to the job and stores it.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return Resume{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	job, jobID, err := s.resolveJob(ctx, userID, in)
	if err != nil {
		return Resume{}, err
	}

	prompt, err := prompts.ResumeGeneration(job, in.UserData)
	if err != nil {
		if errors.Is(err, prompts.ErrMissingInput) {
			return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Resume{}, err
	}

	completion, err := s.LLM.Complete(ctx, llm.Request{
		Model:       s.Model,
		System:      prompt.System,
		User:        prompt.User,
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
		Feature:     "resume_generation",
	})
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	content := prompts.CleanResumeContent(completion.Content)
	if content == "" {
		return Resume{}, fmt.Errorf("%w: %v", ErrGenerationFailed, llm.ErrEmptyCompletion)
	}

	model := completion.Model
	if model == "" {
		model = s.Model
	}
	res := Resume{
		ID:             uuid.NewString(),
		UserID:         userID,
		Content:        content,
		JobID:          jobID,
		JobTitle:       job.Title,
		CompanyName:    job.Company,
		JobDescription: job.Description,
		Model:          model,
		Usage:          completion.Usage,
		CreatedAt:      s.now(),
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	telemetry.Info("resume.generated", map[string]any{
		"user_id":      userID,
		"resume_id":    res.ID,
		"job_id":       jobID,
		"model":        model,
		"total_tokens": res.Usage.TotalTokens,
	})
	return res, nil
}

func (s *Service) resolveJob(ctx context.Context, userID string, in GenerateInput) (prompts.Job, string, error) {
	if id := strings.TrimSpace(in.JobID); id != "" {
		if s.Jobs == nil {
			return prompts.Job{}, "", fmt.Errorf("%w: job lookup unavailable", ErrJobNotFound)
		}
		saved, err := s.Jobs.Get(ctx, userID, id)
		if err != nil {
			if errors.Is(err, jobs.ErrNotFound) {
				return prompts.Job{}, "", ErrJobNotFound
			}
			return prompts.Job{}, "", err
		}
		return prompts.Job{Title: saved.Title, Company: saved.Company, Description: saved.Description}, saved.ID, nil
	}
	if in.Job == nil {
		return prompts.Job{}, "", fmt.Errorf("%w: jobData or jobId is required", ErrInvalidInput)
	}
	return *in.Job, strings.TrimSpace(in.InlineJobID), nil
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("%w: invalid pagination", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Get returns one of the user's resumes.
func (s *Service) Get(ctx context.Context, userID, id string) (Resume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return Resume{}, fmt.Errorf("%w: userId and resumeId are required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, userID, id)
}

// Delete removes one of the user's resumes. Archived advice is kept.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: userId and resumeId are required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, id)
}

// RenderPDF compiles the stored resume text into the plain download document.
func (s *Service) RenderPDF(ctx context.Context, userID, id string) ([]byte, error) {
	res, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(res.Content) == "" {
		return nil, ErrEmptyContent
	}
	pdf, err := s.Compiler.Compile(ctx, latex.WrapPlainDocument(res.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return pdf, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
