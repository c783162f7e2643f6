package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/telemetry"
)

// PageExtractor recovers a job posting from a URL.
type PageExtractor interface {
	Extract(ctx context.Context, rawURL string) (Extraction, error)
}

// Service coordinates extraction and job description records.
type Service struct {
	Repo      Repo
	Extractor PageExtractor
	Now       func() time.Time
}

// NewService builds a Service.
func NewService(repo Repo, extractor PageExtractor) *Service {
	return &Service{Repo: repo, Extractor: extractor, Now: time.Now}
}

// ManualInput describes a posting typed in by the user instead of fetched.
type ManualInput struct {
	Title       string
	Company     string
	Description string
	SourceURL   string
}

// Extract fetches and parses a posting without saving it.
func (s *Service) Extract(ctx context.Context, rawURL string) (Extraction, error) {
	return s.Extractor.Extract(ctx, rawURL)
}

// SaveFromURL extracts a posting and stores it for the user.
func (s *Service) SaveFromURL(ctx context.Context, userID, rawURL string) (JobDescription, error) {
	if strings.TrimSpace(userID) == "" {
		return JobDescription{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	ext, err := s.Extractor.Extract(ctx, rawURL)
	if err != nil {
		return JobDescription{}, err
	}
	return s.create(ctx, userID, ext)
}

// SaveManual stores a posting supplied directly by the user.
func (s *Service) SaveManual(ctx context.Context, userID string, in ManualInput) (JobDescription, error) {
	if strings.TrimSpace(userID) == "" {
		return JobDescription{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return JobDescription{}, fmt.Errorf("%w: jobDescription is required", ErrInvalidInput)
	}
	ext := Extraction{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Description: strings.TrimSpace(in.Description),
		SourceURL:   strings.TrimSpace(in.SourceURL),
		ExtractedAt: s.now(),
	}
	if ext.Title == "" {
		ext.Title = defaultTitle
	}
	if ext.Company == "" {
		ext.Company = defaultCompany
	}
	return s.create(ctx, userID, ext)
}

func (s *Service) create(ctx context.Context, userID string, ext Extraction) (JobDescription, error) {
	job := JobDescription{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       ext.Title,
		Company:     ext.Company,
		Description: ext.Description,
		SourceURL:   ext.SourceURL,
		ExtractedAt: ext.ExtractedAt,
		CreatedAt:   s.now(),
	}
	if job.ExtractedAt.IsZero() {
		job.ExtractedAt = job.CreatedAt
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return JobDescription{}, err
	}
	telemetry.Info("jobs.saved", map[string]any{
		"user_id": userID,
		"job_id":  job.ID,
		"source":  job.SourceURL,
	})
	return job, nil
}

// List returns the user's job descriptions, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if limit <= 0 || offset < 0 {
		return nil, fmt.Errorf("%w: invalid pagination", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Get returns one of the user's job descriptions.
func (s *Service) Get(ctx context.Context, userID, id string) (JobDescription, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return JobDescription{}, fmt.Errorf("%w: userId and id are required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, userID, id)
}

// Delete removes one of the user's job descriptions.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: userId and id are required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, id)
}

// MarkApplied records that the user applied to the job, optionally with the resume used.
func (s *Service) MarkApplied(ctx context.Context, userID, id, resumeID string) (JobDescription, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return JobDescription{}, fmt.Errorf("%w: userId and id are required", ErrInvalidInput)
	}
	if err := s.Repo.MarkApplied(ctx, userID, id, strings.TrimSpace(resumeID), s.now()); err != nil {
		return JobDescription{}, err
	}
	return s.Repo.Get(ctx, userID, id)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
