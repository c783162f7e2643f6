package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
	"resume-builder/internal/prompts"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/telemetry"
)

const (
	adviceTemperature = 0.3
	adviceMaxTokens   = 2048
	// MaxHistory caps how many archived versions History returns.
	MaxHistory = 50
)

// ResumeStore is the part of the resume repository advice needs.
type ResumeStore interface {
	Get(ctx context.Context, userID, id string) (resumes.Resume, error)
	SetAdvice(ctx context.Context, userID, id string, advice json.RawMessage, at time.Time) error
}

// Service generates career advice and keeps its version history.
type Service struct {
	Resumes ResumeStore
	Archive ArchiveRepo
	LLM     llm.Client
	Model   string
	Now     func() time.Time
}

// NewService builds a Service.
func NewService(resumeStore ResumeStore, archive ArchiveRepo, client llm.Client, model string) *Service {
	return &Service{Resumes: resumeStore, Archive: archive, LLM: client, Model: model, Now: time.Now}
}

// Generate produces fresh advice for the resume. The advice it replaces is
// archived after the new advice is stored.
func (s *Service) Generate(ctx context.Context, userID, resumeID string) (Version, error) {
	res, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return Version{}, err
	}

	prompt, err := prompts.CareerAdvice(res.Content)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	completion, err := s.LLM.Complete(ctx, llm.Request{
		Model:       s.Model,
		System:      prompt.System,
		User:        prompt.User,
		Temperature: adviceTemperature,
		MaxTokens:   adviceMaxTokens,
		JSON:        true,
		Feature:     "career_advice",
	})
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	parsed, canonical, err := Parse(completion.Content)
	if err != nil {
		telemetry.Warn("advice.invalid_output", map[string]any{
			"user_id":   userID,
			"resume_id": resumeID,
			"error":     err,
		})
		return Version{}, err
	}

	now := s.now()
	if err := s.Resumes.SetAdvice(ctx, userID, resumeID, canonical, now); err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return Version{}, ErrResumeNotFound
		}
		return Version{}, err
	}

	// The replaced advice is archived only once the new advice is current.
	if res.HasAdvice() {
		generatedAt := res.CreatedAt
		if res.AdviceGeneratedAt != nil {
			generatedAt = *res.AdviceGeneratedAt
		}
		entry := ArchiveEntry{
			ID:          uuid.NewString(),
			UserID:      userID,
			ResumeID:    resumeID,
			Advice:      res.Advice,
			GeneratedAt: generatedAt,
			ArchivedAt:  now,
		}
		if err := s.Archive.Append(ctx, entry); err != nil {
			telemetry.Error("advice.archive_failed", map[string]any{
				"user_id":   userID,
				"resume_id": resumeID,
				"error":     err,
			})
			return Version{}, fmt.Errorf("archive advice: %w", err)
		}
	}
	telemetry.Info("advice.generated", map[string]any{
		"user_id":   userID,
		"resume_id": resumeID,
		"archived":  res.HasAdvice(),
	})
	return Version{Offset: 0, Current: true, Advice: parsed, GeneratedAt: now}, nil
}

// Current returns the resume's current advice.
func (s *Service) Current(ctx context.Context, userID, resumeID string) (Version, error) {
	res, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return Version{}, err
	}
	return currentVersion(res)
}

// History returns the current advice followed by archived versions, newest first.
func (s *Service) History(ctx context.Context, userID, resumeID string) ([]Version, error) {
	res, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}
	out := []Version{}
	if res.HasAdvice() {
		cur, err := currentVersion(res)
		if err != nil {
			return nil, err
		}
		out = append(out, cur)
	}
	entries, err := s.Archive.ListByResume(ctx, userID, resumeID, MaxHistory, 0)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		v, err := archivedVersion(e, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Version returns the advice at offset: 0 is current, n is the n-th most
// recently archived entry.
func (s *Service) Version(ctx context.Context, userID, resumeID string, offset int) (Version, error) {
	if offset < 0 {
		return Version{}, fmt.Errorf("%w: offset must be >= 0", ErrInvalidInput)
	}
	if offset == 0 {
		return s.Current(ctx, userID, resumeID)
	}
	if _, err := s.loadResume(ctx, userID, resumeID); err != nil {
		return Version{}, err
	}
	entries, err := s.Archive.ListByResume(ctx, userID, resumeID, 1, offset-1)
	if err != nil {
		return Version{}, err
	}
	if len(entries) == 0 {
		return Version{}, ErrNotFound
	}
	return archivedVersion(entries[0], offset)
}

func (s *Service) loadResume(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return resumes.Resume{}, fmt.Errorf("%w: userId and resumeId are required", ErrInvalidInput)
	}
	res, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, ErrResumeNotFound
		}
		return resumes.Resume{}, err
	}
	return res, nil
}

func currentVersion(res resumes.Resume) (Version, error) {
	if !res.HasAdvice() {
		return Version{}, ErrNotFound
	}
	a, err := decode(res.Advice)
	if err != nil {
		return Version{}, err
	}
	v := Version{Offset: 0, Current: true, Advice: a, GeneratedAt: res.CreatedAt}
	if res.AdviceGeneratedAt != nil {
		v.GeneratedAt = *res.AdviceGeneratedAt
	}
	return v, nil
}

func archivedVersion(e ArchiveEntry, offset int) (Version, error) {
	a, err := decode(e.Advice)
	if err != nil {
		return Version{}, err
	}
	archivedAt := e.ArchivedAt
	return Version{Offset: offset, Advice: a, GeneratedAt: e.GeneratedAt, ArchivedAt: &archivedAt}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
