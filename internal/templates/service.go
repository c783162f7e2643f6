package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/latex"
)

// Service exposes the catalog and per-user template settings.
type Service struct {
	Catalog  *Catalog
	Settings SettingsRepo
	Now      func() time.Time
}

// NewService builds a Service over catalog and settings.
func NewService(catalog *Catalog, settings SettingsRepo) *Service {
	return &Service{Catalog: catalog, Settings: settings, Now: time.Now}
}

// List returns every template.
func (s *Service) List() []Template {
	return s.Catalog.List()
}

// Get returns one template by id.
func (s *Service) Get(id string) (Template, error) {
	if strings.TrimSpace(id) == "" {
		return Template{}, fmt.Errorf("%w: templateId is required", ErrInvalidInput)
	}
	return s.Catalog.Get(id)
}

// Render fills the template's placeholders with escaped field values.
func (s *Service) Render(id string, fields map[string]string) (string, error) {
	tpl, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return latex.FillEscaped(tpl.LatexTemplate, fields), nil
}

// GetSetting returns the user's chosen template.
func (s *Service) GetSetting(ctx context.Context, userID string) (Setting, error) {
	if strings.TrimSpace(userID) == "" {
		return Setting{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return s.Settings.Get(ctx, userID)
}

// SaveSetting records templateID as the user's choice. Unknown ids are rejected.
func (s *Service) SaveSetting(ctx context.Context, userID, templateID string) (Setting, error) {
	if strings.TrimSpace(userID) == "" {
		return Setting{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if _, err := s.Catalog.Get(templateID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Setting{}, fmt.Errorf("%w: unknown templateId %q", ErrInvalidInput, templateID)
		}
		return Setting{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	setting := Setting{UserID: userID, TemplateID: strings.TrimSpace(templateID), UpdatedAt: now().UTC()}
	if err := s.Settings.Upsert(ctx, setting); err != nil {
		return Setting{}, err
	}
	return setting, nil
}
