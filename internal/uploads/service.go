package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

const (
	// MaxFileBytes caps multipart uploads.
	MaxFileBytes int64 = 10 << 20
	// MaxTextBytes caps pasted text uploads.
	MaxTextBytes = 1 << 20

	defaultTextName = "Pasted text"
)

// Service stores uploads and their extracted text.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	MaxBytes int64
	Now      func() time.Time
}

// NewService builds a Service with the default size limit.
func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store, MaxBytes: MaxFileBytes, Now: time.Now}
}

// UploadFile saves the file to object storage, extracts its text and
// records the upload. Nothing is stored for unsupported or unreadable files.
func (s *Service) UploadFile(ctx context.Context, userID, fileName string, r io.Reader) (Upload, error) {
	if strings.TrimSpace(userID) == "" {
		return Upload{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if _, err := util.SanitizeFileName(fileName); err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.MaxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.MaxBytes {
		return Upload{}, ErrTooLarge
	}
	if len(data) == 0 {
		return Upload{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	mimeType := DetectMimeType(data, fileName)
	content, err := ExtractText(data, mimeType)
	if err != nil {
		telemetry.Warn("uploads.extract_failed", map[string]any{
			"user_id":   userID,
			"mime_type": mimeType,
			"error":     err,
		})
		return Upload{}, err
	}

	key, size, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Upload{}, fmt.Errorf("save object: %w", err)
	}

	u := Upload{
		ID:         uuid.NewString(),
		UserID:     userID,
		Kind:       KindFile,
		Name:       fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: key,
		Content:    content,
		CreatedAt:  s.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		s.removeObject(ctx, key)
		return Upload{}, err
	}
	return u, nil
}

// SaveText records pasted resume text without touching object storage.
func (s *Service) SaveText(ctx context.Context, userID, name, content string) (Upload, error) {
	if strings.TrimSpace(userID) == "" {
		return Upload{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	content = normalizeText(content)
	if content == "" {
		return Upload{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if len(content) > MaxTextBytes {
		return Upload{}, ErrTooLarge
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultTextName
	}
	u := Upload{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      KindText,
		Name:      name,
		MimeType:  mimePlain,
		SizeBytes: int64(len(content)),
		Content:   content,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return Upload{}, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Upload, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) Get(ctx context.Context, userID, id string) (Upload, error) {
	return s.Repo.Get(ctx, userID, id)
}

// Open streams the stored file of a file upload.
func (s *Service) Open(ctx context.Context, userID, id string) (Upload, io.ReadCloser, error) {
	u, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return Upload{}, nil, err
	}
	if u.Kind != KindFile || u.StorageKey == "" {
		return Upload{}, nil, ErrNotFound
	}
	rc, err := s.Store.Open(ctx, u.StorageKey)
	if err != nil {
		return Upload{}, nil, err
	}
	return u, rc, nil
}

// Delete removes the record, then its object. A failed object delete is
// logged; the record is already gone.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	u, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	if u.StorageKey != "" {
		s.removeObject(ctx, u.StorageKey)
	}
	return nil
}

func (s *Service) removeObject(ctx context.Context, key string) {
	if err := s.Store.Delete(ctx, key); err != nil {
		telemetry.Warn("uploads.object_delete_failed", map[string]any{"key": key, "error": err})
	}
}
