package templates

import (
	"context"
	"sync"
)

// MemorySettingsRepo is an in-memory implementation of SettingsRepo.
type MemorySettingsRepo struct {
	mu   sync.RWMutex
	data map[string]Setting
}

// NewMemorySettingsRepo constructs a MemorySettingsRepo.
func NewMemorySettingsRepo() *MemorySettingsRepo {
	return &MemorySettingsRepo{data: make(map[string]Setting)}
}

// Get returns the user's setting or ErrNotFound.
func (r *MemorySettingsRepo) Get(ctx context.Context, userID string) (Setting, error) {
	if err := ctx.Err(); err != nil {
		return Setting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[userID]
	if !ok {
		return Setting{}, ErrNotFound
	}
	return s, nil
}

// Upsert replaces the user's setting.
func (r *MemorySettingsRepo) Upsert(ctx context.Context, setting Setting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[setting.UserID] = setting
	return nil
}
