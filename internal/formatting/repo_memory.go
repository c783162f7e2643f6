package formatting

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]FormattedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]FormattedResume)}
}

func (r *MemoryRepo) Create(ctx context.Context, fr FormattedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[fr.ID] = fr
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, userID, id string) (FormattedResume, error) {
	if err := ctx.Err(); err != nil {
		return FormattedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fr, ok := r.data[id]
	if !ok || fr.UserID != userID {
		return FormattedResume{}, ErrNotFound
	}
	return fr, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]FormattedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []FormattedResume
	for _, fr := range r.data {
		if fr.UserID == userID {
			out = append(out, fr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return []FormattedResume{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}
