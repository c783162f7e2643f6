package advice

import (
	"context"
	"sort"
	"sync"
)

// MemoryArchiveRepo is an in-memory implementation of ArchiveRepo.
type MemoryArchiveRepo struct {
	mu      sync.RWMutex
	entries []ArchiveEntry
}

// NewMemoryArchiveRepo constructs a MemoryArchiveRepo.
func NewMemoryArchiveRepo() *MemoryArchiveRepo {
	return &MemoryArchiveRepo{}
}

func (r *MemoryArchiveRepo) Append(ctx context.Context, entry ArchiveEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryArchiveRepo) ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]ArchiveEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ArchiveEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.UserID == userID && e.ResumeID == resumeID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArchivedAt.After(out[j].ArchivedAt)
	})
	if offset >= len(out) {
		return []ArchiveEntry{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}
