package jobs

import (
	"context"
	"time"
)

// Repo persists job descriptions scoped to a user.
type Repo interface {
	Create(ctx context.Context, job JobDescription) error
	Get(ctx context.Context, userID, id string) (JobDescription, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error)
	Delete(ctx context.Context, userID, id string) error
	MarkApplied(ctx context.Context, userID, id, resumeID string, at time.Time) error
}
