package resumes

import (
	"context"
	"encoding/json"
	"time"
)

// Repo persists generated resumes scoped to a user.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	Get(ctx context.Context, userID, id string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	Delete(ctx context.Context, userID, id string) error
	SetAdvice(ctx context.Context, userID, id string, advice json.RawMessage, at time.Time) error
}
