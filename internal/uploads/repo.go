package uploads

import "context"

// Repo persists upload records.
type Repo interface {
	Create(ctx context.Context, u Upload) error
	Get(ctx context.Context, userID, id string) (Upload, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Upload, error)
	Delete(ctx context.Context, userID, id string) error
}
