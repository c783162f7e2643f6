package formatting

import "context"

// Repo persists formatted resumes scoped to a user.
type Repo interface {
	Create(ctx context.Context, fr FormattedResume) error
	Get(ctx context.Context, userID, id string) (FormattedResume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]FormattedResume, error)
}
