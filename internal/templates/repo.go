package templates

import "context"

// SettingsRepo persists each user's styling template choice.
type SettingsRepo interface {
	Get(ctx context.Context, userID string) (Setting, error)
	Upsert(ctx context.Context, setting Setting) error
}
