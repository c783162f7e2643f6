package templates

import (
	"context"
	"database/sql"
	"errors"
)

// PGSettingsRepo implements SettingsRepo using Postgres.
type PGSettingsRepo struct {
	DB *sql.DB
}

// Get returns the user's setting or ErrNotFound.
func (r *PGSettingsRepo) Get(ctx context.Context, userID string) (Setting, error) {
	const query = `
SELECT user_id, template_id, updated_at
FROM template_settings
WHERE user_id = $1`
	var s Setting
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.TemplateID, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Setting{}, ErrNotFound
		}
		return Setting{}, err
	}
	return s, nil
}

// Upsert inserts or replaces the user's setting.
func (r *PGSettingsRepo) Upsert(ctx context.Context, setting Setting) error {
	const query = `
INSERT INTO template_settings (user_id, template_id, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET template_id = EXCLUDED.template_id,
    updated_at = EXCLUDED.updated_at`
	_, err := r.DB.ExecContext(ctx, query, setting.UserID, setting.TemplateID, setting.UpdatedAt)
	return err
}
