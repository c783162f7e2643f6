package uploads

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, u Upload) error {
	const query = `
INSERT INTO uploads (id, user_id, kind, name, mime_type, size_bytes, storage_key, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.UserID, u.Kind, u.Name, u.MimeType, u.SizeBytes, u.StorageKey, u.Content, u.CreatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID, id string) (Upload, error) {
	const query = `
SELECT id, user_id, kind, name, mime_type, size_bytes, storage_key, content, created_at
FROM uploads
WHERE user_id = $1 AND id = $2`
	var u Upload
	err := r.DB.QueryRowContext(ctx, query, userID, id).Scan(
		&u.ID, &u.UserID, &u.Kind, &u.Name, &u.MimeType, &u.SizeBytes, &u.StorageKey, &u.Content, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Upload{}, ErrNotFound
		}
		return Upload{}, err
	}
	return u, nil
}

// ListByUser omits content; callers fetch it per upload.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Upload, error) {
	const query = `
SELECT id, user_id, kind, name, mime_type, size_bytes, storage_key, created_at
FROM uploads
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Upload{}
	for rows.Next() {
		var u Upload
		if err := rows.Scan(&u.ID, &u.UserID, &u.Kind, &u.Name, &u.MimeType, &u.SizeBytes, &u.StorageKey, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM uploads WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
