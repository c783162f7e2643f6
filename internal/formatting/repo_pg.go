package formatting

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, fr FormattedResume) error {
	const query = `
INSERT INTO formatted_resumes (id, user_id, original_resume_id, latex_content, template, title, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		fr.ID, fr.UserID, fr.OriginalResumeID, fr.LatexContent, fr.Template, fr.Title, fr.CreatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID, id string) (FormattedResume, error) {
	const query = `
SELECT id, user_id, original_resume_id, latex_content, template, title, created_at
FROM formatted_resumes
WHERE user_id = $1 AND id = $2`
	var fr FormattedResume
	err := r.DB.QueryRowContext(ctx, query, userID, id).Scan(
		&fr.ID, &fr.UserID, &fr.OriginalResumeID, &fr.LatexContent, &fr.Template, &fr.Title, &fr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FormattedResume{}, ErrNotFound
		}
		return FormattedResume{}, err
	}
	return fr, nil
}

// ListByUser omits latex_content; callers fetch it with Get.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]FormattedResume, error) {
	const query = `
SELECT id, user_id, original_resume_id, template, title, created_at
FROM formatted_resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FormattedResume{}
	for rows.Next() {
		var fr FormattedResume
		if err := rows.Scan(&fr.ID, &fr.UserID, &fr.OriginalResumeID, &fr.Template, &fr.Title, &fr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}
