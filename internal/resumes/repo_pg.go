package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, content, job_id, job_title, company_name, job_description, model,
       prompt_tokens, completion_tokens, total_tokens, advice, advice_generated_at, created_at`

func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id, user_id, content, job_id, job_title, company_name, job_description, model,
    prompt_tokens, completion_tokens, total_tokens, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		res.ID, res.UserID, res.Content, nullString(res.JobID), res.JobTitle, res.CompanyName, res.JobDescription, res.Model,
		res.Usage.PromptTokens, res.Usage.CompletionTokens, res.Usage.TotalTokens, res.CreatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID, id string) (Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2`
	res, err := scanResume(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	return requireOneRow(result)
}

func (r *PGRepo) SetAdvice(ctx context.Context, userID, id string, advice json.RawMessage, at time.Time) error {
	const query = `
UPDATE resumes
SET advice = $3, advice_generated_at = $4
WHERE user_id = $1 AND id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, id, []byte(advice), at)
	if err != nil {
		return err
	}
	return requireOneRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		res         Resume
		jobID       sql.NullString
		advice      []byte
		generatedAt sql.NullTime
	)
	if err := row.Scan(
		&res.ID, &res.UserID, &res.Content, &jobID, &res.JobTitle, &res.CompanyName, &res.JobDescription, &res.Model,
		&res.Usage.PromptTokens, &res.Usage.CompletionTokens, &res.Usage.TotalTokens,
		&advice, &generatedAt, &res.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	res.JobID = jobID.String
	if len(advice) > 0 {
		res.Advice = json.RawMessage(advice)
	}
	if generatedAt.Valid {
		t := generatedAt.Time
		res.AdviceGeneratedAt = &t
	}
	return res, nil
}

func requireOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
