package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, user_id, title, company, description, source_url, extracted_at, created_at,
       applied_to, application_time, application_resume_id`

func (r *PGRepo) Create(ctx context.Context, job JobDescription) error {
	const query = `
INSERT INTO job_descriptions (id, user_id, title, company, description, source_url, extracted_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID, job.UserID, job.Title, job.Company, job.Description, job.SourceURL, job.ExtractedAt, job.CreatedAt,
	)
	return err
}

func (r *PGRepo) Get(ctx context.Context, userID, id string) (JobDescription, error) {
	query := `
SELECT ` + jobColumns + `
FROM job_descriptions
WHERE user_id = $1 AND id = $2`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	return job, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error) {
	query := `
SELECT ` + jobColumns + `
FROM job_descriptions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobDescription{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM job_descriptions WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *PGRepo) MarkApplied(ctx context.Context, userID, id, resumeID string, at time.Time) error {
	const query = `
UPDATE job_descriptions
SET applied_to = TRUE, application_time = $3, application_resume_id = $4
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id, at, nullString(resumeID))
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (JobDescription, error) {
	var (
		job       JobDescription
		appliedAt sql.NullTime
		resumeID  sql.NullString
	)
	if err := row.Scan(
		&job.ID, &job.UserID, &job.Title, &job.Company, &job.Description, &job.SourceURL,
		&job.ExtractedAt, &job.CreatedAt, &job.AppliedTo, &appliedAt, &resumeID,
	); err != nil {
		return JobDescription{}, err
	}
	if appliedAt.Valid {
		t := appliedAt.Time
		job.ApplicationTime = &t
	}
	job.ApplicationResumeID = resumeID.String
	return job, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
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
