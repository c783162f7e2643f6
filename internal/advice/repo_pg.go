package advice

import (
	"context"
	"database/sql"
)

// PGArchiveRepo implements ArchiveRepo using Postgres.
type PGArchiveRepo struct {
	DB *sql.DB
}

func (r *PGArchiveRepo) Append(ctx context.Context, entry ArchiveEntry) error {
	const query = `
INSERT INTO advice_archive (id, user_id, resume_id, advice, generated_at, archived_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.ResumeID, []byte(entry.Advice), entry.GeneratedAt, entry.ArchivedAt,
	)
	return err
}

func (r *PGArchiveRepo) ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]ArchiveEntry, error) {
	const query = `
SELECT id, user_id, resume_id, advice, generated_at, archived_at
FROM advice_archive
WHERE user_id = $1 AND resume_id = $2
ORDER BY archived_at DESC, id DESC
LIMIT $3 OFFSET $4`
	rows, err := r.DB.QueryContext(ctx, query, userID, resumeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ArchiveEntry{}
	for rows.Next() {
		var (
			e   ArchiveEntry
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.ResumeID, &raw, &e.GeneratedAt, &e.ArchivedAt); err != nil {
			return nil, err
		}
		e.Advice = raw
		out = append(out, e)
	}
	return out, rows.Err()
}
