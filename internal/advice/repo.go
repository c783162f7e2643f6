package advice

import "context"

// ArchiveRepo stores superseded advice. It has no update or delete.
type ArchiveRepo interface {
	Append(ctx context.Context, entry ArchiveEntry) error
	// ListByResume returns entries newest first.
	ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]ArchiveEntry, error)
}
