package uploads

import "time"

// Upload kinds.
const (
	KindFile = "file"
	KindText = "text"
)

// Upload is a user-provided resume source: a stored file with its extracted
// text, or a block of pasted text.
type Upload struct {
	ID         string
	UserID     string
	Kind       string
	Name       string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	Content    string
	CreatedAt  time.Time
}
