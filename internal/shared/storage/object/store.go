package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for saving and retrieving uploaded resume files.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}

// ObjectName builds the per-upload object name: a unique prefix keeps
// repeated uploads of "resume.pdf" from colliding.
func ObjectName(uniqueID, sanitizedName string) string {
	return uniqueID + "_" + sanitizedName
}
