package uploads

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	return NewService(NewMemoryRepo(), local.New(dir)), dir
}

func TestUploadFileStoresObjectAndText(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.UploadFile(ctx, "u1", "cv.docx", bytes.NewReader(buildDOCX(t, sampleDocumentXML)))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if u.Kind != KindFile || u.MimeType != mimeDOCX || u.StorageKey == "" {
		t.Fatalf("unexpected upload %+v", u)
	}
	if !strings.HasPrefix(u.Content, "Jane Doe") {
		t.Fatalf("content = %q", u.Content)
	}

	_, rc, err := svc.Open(ctx, "u1", u.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rc.Close()

	if _, err := svc.Get(ctx, "u2", u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	if err := svc.Delete(ctx, "u1", u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Store.Open(ctx, u.StorageKey); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected object removed, got %v", err)
	}
	if _, err := svc.Get(ctx, "u1", u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUploadFileRejectsWithoutStoring(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		maxBytes int64
		want     error
	}{
		{name: "too large", fileName: "cv.txt", data: []byte(strings.Repeat("a", 32)), maxBytes: 16, want: ErrTooLarge},
		{name: "unsupported", fileName: "cv.png", data: []byte("\x89PNG\r\n\x1a\n0000"), want: ErrUnsupportedType},
		{name: "empty", fileName: "cv.txt", data: nil, want: ErrInvalidInput},
		{name: "traversal", fileName: "../cv.txt", data: []byte("hello"), want: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, dir := newTestService(t)
			if tc.maxBytes > 0 {
				svc.MaxBytes = tc.maxBytes
			}
			_, err := svc.UploadFile(context.Background(), "u1", tc.fileName, bytes.NewReader(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("read dir: %v", err)
			}
			if len(entries) != 0 {
				t.Fatalf("expected nothing stored, found %d entries", len(entries))
			}
		})
	}
}

func TestSaveText(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SaveText(ctx, "u1", "", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	u, err := svc.SaveText(ctx, "u1", "", "Jane Doe\r\nEngineer  ")
	if err != nil {
		t.Fatalf("SaveText: %v", err)
	}
	if u.Kind != KindText || u.Name != defaultTextName || u.Content != "Jane Doe\nEngineer" || u.StorageKey != "" {
		t.Fatalf("unexpected upload %+v", u)
	}
	if _, _, err := svc.Open(ctx, "u1", u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("text uploads have no file, got %v", err)
	}

	list, err := svc.List(ctx, "u1", 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != u.ID {
		t.Fatalf("unexpected list %+v", list)
	}
}
