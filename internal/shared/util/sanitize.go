package util

import (
	"errors"
	"strings"
	"unicode"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// AttachmentName makes a safe Content-Disposition filename ending in ext.
// Quotes, control characters and path separators are dropped; an empty
// result falls back to def.
func AttachmentName(name, ext, def string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '"' || r == '\\' || r == '/' || r == ';':
			continue
		case unicode.IsControl(r):
			continue
		case r > unicode.MaxASCII:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return def
	}
	if !strings.HasSuffix(strings.ToLower(out), ext) {
		out += ext
	}
	return out
}
