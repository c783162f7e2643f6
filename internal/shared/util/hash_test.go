package util

import (
	"strings"
	"testing"
)

func TestOwnerKey(t *testing.T) {
	ids := []string{"google:104233", "guest:6f1c", "jane.doe@example.com"}
	seen := map[string]string{}
	for _, id := range ids {
		key := OwnerKey(id)
		if key != OwnerKey(id) {
			t.Fatalf("OwnerKey(%q) not stable", id)
		}
		if len(key) != 32 || strings.Trim(key, "0123456789abcdef") != "" {
			t.Fatalf("OwnerKey(%q) = %q, want 32 hex chars", id, key)
		}
		if strings.Contains(key, "@") || strings.Contains(key, ":") {
			t.Fatalf("OwnerKey(%q) leaks the raw id", id)
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("OwnerKey collision between %q and %q", prev, id)
		}
		seen[key] = id
	}
}
