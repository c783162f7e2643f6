package util

import (
	"crypto/sha256"
	"encoding/hex"
)

const ownerKeyLen = 32

// OwnerKey maps a user ID to the directory name its stored files live under.
// Raw IDs such as "google:123" or emails never appear in object paths.
func OwnerKey(userID string) string {
	sum := sha256.Sum256([]byte("owner:" + userID))
	return hex.EncodeToString(sum[:])[:ownerKeyLen]
}
