package admin

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of secret. Digests are unsalted so
// that snapshots exported by earlier builds keep authenticating after import.
func Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
