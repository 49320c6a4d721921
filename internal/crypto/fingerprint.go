package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the full hex-encoded SHA-256 digest of a public key,
// for display. It is never truncated. The pairing code does not use it:
// internal/pairing hashes the raw public key bytes itself.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:])
}
