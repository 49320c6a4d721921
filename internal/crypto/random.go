package crypto

import (
	"crypto/rand"
	"crypto/subtle"
)

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// CTEqual reports whether a and b are equal, in constant time with
// respect to their contents (lengths may still leak).
func CTEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
