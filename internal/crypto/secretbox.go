package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrSecretboxOpen is returned by SecretboxOpen when authentication fails.
var ErrSecretboxOpen = errors.New("crypto: secretbox authentication failed")

// SecretboxSeal encrypts plaintext under key with a fresh random nonce,
// returning the nonce and the sealed ciphertext (which carries its own
// Poly1305 tag).
func SecretboxSeal(key [32]byte, plaintext []byte) (nonce [24]byte, ciphertext []byte, err error) {
	if _, err = rand.Read(nonce[:]); err != nil {
		return nonce, nil, err
	}
	ciphertext = secretbox.Seal(nil, plaintext, &nonce, &key)
	return nonce, ciphertext, nil
}

// SecretboxOpen authenticates and decrypts ciphertext under key and nonce.
func SecretboxOpen(key [32]byte, nonce [24]byte, ciphertext []byte) ([]byte, error) {
	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, &key)
	if !ok {
		return nil, ErrSecretboxOpen
	}
	return plaintext, nil
}
