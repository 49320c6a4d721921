package vaultkv

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const envelopeFormatVersion = 1

// scrypt parameters. N is deliberately modest (32768, ~50ms on typical
// hardware) since Get/Put derive a fresh key per entry rather than caching
// one across calls.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// envelope is the on-disk sealed form of one KV entry's value.
type envelope struct {
	V    int    `json:"v"`
	Salt []byte `json:"salt"`
	N    int    `json:"n"`
	R    int    `json:"r"`
	P    int    `json:"p"`
	CT   []byte `json:"ct"`
}

func seal(passphrase, plaintext string) (envelope, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return envelope{}, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return envelope{}, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return envelope{}, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return envelope{}, err
	}
	ct := aead.Seal(nonce, nonce, []byte(plaintext), salt[:])
	return envelope{V: envelopeFormatVersion, Salt: salt[:], N: scryptN, R: scryptR, P: scryptP, CT: ct}, nil
}

func open(passphrase string, e envelope) (string, error) {
	if e.V > envelopeFormatVersion {
		return "", fmt.Errorf("vaultkv: unsupported envelope version %d", e.V)
	}
	key, err := scrypt.Key([]byte(passphrase), e.Salt, e.N, e.R, e.P, chacha20poly1305.KeySize)
	if err != nil {
		return "", err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", err
	}
	if len(e.CT) < aead.NonceSize() {
		return "", errCorrupt
	}
	nonce, ct := e.CT[:aead.NonceSize()], e.CT[aead.NonceSize():]
	pt, err := aead.Open(nil, nonce, ct, e.Salt)
	if err != nil {
		return "", errWrongPassphrase
	}
	return string(pt), nil
}
