package types

import "fmt"

// X25519Public is a Curve25519 Diffie-Hellman public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (k X25519Public) Slice() []byte { return k[:] }

// X25519Private is a Curve25519 Diffie-Hellman private (clamped) key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (k Ed25519Public) Slice() []byte { return k[:] }

// Ed25519Private is an Ed25519 signing private key, in the stdlib's
// seed||public layout (64 bytes).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// MustX25519Public panics unless b is exactly 32 bytes; used at
// deserialization boundaries the caller has already length-checked.
func MustX25519Public(b []byte) X25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 public: want 32 bytes, got %d", len(b)))
	}
	var out X25519Public
	copy(out[:], b)
	return out
}

// MustEd25519Public panics unless b is exactly 32 bytes.
func MustEd25519Public(b []byte) Ed25519Public {
	if len(b) != 32 {
		panic(fmt.Errorf("Ed25519 public: want 32 bytes, got %d", len(b)))
	}
	var out Ed25519Public
	copy(out[:], b)
	return out
}
