package types

// Identity is the host's long-term key material. Every field must be
// present together, or the identity is considered absent (spec.md §3):
// partial state is never persisted as a usable identity.
type Identity struct {
	EdPub  Ed25519Public
	EdSk   Ed25519Private
	XPub   X25519Public
	XSk    X25519Private
	// CreatedAt is an ISO-8601 timestamp, set once at generation time.
	CreatedAt string
	// PairingSecret is 32 random bytes mixed into the pairing-code
	// derivation so that resetting the identity invalidates old codes.
	PairingSecret [32]byte
}

// IdentityPublic is the subset of Identity safe to hand back to a caller
// that only needs to display or transmit public material.
type IdentityPublic struct {
	EdPub Ed25519Public
	XPub  X25519Public
}
