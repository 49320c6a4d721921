// Package identity manages the host's long-term identity: its Ed25519
// signing keypair, X25519 ECDH keypair, creation timestamp, and pairing
// secret.
//
// It persists these via a domain.KVStore but falls back to an in-memory
// cache when the store is locked, so a freshly generated identity remains
// usable for the rest of the process even if nothing was written to disk.
package identity
