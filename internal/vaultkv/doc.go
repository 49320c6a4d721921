// Package vaultkv is a concrete implementation of domain.KVStore: a single
// passphrase-protected file holding independently encrypted entries.
//
// It exists so this repository is runnable standalone; the core in
// internal/identity, internal/pairing and internal/session never imports
// this package directly, only domain.KVStore.
//
// # On-disk format
//
// One file, vault.kv, holding a JSON array of envelopes:
//
//	[{"key": "identity", "envelope": {"v":1,"salt":"...","n":32768,"r":8,"p":1,"ct":"..."}}, ...]
//
// Each envelope is sealed independently with chacha20poly1305, keyed by
// scrypt(passphrase, salt). Writes go through a temp-file-then-rename so a
// crash mid-write never corrupts the previous contents.
//
// # Lock state
//
// A Store starts locked: Get reads back Missing and Put fails with
// ErrVaultLocked until Unlock(passphrase) is called. This mirrors the
// surrounding vault's own lock/unlock UX — the identity and pairing
// layers already treat a locked store as "fall back to the memory cache"
// per spec.md §4.2/§7.
package vaultkv
