// Package handshake builds the byte strings that the handshake's Ed25519
// signatures cover: the transcript binding both ephemeral public keys and
// the pinned peer, and the client-finish preimage binding the session id
// (spec.md §4.5).
//
// These are pure functions over domain key types and do no signing;
// session.Manager owns the stateful parts (generating the ephemeral
// keypair, running the ECDH, signing the transcript, opening the session).
package handshake
