package types

// Session is a live, in-memory-only authenticated channel between the host
// and one peer instance. Created by beginHandshake, mutated only by its
// owning session manager, destroyed by closeSession, clearAllSessions, or
// process exit.
type Session struct {
	ID string

	// Key is the raw 32-byte X25519 shared secret used directly as the
	// secretbox key (spec.md §9: no HKDF, by design decision — see
	// DESIGN.md).
	Key [32]byte

	// Transcript is hostEphPub‖extEphPub‖peerEdPub (96 bytes), recorded
	// at handshake time and re-used verbatim in finishHandshake's
	// client-finish preimage.
	Transcript []byte

	SendSeq      uint64
	LastRecvSeq  uint64
	PeerVerified bool
}
