package types

// PairingState is the two-state lifecycle of a pinned peer.
type PairingState string

const (
	// PairingPending means the peer's key has been pinned but the user
	// has not yet confirmed the pairing from the extension side.
	PairingPending PairingState = "PENDING"
	// PairingConfirmed means confirmPeer succeeded; the peer's key may
	// now be mirrored to the unprotected cache.
	PairingConfirmed PairingState = "CONFIRMED"
)

// PeerRecord pins the extension's long-term Ed25519 public key. At most
// one exists per Identity.
type PeerRecord struct {
	PeerEdPub Ed25519Public
	State     PairingState
}
