package interfaces

import domaintypes "pearpass-host/internal/domain/types"

// IdentityStore manages the host's long-term identity keys (spec.md §4.2).
// Despite the name it is a business-logic component, not a raw persistence
// adapter — it owns the memory-cache fallback and never surfaces raw
// KVStore errors to its callers.
type IdentityStore interface {
	GetOrCreate() (domaintypes.IdentityPublic, error)
	GetPairingSecret() ([32]byte, error)
	GetFingerprint(edPub domaintypes.Ed25519Public) string
	Reset() error

	// LoadSigningKey returns the host's Ed25519 private key, trying the
	// KV store first and falling back to the memory cache (spec.md
	// §4.5 step 2). ok is false if neither source has it.
	LoadSigningKey() (sk domaintypes.Ed25519Private, ok bool)
}

// UnprotectedCache is the small key-value area readable while the vault is
// locked, used only for non-secret pairing-status queries (spec.md §6).
type UnprotectedCache interface {
	Get() (peerEdPub domaintypes.Ed25519Public, ok bool)
	Set(peerEdPub domaintypes.Ed25519Public)
	Clear()
}

// PairingManager derives and verifies pairing codes and manages the pinned
// peer's lifecycle (spec.md §4.3).
type PairingManager interface {
	PairingCode() (string, error)
	VerifyPairingCode(userInput string) bool

	PinPeer(peerEdPub domaintypes.Ed25519Public) error
	ConfirmPeer(peerEdPub domaintypes.Ed25519Public) error

	PeerPublicKey() (domaintypes.Ed25519Public, bool)
	PeerState() (domaintypes.PairingState, bool)
	IsPaired(peerEdPub domaintypes.Ed25519Public) bool

	// ClearPairing resets the PeerRecord and unprotected cache to
	// absent; called by the RPC façade's resetPairing before it resets
	// the identity.
	ClearPairing() error
}

// SessionStore is the in-memory session table (spec.md §4.4).
type SessionStore interface {
	Create(key [32]byte, transcript []byte) string
	Get(sessionID string) (*domaintypes.Session, bool)
	Close(sessionID string)
	ClearAll() int
}

// SessionManager runs the handshake and the data-phase operations
// (spec.md §4.5).
type SessionManager interface {
	BeginHandshake(extEphPubB64 string) (hostEphPubB64, signatureB64, sessionID string, err *domaintypes.ProtocolError)
	FinishHandshake(sessionID, clientSigB64 string) *domaintypes.ProtocolError
	Seal(sessionID string, plaintext []byte) (nonceB64, ciphertextB64 string, seq uint64, err *domaintypes.ProtocolError)
	Open(sessionID, nonceB64, ciphertextB64 string, seq uint64) (plaintext []byte, err *domaintypes.ProtocolError)
}
