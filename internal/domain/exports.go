package domain

import (
	"pearpass-host/internal/domain/interfaces"
	"pearpass-host/internal/domain/types"
)

// Re-exported so callers can write domain.X instead of reaching into the
// types/interfaces subpackages directly, matching the flat import surface
// the rest of the tree expects from package domain.

type (
	X25519Public  = types.X25519Public
	X25519Private = types.X25519Private
	Ed25519Public = types.Ed25519Public
	Ed25519Private = types.Ed25519Private

	Identity       = types.Identity
	IdentityPublic = types.IdentityPublic

	PairingState = types.PairingState
	PeerRecord   = types.PeerRecord

	Session = types.Session

	KVValue = types.KVValue

	ErrorKind     = types.ErrorKind
	ProtocolError = types.ProtocolError

	KVStore          = interfaces.KVStore
	IdentityStore    = interfaces.IdentityStore
	UnprotectedCache = interfaces.UnprotectedCache
	PairingManager   = interfaces.PairingManager
	SessionStore     = interfaces.SessionStore
	SessionManager   = interfaces.SessionManager
)

const (
	PairingPending   = types.PairingPending
	PairingConfirmed = types.PairingConfirmed
)

const (
	ErrPairingTokenRequired      = types.ErrPairingTokenRequired
	ErrPeerPublicKeyRequired     = types.ErrPeerPublicKeyRequired
	ErrInvalidPairingToken       = types.ErrInvalidPairingToken
	ErrInvalidPairingSecret      = types.ErrInvalidPairingSecret
	ErrPeerAlreadyPaired         = types.ErrPeerAlreadyPaired
	ErrNotPaired                 = types.ErrNotPaired
	ErrPeerNotPaired             = types.ErrPeerNotPaired
	ErrNoPendingPairing          = types.ErrNoPendingPairing
	ErrPeerKeyMismatch           = types.ErrPeerKeyMismatch
	ErrMissingEphemeralPublicKey = types.ErrMissingEphemeralPublicKey
	ErrMissingSessionId          = types.ErrMissingSessionId
	ErrMissingClientSignature    = types.ErrMissingClientSignature
	ErrSessionNotFound           = types.ErrSessionNotFound
	ErrInvalidPeerPublicKey      = types.ErrInvalidPeerPublicKey
	ErrInvalidClientSignature    = types.ErrInvalidClientSignature
	ErrInvalidTranscript         = types.ErrInvalidTranscript
	ErrPeerSignatureInvalid      = types.ErrPeerSignatureInvalid
	ErrDecryptFailed             = types.ErrDecryptFailed
	ErrInvalidSeq                = types.ErrInvalidSeq
	ErrReplayDetected            = types.ErrReplayDetected
	ErrIdentityKeysUnavailable   = types.ErrIdentityKeysUnavailable
	ErrNativeMessagingDisabled   = types.ErrNativeMessagingDisabled
	ErrMissingField              = types.ErrMissingField
)

var (
	MustX25519Public  = types.MustX25519Public
	MustEd25519Public = types.MustEd25519Public
	Missing           = types.Missing
	Present           = types.Present
	NewProtocolError  = types.NewProtocolError
	MissingFieldErr   = types.MissingField
)
