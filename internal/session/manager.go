package session

import (
	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
	"pearpass-host/internal/handshake"
)

// Manager runs the handshake and the data-phase operations over a Store.
type Manager struct {
	store    *Store
	pairing  domain.PairingManager
	identity domain.IdentityStore
}

var _ domain.SessionManager = (*Manager)(nil)

// NewManager returns a session manager backed by store, pairing and
// identity.
func NewManager(store *Store, pairing domain.PairingManager, identity domain.IdentityStore) *Manager {
	return &Manager{store: store, pairing: pairing, identity: identity}
}

// BeginHandshake runs the host side of the handshake: it pins an
// ephemeral X25519 keypair, computes the shared secret with extEphPubB64,
// signs the transcript with the host's long-term Ed25519 key, and opens a
// new session keyed by the shared secret.
func (m *Manager) BeginHandshake(extEphPubB64 string) (hostEphPubB64, signatureB64, sessionID string, errOut *domain.ProtocolError) {
	if extEphPubB64 == "" {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrMissingEphemeralPublicKey}
	}
	extRaw, err := crypto.UnB64(extEphPubB64)
	if err != nil || len(extRaw) != 32 {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrMissingEphemeralPublicKey, Detail: "malformed ephemeral public key"}
	}
	var extEphPub domain.X25519Public
	copy(extEphPub[:], extRaw)

	peerEdPub, ok := m.pairing.PeerPublicKey()
	if !ok {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrNotPaired}
	}

	edSk, ok := m.identity.LoadSigningKey()
	if !ok {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable}
	}

	hostEphSk, hostEphPub, err := crypto.GenerateX25519()
	if err != nil {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: err.Error()}
	}

	shared, err := crypto.DH(hostEphSk, extEphPub)
	crypto.Wipe(hostEphSk[:])
	if err != nil {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrInvalidPeerPublicKey, Detail: err.Error()}
	}
	if isAllZero(shared[:]) {
		return "", "", "", &domain.ProtocolError{Kind: domain.ErrInvalidPeerPublicKey, Detail: "degenerate ECDH output"}
	}

	transcript := handshake.Transcript(hostEphPub, extEphPub, peerEdPub)
	signature := crypto.SignEd25519(edSk, transcript)

	sessionID = m.store.Create(shared, transcript)
	return crypto.B64(hostEphPub[:]), crypto.B64(signature), sessionID, nil
}

// FinishHandshake verifies the peer's client-finish signature, binding
// the session id and handshake transcript. It is idempotent once a
// session is verified.
func (m *Manager) FinishHandshake(sessionID, clientSigB64 string) *domain.ProtocolError {
	if sessionID == "" {
		return &domain.ProtocolError{Kind: domain.ErrMissingSessionId}
	}
	if clientSigB64 == "" {
		return &domain.ProtocolError{Kind: domain.ErrMissingClientSignature}
	}

	sess, ok := m.store.Get(sessionID)
	if !ok {
		return &domain.ProtocolError{Kind: domain.ErrSessionNotFound}
	}
	if sess.PeerVerified {
		return nil
	}

	peerEdPub, ok := m.pairing.PeerPublicKey()
	if !ok {
		return &domain.ProtocolError{Kind: domain.ErrPeerNotPaired}
	}

	sig, err := crypto.UnB64(clientSigB64)
	if err != nil || len(sig) != 64 {
		return &domain.ProtocolError{Kind: domain.ErrInvalidClientSignature}
	}
	if len(sess.Transcript) != 96 {
		return &domain.ProtocolError{Kind: domain.ErrInvalidTranscript}
	}

	preimage := handshake.ClientFinishPreimage(sessionID, sess.Transcript)

	if !crypto.VerifyEd25519(peerEdPub, preimage, sig) {
		m.store.Close(sessionID)
		return &domain.ProtocolError{Kind: domain.ErrPeerSignatureInvalid}
	}

	m.store.MarkVerified(sessionID)
	// First successful finishHandshake is the natural piggyback point for
	// PENDING -> CONFIRMED (spec.md §4.5). A repeat confirm of the same
	// peer succeeds without changing anything; a ConfirmPeer error (e.g. a
	// failed KV write) is ignored and leaves the handshake successful.
	_ = m.pairing.ConfirmPeer(peerEdPub)
	return nil
}

// Seal encrypts plaintext under sessionID's key with a fresh random nonce
// and the next send sequence number.
func (m *Manager) Seal(sessionID string, plaintext []byte) (nonceB64, ciphertextB64 string, seq uint64, errOut *domain.ProtocolError) {
	sess, ok := m.store.Get(sessionID)
	if !ok {
		return "", "", 0, &domain.ProtocolError{Kind: domain.ErrSessionNotFound}
	}

	nonce, ciphertext, err := crypto.SecretboxSeal(sess.Key, plaintext)
	if err != nil {
		return "", "", 0, &domain.ProtocolError{Kind: domain.ErrDecryptFailed, Detail: err.Error()}
	}
	seq, _ = m.store.NextSendSeq(sessionID)
	return crypto.B64(nonce[:]), crypto.B64(ciphertext), seq, nil
}

// Open decrypts and authenticates a frame, then enforces strictly
// monotonic replay protection via seq.
func (m *Manager) Open(sessionID, nonceB64, ciphertextB64 string, seq uint64) (plaintext []byte, errOut *domain.ProtocolError) {
	sess, ok := m.store.Get(sessionID)
	if !ok {
		return nil, &domain.ProtocolError{Kind: domain.ErrSessionNotFound}
	}

	nonceRaw, err := crypto.UnB64(nonceB64)
	if err != nil || len(nonceRaw) != 24 {
		return nil, &domain.ProtocolError{Kind: domain.ErrInvalidTranscript, Detail: "nonce must be 24 bytes"}
	}
	ciphertext, err := crypto.UnB64(ciphertextB64)
	if err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrDecryptFailed, Detail: "malformed ciphertext"}
	}
	var nonce [24]byte
	copy(nonce[:], nonceRaw)

	plaintext, err = crypto.SecretboxOpen(sess.Key, nonce, ciphertext)
	if err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrDecryptFailed}
	}

	accepted, found := m.store.RecordRecvSeq(sessionID, seq)
	if !found {
		return nil, &domain.ProtocolError{Kind: domain.ErrSessionNotFound}
	}
	if !accepted {
		return nil, &domain.ProtocolError{Kind: domain.ErrReplayDetected}
	}
	return plaintext, nil
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
