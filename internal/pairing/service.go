package pairing

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
)

// pairingCodeTag is the fixed domain-separation prefix for the pairing
// code hash (spec.md §4.3). The preimage layout below is the documented
// one; see DESIGN.md for why the alternate "overwritten input" layout
// from the original source was not carried forward.
const pairingCodeTag = "pearpass/pairingcode/v1"

const peerKey = "peer.data"

// Service derives pairing codes and tracks the single pinned peer.
type Service struct {
	kv       domain.KVStore
	identity domain.IdentityStore
	cache    domain.UnprotectedCache

	mu sync.Mutex
}

var _ domain.PairingManager = (*Service)(nil)

// New returns a pairing manager backed by kv for peer state, identity for
// the pairing-code inputs, and cache for the locked-vault status path.
func New(kv domain.KVStore, identity domain.IdentityStore, cache domain.UnprotectedCache) *Service {
	return &Service{kv: kv, identity: identity, cache: cache}
}

// PairingCode derives the current 6-digit+4-hex pairing code.
func (s *Service) PairingCode() (string, error) {
	pub, err := s.identity.GetOrCreate()
	if err != nil {
		return "", err
	}
	secret, err := s.identity.GetPairingSecret()
	if err != nil {
		return "", err
	}
	return derivePairingCode(secret, pub.EdPub), nil
}

func derivePairingCode(secret [32]byte, edPub domain.Ed25519Public) string {
	h := sha256.New()
	h.Write([]byte(pairingCodeTag))
	h.Write(secret[:])
	h.Write(edPub[:])
	sum := h.Sum(nil)

	digits := binary.BigEndian.Uint32(sum[0:4]) % 1_000_000
	suffix := binary.BigEndian.Uint16(sum[4:6])
	return fmt.Sprintf("%06d-%04X", digits, suffix)
}

// VerifyPairingCode reports whether userInput matches the current pairing
// code, case-insensitively and in constant time.
func (s *Service) VerifyPairingCode(userInput string) bool {
	if userInput == "" {
		return false
	}
	expected, err := s.PairingCode()
	if err != nil {
		return false
	}
	got := strings.ToUpper(strings.TrimSpace(userInput))
	return crypto.CTEqual([]byte(got), []byte(expected))
}

// PinPeer writes PeerRecord{peerEdPub, PENDING}. A second call with the
// same key is a no-op; a different key fails ErrPeerAlreadyPaired.
func (s *Service) PinPeer(peerEdPub domain.Ed25519Public) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.readPeer(); ok {
		if existing.PublicKey != crypto.B64(peerEdPub.Slice()) {
			return &domain.ProtocolError{Kind: domain.ErrPeerAlreadyPaired}
		}
		return nil
	}
	return s.writePeer(peerEdPub, domain.PairingPending)
}

// ConfirmPeer transitions PENDING -> CONFIRMED for a matching peer, then
// mirrors the key to the unprotected cache.
func (s *Service) ConfirmPeer(peerEdPub domain.Ed25519Public) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.readPeer()
	if !ok {
		return &domain.ProtocolError{Kind: domain.ErrNoPendingPairing}
	}
	if existing.PublicKey != crypto.B64(peerEdPub.Slice()) {
		return &domain.ProtocolError{Kind: domain.ErrPeerKeyMismatch}
	}
	if err := s.writePeer(peerEdPub, domain.PairingConfirmed); err != nil {
		return err
	}
	s.cache.Set(peerEdPub)
	return nil
}

// PeerPublicKey returns the pinned peer's key, if any.
func (s *Service) PeerPublicKey() (domain.Ed25519Public, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pd, ok := s.readPeer()
	if !ok {
		return domain.Ed25519Public{}, false
	}
	raw, err := crypto.UnB64(pd.PublicKey)
	if err != nil || len(raw) != 32 {
		return domain.Ed25519Public{}, false
	}
	return domain.MustEd25519Public(raw), true
}

// PeerState returns the pinned peer's pairing state, if any.
func (s *Service) PeerState() (domain.PairingState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pd, ok := s.readPeer()
	if !ok {
		return "", false
	}
	return domain.PairingState(pd.PairingState), true
}

// IsPaired reports whether peerEdPub byte-equals the pinned peer.
func (s *Service) IsPaired(peerEdPub domain.Ed25519Public) bool {
	pinned, ok := s.PeerPublicKey()
	if !ok {
		return false
	}
	return crypto.CTEqual(pinned[:], peerEdPub[:])
}

// ClearPairing removes the PeerRecord and empties the unprotected cache.
func (s *Service) ClearPairing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
	return s.kv.Put(peerKey, "")
}

func (s *Service) readPeer() (peerData, bool) {
	v, err := s.kv.Get(peerKey)
	if err != nil {
		return peerData{}, false
	}
	raw, ok := v.Data()
	if !ok {
		return peerData{}, false
	}
	return decodePeer(raw)
}

func (s *Service) writePeer(peerEdPub domain.Ed25519Public, state domain.PairingState) error {
	encoded, err := encodePeer(crypto.B64(peerEdPub.Slice()), string(state))
	if err != nil {
		return err
	}
	return s.kv.Put(peerKey, encoded)
}
