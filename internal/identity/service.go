package identity

import (
	"sync"
	"time"

	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
)

// Service owns the host's long-term identity: its Ed25519 and X25519
// keypairs, creation timestamp, and pairing secret.
//
// Persistence goes through a domain.KVStore, but every successfully
// produced identity is also cached in memory so a locked store never
// blocks first-run pairing (spec.md §4.2).
type Service struct {
	kv domain.KVStore

	mu  sync.Mutex
	mem *domain.Identity
}

// New returns an identity service backed by kv.
func New(kv domain.KVStore) *Service { return &Service{kv: kv} }

var _ domain.IdentityStore = (*Service)(nil)

// GetOrCreate loads the identity, generating and persisting a fresh one if
// any of its fields are missing or malformed. It is idempotent: a second
// call returns the same public keys without touching the CSPRNG.
func (s *Service) GetOrCreate() (domain.IdentityPublic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mem != nil {
		return publicOf(*s.mem), nil
	}

	// Best-effort: kvInit is idempotent, "already initialized" is not an
	// error, and a failure here just means we'll run off the memory
	// cache for the rest of the process.
	_, _ = s.kv.Status()
	_ = s.kv.Init()

	if id, ok := s.loadComplete(); ok {
		s.mem = &id
		return publicOf(id), nil
	}

	id, err := generateIdentity()
	if err != nil {
		return domain.IdentityPublic{}, err
	}
	s.mem = &id
	s.persist(id)
	return publicOf(id), nil
}

// GetPairingSecret loads the persisted pairing secret, generating and
// persisting one if absent or malformed.
func (s *Service) GetPairingSecret() ([32]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mem != nil {
		return s.mem.PairingSecret, nil
	}
	if v, err := s.kv.Get(keyPairingSecret); err == nil {
		if data, ok := v.Data(); ok {
			if raw, err := crypto.UnB64(data); err == nil && len(raw) == 32 {
				var secret [32]byte
				copy(secret[:], raw)
				return secret, nil
			}
		}
	}

	raw, err := crypto.RandomBytes(32)
	if err != nil {
		return [32]byte{}, err
	}
	var secret [32]byte
	copy(secret[:], raw)
	_ = s.kv.Put(keyPairingSecret, crypto.B64(secret[:]))
	return secret, nil
}

// GetFingerprint returns hex(sha256(edPub)).
func (s *Service) GetFingerprint(edPub domain.Ed25519Public) string {
	return crypto.Fingerprint(edPub.Slice())
}

// LoadSigningKey returns the host's Ed25519 private key, trying the KV
// store first and falling back to the memory cache.
func (s *Service) LoadSigningKey() (domain.Ed25519Private, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.loadComplete(); ok {
		return id.EdSk, true
	}
	if s.mem != nil {
		return s.mem.EdSk, true
	}
	return domain.Ed25519Private{}, false
}

// Reset regenerates the identity from scratch, discarding the old one.
// Clearing the peer record, unprotected cache and live sessions is the
// RPC façade's job (internal/rpc), since those belong to components that
// sit above the identity store in the dependency order (spec.md §2).
func (s *Service) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := generateIdentity()
	if err != nil {
		return err
	}
	s.mem = &id
	s.persist(id)
	return nil
}

func publicOf(id domain.Identity) domain.IdentityPublic {
	return domain.IdentityPublic{EdPub: id.EdPub, XPub: id.XPub}
}

func generateIdentity() (domain.Identity, error) {
	edSk, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.Identity{}, err
	}
	xSk, xPub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Identity{}, err
	}
	secretRaw, err := crypto.RandomBytes(32)
	if err != nil {
		return domain.Identity{}, err
	}
	var secret [32]byte
	copy(secret[:], secretRaw)

	return domain.Identity{
		EdPub:         edPub,
		EdSk:          edSk,
		XPub:          xPub,
		XSk:           xSk,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		PairingSecret: secret,
	}, nil
}

// loadComplete reads all four KV keys and decodes them; ok is false unless
// every field is present and well-formed (spec.md §3 invariant: partial
// state is never a usable identity).
func (s *Service) loadComplete() (domain.Identity, bool) {
	var id domain.Identity

	edBlob, ok := s.readB64(keyEd25519)
	if !ok || len(edBlob) != 32+64 {
		return domain.Identity{}, false
	}
	copy(id.EdPub[:], edBlob[:32])
	copy(id.EdSk[:], edBlob[32:])

	xBlob, ok := s.readB64(keyX25519)
	if !ok || len(xBlob) != 32+32 {
		return domain.Identity{}, false
	}
	copy(id.XPub[:], xBlob[:32])
	copy(id.XSk[:], xBlob[32:])

	createdAt, ok := s.readString(keyCreatedAt)
	if !ok || createdAt == "" {
		return domain.Identity{}, false
	}
	id.CreatedAt = createdAt

	secretBlob, ok := s.readB64(keyPairingSecret)
	if !ok || len(secretBlob) != 32 {
		return domain.Identity{}, false
	}
	copy(id.PairingSecret[:], secretBlob)

	return id, true
}

func (s *Service) readB64(key string) ([]byte, bool) {
	str, ok := s.readString(key)
	if !ok {
		return nil, false
	}
	raw, err := crypto.UnB64(str)
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *Service) readString(key string) (string, bool) {
	v, err := s.kv.Get(key)
	if err != nil {
		return "", false
	}
	return v.Data()
}

// persist writes every field independently; KV errors are swallowed, per
// spec.md §4.2: the memory cache already holds a usable identity.
func (s *Service) persist(id domain.Identity) {
	edBlob := append(append([]byte(nil), id.EdPub[:]...), id.EdSk[:]...)
	xBlob := append(append([]byte(nil), id.XPub[:]...), id.XSk[:]...)

	_ = s.kv.Put(keyEd25519, crypto.B64(edBlob))
	_ = s.kv.Put(keyX25519, crypto.B64(xBlob))
	_ = s.kv.Put(keyCreatedAt, id.CreatedAt)
	_ = s.kv.Put(keyPairingSecret, crypto.B64(id.PairingSecret[:]))
}
