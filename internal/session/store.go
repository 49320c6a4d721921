package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"pearpass-host/internal/domain"
)

// Store is an in-memory table of live sessions keyed by a random 128-bit
// hex session id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

var _ domain.SessionStore = (*Store)(nil)

// NewStore returns an empty session table.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*domain.Session)}
}

// Create inserts a new session with the given key and transcript and
// returns its freshly generated id.
func (s *Store) Create(key [32]byte, transcript []byte) string {
	id := newSessionID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &domain.Session{
		ID:         id,
		Key:        key,
		Transcript: append([]byte(nil), transcript...),
	}
	return id
}

// Get returns a snapshot of the session for id, if one is live. The
// returned value is a copy; mutate session state only through the
// dedicated methods below, which hold the store's lock for the whole
// read-modify-write.
func (s *Store) Get(id string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	cp := *sess
	return &cp, true
}

// MarkVerified sets peerVerified on a live session.
func (s *Store) MarkVerified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.PeerVerified = true
	return true
}

// NextSendSeq increments and returns the session's send counter.
func (s *Store) NextSendSeq(id string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0, false
	}
	sess.SendSeq++
	return sess.SendSeq, true
}

// RecordRecvSeq accepts seq iff seq > lastRecvSeq, updating lastRecvSeq on
// success. found is false if the session does not exist; accepted is
// false on a replayed or out-of-order seq.
func (s *Store) RecordRecvSeq(id string, seq uint64) (accepted bool, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false, false
	}
	if seq <= sess.LastRecvSeq {
		return false, true
	}
	sess.LastRecvSeq = seq
	return true, true
}

// Close removes a session; closing an unknown id is a no-op.
func (s *Store) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// ClearAll removes every session and returns how many were cleared.
func (s *Store) ClearAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.sessions)
	s.sessions = make(map[string]*domain.Session)
	return n
}

func newSessionID() string {
	var b [16]byte
	// Session ids only need to be unique and unguessable, not secret;
	// crypto/rand is used anyway since it's already a dependency and
	// a weaker source buys nothing here.
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
