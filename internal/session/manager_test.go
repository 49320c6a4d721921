package session_test

import (
	"bytes"
	"testing"

	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
	"pearpass-host/internal/handshake"
	"pearpass-host/internal/identity"
	"pearpass-host/internal/pairing"
	"pearpass-host/internal/session"
	"pearpass-host/internal/vaultkv"
)

// fixture wires an identity+pairing pair with an already-pinned peer, the
// way the façade would have it after getAppIdentity, so handshake tests
// can start directly from beginHandshake.
type fixture struct {
	mgr       *session.Manager
	store     *session.Store
	hostEdPub domain.Ed25519Public
	extEdSk   domain.Ed25519Private
	extEdPub  domain.Ed25519Public
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	kv := vaultkv.New(t.TempDir())
	kv.Unlock("pass")
	idSvc := identity.New(kv)
	cache := pairing.NewMemoryUnprotectedCache()
	pairSvc := pairing.New(kv, idSvc, cache)

	hostPub, err := idSvc.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	extEdSk, extEdPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	if err := pairSvc.PinPeer(extEdPub); err != nil {
		t.Fatalf("PinPeer: %v", err)
	}

	store := session.NewStore()
	return fixture{
		mgr:       session.NewManager(store, pairSvc, idSvc),
		store:     store,
		hostEdPub: hostPub.EdPub,
		extEdSk:   extEdSk,
		extEdPub:  extEdPub,
	}
}

func TestHandshake_HappyPath_AndSealOpenRoundTrip(t *testing.T) {
	f := newFixture(t)

	extEphSk, extEphPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}

	hostEphPubB64, sigB64, sessionID, errOut := f.mgr.BeginHandshake(crypto.B64(extEphPub[:]))
	if errOut != nil {
		t.Fatalf("BeginHandshake: %v", errOut)
	}

	hostEphRaw, err := crypto.UnB64(hostEphPubB64)
	if err != nil || len(hostEphRaw) != 32 {
		t.Fatalf("malformed hostEphPubB64: %v", err)
	}
	hostEphPub := domain.MustX25519Public(hostEphRaw)
	sig, err := crypto.UnB64(sigB64)
	if err != nil {
		t.Fatalf("UnB64 sig: %v", err)
	}

	transcript := handshake.Transcript(hostEphPub, extEphPub, f.extEdPub)
	if !crypto.VerifyEd25519(f.hostEdPub, transcript, sig) {
		t.Fatal("host transcript signature failed to verify")
	}

	preimage := handshake.ClientFinishPreimage(sessionID, transcript)
	clientSig := crypto.SignEd25519(f.extEdSk, preimage)
	if errOut := f.mgr.FinishHandshake(sessionID, crypto.B64(clientSig)); errOut != nil {
		t.Fatalf("FinishHandshake: %v", errOut)
	}

	// Idempotent once verified.
	if errOut := f.mgr.FinishHandshake(sessionID, crypto.B64(clientSig)); errOut != nil {
		t.Fatalf("FinishHandshake (2nd, should be a no-op): %v", errOut)
	}

	nonceB64, ctB64, seq, errOut := f.mgr.Seal(sessionID, []byte("hello"))
	if errOut != nil {
		t.Fatalf("Seal: %v", errOut)
	}
	if seq != 1 {
		t.Fatalf("want first seq == 1, got %d", seq)
	}

	extShared, err := crypto.DH(extEphSk, hostEphPub)
	if err != nil {
		t.Fatalf("DH: %v", err)
	}
	nonceRaw, _ := crypto.UnB64(nonceB64)
	ctRaw, _ := crypto.UnB64(ctB64)
	var nonce [24]byte
	copy(nonce[:], nonceRaw)
	plaintext, err := crypto.SecretboxOpen(extShared, nonce, ctRaw)
	if err != nil {
		t.Fatalf("extension-side SecretboxOpen: %v", err)
	}
	if !bytes.Equal(plaintext, []byte("hello")) {
		t.Fatalf("round trip mismatch: got %q", plaintext)
	}

	plaintext2, errOut := f.mgr.Open(sessionID, nonceB64, ctB64, seq)
	if errOut != nil {
		t.Fatalf("Open: %v", errOut)
	}
	if !bytes.Equal(plaintext2, []byte("hello")) {
		t.Fatalf("Open round trip mismatch: got %q", plaintext2)
	}
}

func TestOpen_ReplayDetected(t *testing.T) {
	f := newFixture(t)
	sessionID := establishedSession(t, f)

	_, _, seq, errOut := f.mgr.Seal(sessionID, []byte("one"))
	if errOut != nil {
		t.Fatalf("Seal: %v", errOut)
	}
	nonceB64, ctB64, seq2, errOut := f.mgr.Seal(sessionID, []byte("two"))
	if errOut != nil {
		t.Fatalf("Seal: %v", errOut)
	}

	if _, errOut := f.mgr.Open(sessionID, nonceB64, ctB64, seq2); errOut != nil {
		t.Fatalf("Open with a fresh seq: %v", errOut)
	}
	if _, errOut := f.mgr.Open(sessionID, nonceB64, ctB64, seq); errOut == nil || errOut.Kind != domain.ErrReplayDetected {
		t.Fatalf("want ReplayDetected for a non-increasing seq, got %v", errOut)
	}
}

func TestFinishHandshake_WrongSignature_ClosesSession(t *testing.T) {
	f := newFixture(t)

	_, extEphPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	_, _, sessionID, errOut := f.mgr.BeginHandshake(crypto.B64(extEphPub[:]))
	if errOut != nil {
		t.Fatalf("BeginHandshake: %v", errOut)
	}

	badSig := crypto.SignEd25519(f.extEdSk, []byte("not the real preimage"))
	if errOut := f.mgr.FinishHandshake(sessionID, crypto.B64(badSig)); errOut == nil || errOut.Kind != domain.ErrPeerSignatureInvalid {
		t.Fatalf("want PeerSignatureInvalid, got %v", errOut)
	}

	if _, ok := f.store.Get(sessionID); ok {
		t.Fatal("a session with an invalid client-finish signature must be closed")
	}
}

func establishedSession(t *testing.T, f fixture) string {
	t.Helper()
	extEphSk, extEphPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	hostEphPubB64, sigB64, sessionID, errOut := f.mgr.BeginHandshake(crypto.B64(extEphPub[:]))
	if errOut != nil {
		t.Fatalf("BeginHandshake: %v", errOut)
	}
	hostEphRaw, _ := crypto.UnB64(hostEphPubB64)
	hostEphPub := domain.MustX25519Public(hostEphRaw)
	sig, _ := crypto.UnB64(sigB64)
	transcript := handshake.Transcript(hostEphPub, extEphPub, f.extEdPub)
	if !crypto.VerifyEd25519(f.hostEdPub, transcript, sig) {
		t.Fatal("host transcript signature failed to verify")
	}
	preimage := handshake.ClientFinishPreimage(sessionID, transcript)
	clientSig := crypto.SignEd25519(f.extEdSk, preimage)
	if errOut := f.mgr.FinishHandshake(sessionID, crypto.B64(clientSig)); errOut != nil {
		t.Fatalf("FinishHandshake: %v", errOut)
	}
	crypto.Wipe(extEphSk[:])
	return sessionID
}
