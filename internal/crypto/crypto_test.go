package crypto_test

import (
	"bytes"
	"testing"

	"pearpass-host/internal/crypto"
)

func TestX25519_DH_Agreement(t *testing.T) {
	aSk, aPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	bSk, bPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}

	sharedA, err := crypto.DH(aSk, bPub)
	if err != nil {
		t.Fatalf("DH (a): %v", err)
	}
	sharedB, err := crypto.DH(bSk, aPub)
	if err != nil {
		t.Fatalf("DH (b): %v", err)
	}
	if sharedA != sharedB {
		t.Fatal("shared secrets disagree")
	}
}

func TestEd25519_SignVerify(t *testing.T) {
	sk, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	msg := []byte("transcript bytes")
	sig := crypto.SignEd25519(sk, msg)
	if !crypto.VerifyEd25519(pub, msg, sig) {
		t.Fatal("valid signature failed to verify")
	}

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0xFF
	if crypto.VerifyEd25519(pub, tampered, sig) {
		t.Fatal("signature verified over tampered message")
	}
}

func TestSecretbox_SealOpen_RoundTrip(t *testing.T) {
	var key [32]byte
	copy(key[:], []byte("0123456789abcdef0123456789abcde"))

	nonce, ct, err := crypto.SecretboxSeal(key, []byte("hello"))
	if err != nil {
		t.Fatalf("SecretboxSeal: %v", err)
	}
	pt, err := crypto.SecretboxOpen(key, nonce, ct)
	if err != nil {
		t.Fatalf("SecretboxOpen: %v", err)
	}
	if !bytes.Equal(pt, []byte("hello")) {
		t.Fatalf("round trip mismatch: got %q", pt)
	}

	ct[0] ^= 0xFF
	if _, err := crypto.SecretboxOpen(key, nonce, ct); err == nil {
		t.Fatal("expected open to fail over tampered ciphertext")
	}
}

func TestFingerprint_DeterministicAndFullLength(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	a := crypto.Fingerprint(pub[:])
	b := crypto.Fingerprint(pub[:])
	if a != b {
		t.Fatal("fingerprint is not deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars (32-byte sha256), got %d", len(a))
	}
}

func TestB64_RoundTrip(t *testing.T) {
	want := []byte{0, 1, 2, 255, 254, 253}
	got, err := crypto.UnB64(crypto.B64(want))
	if err != nil {
		t.Fatalf("UnB64: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Fatalf("round trip mismatch: got %v", got)
	}
}

func TestCTEqual(t *testing.T) {
	if !crypto.CTEqual([]byte("abc"), []byte("abc")) {
		t.Fatal("equal slices reported unequal")
	}
	if crypto.CTEqual([]byte("abc"), []byte("abd")) {
		t.Fatal("unequal slices reported equal")
	}
}
