package handshake_test

import (
	"bytes"
	"testing"

	"pearpass-host/internal/domain"
	"pearpass-host/internal/handshake"
)

func TestTranscript_IsConcatenationInOrder(t *testing.T) {
	var hostEph, extEph domain.X25519Public
	var peerEd domain.Ed25519Public
	for i := range hostEph {
		hostEph[i] = byte(i)
	}
	for i := range extEph {
		extEph[i] = byte(i + 32)
	}
	for i := range peerEd {
		peerEd[i] = byte(i + 64)
	}

	got := handshake.Transcript(hostEph, extEph, peerEd)
	if len(got) != 96 {
		t.Fatalf("want 96 bytes, got %d", len(got))
	}
	want := append(append(append([]byte{}, hostEph[:]...), extEph[:]...), peerEd[:]...)
	if !bytes.Equal(got, want) {
		t.Fatal("transcript is not hostEphPub || extEphPub || peerEdPub")
	}
}

func TestTranscript_BindsEveryByte(t *testing.T) {
	var hostEph, extEph domain.X25519Public
	var peerEd domain.Ed25519Public

	base := handshake.Transcript(hostEph, extEph, peerEd)

	flipped := hostEph
	flipped[0] ^= 0xFF
	if bytes.Equal(base, handshake.Transcript(flipped, extEph, peerEd)) {
		t.Fatal("flipping a hostEphPub byte did not change the transcript")
	}

	flippedExt := extEph
	flippedExt[0] ^= 0xFF
	if bytes.Equal(base, handshake.Transcript(hostEph, flippedExt, peerEd)) {
		t.Fatal("flipping an extEphPub byte did not change the transcript")
	}

	flippedPeer := peerEd
	flippedPeer[0] ^= 0xFF
	if bytes.Equal(base, handshake.Transcript(hostEph, extEph, flippedPeer)) {
		t.Fatal("flipping a peerEdPub byte did not change the transcript")
	}
}

func TestClientFinishPreimage_BindsSessionID(t *testing.T) {
	transcript := []byte("fixed transcript bytes padded to any length")
	a := handshake.ClientFinishPreimage("session-a", transcript)
	b := handshake.ClientFinishPreimage("session-b", transcript)
	if bytes.Equal(a, b) {
		t.Fatal("different session ids produced the same preimage")
	}
}
