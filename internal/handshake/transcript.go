package handshake

import "pearpass-host/internal/domain"

// ClientFinishTag domain-separates the client-finish signature from the
// handshake transcript signature, and from any other protocol that might
// reuse these Ed25519 keys.
const ClientFinishTag = "pearpass/client-finish/v1"

// Transcript returns hostEphPub ‖ extEphPub ‖ peerEdPub (96 bytes exactly),
// the value signed by the host at beginHandshake and re-used verbatim as
// part of the client-finish preimage.
func Transcript(hostEphPub, extEphPub domain.X25519Public, peerEdPub domain.Ed25519Public) []byte {
	out := make([]byte, 0, 96)
	out = append(out, hostEphPub[:]...)
	out = append(out, extEphPub[:]...)
	out = append(out, peerEdPub[:]...)
	return out
}

// ClientFinishPreimage returns ClientFinishTag ‖ utf8(sessionID) ‖
// transcript, the value the peer signs to prove possession of its
// long-term Ed25519 key and to bind the signature to this one session.
func ClientFinishPreimage(sessionID string, transcript []byte) []byte {
	out := make([]byte, 0, len(ClientFinishTag)+len(sessionID)+len(transcript))
	out = append(out, []byte(ClientFinishTag)...)
	out = append(out, []byte(sessionID)...)
	out = append(out, transcript...)
	return out
}
