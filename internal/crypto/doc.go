// Package crypto exposes the minimal primitives used by the pairing and
// session core.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie-Hellman (GenerateX25519, DH)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - XSalsa20-Poly1305 ("secretbox") authenticated encryption (SecretboxSeal,
//     SecretboxOpen)
//   - SHA-256 fingerprints for display/logging (Fingerprint)
//   - CSPRNG access and constant-time comparison (RandomBytes, CTEqual)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Key generation returns the fixed-size array types defined in
// internal/domain. UnB64 decodes base64 without checking lengths; its
// callers in internal/rpc and internal/session length-check the decoded
// bytes before converting them to domain key types.
package crypto
