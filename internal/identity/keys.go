package identity

// KV keys under which the identity is persisted (spec.md §6).
const (
	keyEd25519      = "id.ed25519"
	keyX25519       = "id.x25519"
	keyCreatedAt    = "id.createdAt"
	keyPairingSecret = "id.pairingSecret"
)
