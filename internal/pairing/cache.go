package pairing

import (
	"sync"

	"pearpass-host/internal/domain"
)

// MemoryUnprotectedCache holds the confirmed peer's Ed25519 public key in a
// plain in-process variable, so status checks work while the vault-backed
// KV store is locked (spec.md §6). It must never hold a PENDING key.
type MemoryUnprotectedCache struct {
	mu  sync.RWMutex
	pub domain.Ed25519Public
	set bool
}

var _ domain.UnprotectedCache = (*MemoryUnprotectedCache)(nil)

// NewMemoryUnprotectedCache returns an empty cache.
func NewMemoryUnprotectedCache() *MemoryUnprotectedCache {
	return &MemoryUnprotectedCache{}
}

// Get returns the cached key, if any.
func (c *MemoryUnprotectedCache) Get() (domain.Ed25519Public, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pub, c.set
}

// Set stores peerEdPub, overwriting any previous value.
func (c *MemoryUnprotectedCache) Set(peerEdPub domain.Ed25519Public) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pub = peerEdPub
	c.set = true
}

// Clear empties the cache.
func (c *MemoryUnprotectedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pub = domain.Ed25519Public{}
	c.set = false
}
