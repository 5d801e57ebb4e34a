package engine

import (
	"sync"
)

// Registry tracks in-flight operation keys. TryAcquire is a single atomic
// test-and-insert: two concurrent callers can never both observe absence and
// both insert.
type Registry struct {
	mu       sync.Mutex
	inFlight map[Key]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{inFlight: make(map[Key]struct{})}
}

// TryAcquire inserts the key if absent and reports whether it did.
func (r *Registry) TryAcquire(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.inFlight[key]; exists {
		return false
	}
	r.inFlight[key] = struct{}{}
	return true
}

// Release removes the key. Releasing an absent key is a no-op.
func (r *Registry) Release(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, key)
}

// InFlight reports whether the key is currently held.
func (r *Registry) InFlight(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.inFlight[key]
	return exists
}
