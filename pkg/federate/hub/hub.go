package hub

import (
	"context"
	"sync"
	"time"

	"github.com/randalmurphal/federate/pkg/federate"
)

// Hub is a thread-safe collection of registries indexed by topic.
// It uses sync.RWMutex for read-heavy workloads; the registries themselves
// keep whatever thread-safety policy the factory gave them.
type Hub[K comparable, F federate.Maintainer] struct {
	mu      sync.RWMutex
	topics  map[K]F
	factory func(K) F
}

// New creates an empty hub. factory builds the registry for a topic the
// first time Topic sees it.
func New[K comparable, F federate.Maintainer](factory func(K) F) *Hub[K, F] {
	return &Hub[K, F]{
		topics:  make(map[K]F),
		factory: factory,
	}
}

// Topic returns the registry for key, creating it with the factory if it
// doesn't exist. The factory is called at most once per key, even under
// concurrent access.
func (h *Hub[K, F]) Topic(key K) F {
	// Fast path: check if already exists
	h.mu.RLock()
	f, ok := h.topics[key]
	h.mu.RUnlock()
	if ok {
		return f
	}

	// Slow path: create with write lock
	h.mu.Lock()
	defer h.mu.Unlock()

	// Double-check after acquiring write lock
	if f, ok := h.topics[key]; ok {
		return f
	}

	f = h.factory(key)
	h.topics[key] = f
	return f
}

// Get returns the registry for key and whether it exists.
func (h *Hub[K, F]) Get(key K) (F, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	f, ok := h.topics[key]
	return f, ok
}

// Has returns true if a registry exists for key.
func (h *Hub[K, F]) Has(key K) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.topics[key]
	return ok
}

// Delete clears the registry for key and removes it from the hub.
func (h *Hub[K, F]) Delete(key K) {
	h.mu.Lock()
	f, ok := h.topics[key]
	delete(h.topics, key)
	h.mu.Unlock()

	if ok {
		f.Clear()
	}
}

// Keys returns all topics. The order is not guaranteed.
func (h *Hub[K, F]) Keys() []K {
	h.mu.RLock()
	defer h.mu.RUnlock()
	keys := make([]K, 0, len(h.topics))
	for k := range h.topics {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of topics.
func (h *Hub[K, F]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics)
}

// Range calls fn for each topic until fn returns false.
//
// Range iterates over a snapshot, so fn may call Topic or Delete without
// affecting the current iteration.
func (h *Hub[K, F]) Range(fn func(K, F) bool) {
	for k, f := range h.snapshot() {
		if !fn(k, f) {
			return
		}
	}
}

func (h *Hub[K, F]) snapshot() map[K]F {
	h.mu.RLock()
	defer h.mu.RUnlock()
	snapshot := make(map[K]F, len(h.topics))
	for k, f := range h.topics {
		snapshot[k] = f
	}
	return snapshot
}

// GarbageSize returns the expired entry count summed over all topics.
func (h *Hub[K, F]) GarbageSize() int {
	total := 0
	for _, f := range h.snapshot() {
		total += f.GarbageSize()
	}
	return total
}

// Clean purges expired entries from every topic.
func (h *Hub[K, F]) Clean() {
	for _, f := range h.snapshot() {
		f.Clean()
	}
}

// Prune removes topics whose registry is empty and returns how many were
// removed.
//
// A topic emptied concurrently with Prune may survive until the next call.
func (h *Hub[K, F]) Prune() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for k, f := range h.topics {
		if f.Empty() {
			delete(h.topics, k)
			removed++
		}
	}
	return removed
}

// Sweep calls Clean every interval until ctx is done, then returns
// ctx.Err(). Run it in its own goroutine:
//
//	go h.Sweep(ctx, settings.SweepInterval)
//
// The topics' registries must be thread-safe, since Sweep touches them
// from another goroutine.
func (h *Hub[K, F]) Sweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.Clean()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
