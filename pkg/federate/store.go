package federate

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/randalmurphal/federate/pkg/federate/observability"
)

// Policy reports the two policies a registry was built with.
type Policy struct {
	// Tracked registries hold handlers weakly; see Tracker.
	Tracked bool
	// ThreadSafe registries serialize all operations behind a mutex.
	ThreadSafe bool
}

// String renders the policy as a comma separated flag list, or "none".
func (p Policy) String() string {
	var flags []string
	if p.Tracked {
		flags = append(flags, "tracked")
	}
	if p.ThreadSafe {
		flags = append(flags, "thread_safe")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ",")
}

// store owns the entry sequence and its guard. It knows nothing about
// how entries are invoked beyond resolving them to a live handler.
//
// S is the entry shape: ownedEntry for untracked registries, weakEntry for
// tracked ones. The choice is made by the outer type, never at runtime.
type store[A, R any, S slot[A, R]] struct {
	name    string
	policy  Policy
	guard   sync.Locker
	entries []S

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

func newStore[A, R any, S slot[A, R]](tracked bool, opts []Option) store[A, R, S] {
	o := buildOptions(opts)
	policy := Policy{Tracked: tracked, ThreadSafe: o.threadSafe}
	return store[A, R, S]{
		name:    o.name,
		policy:  policy,
		guard:   newGuard(o.threadSafe),
		logger:  observability.EnrichLogger(o.logger, o.name, policy.String()),
		metrics: o.metrics,
		spans:   o.spans,
	}
}

// Name returns the registry name used in logs, metrics and spans.
func (s *store[A, R, S]) Name() string {
	return s.name
}

// Policy returns the policies fixed at construction.
func (s *store[A, R, S]) Policy() Policy {
	return s.policy
}

func (s *store[A, R, S]) add(e S) {
	s.guard.Lock()
	defer s.guard.Unlock()
	s.entries = append(s.entries, e)
}

// Size returns the number of entries, including expired ones.
func (s *store[A, R, S]) Size() int {
	s.guard.Lock()
	defer s.guard.Unlock()
	return len(s.entries)
}

// Empty reports whether Size is zero.
func (s *store[A, R, S]) Empty() bool {
	return s.Size() == 0
}

// Clear removes every entry. Handlers owned by outstanding Trackers keep
// living; they are simply no longer reachable through this registry.
func (s *store[A, R, S]) Clear() {
	s.guard.Lock()
	removed := len(s.entries)
	// Zero the slots so dropped handlers are not pinned by the backing array.
	clear(s.entries)
	s.entries = s.entries[:0]
	s.guard.Unlock()

	observability.LogClear(s.logger, s.name, removed)
}

// GarbageSize returns the number of expired entries. Always 0 for
// untracked registries.
func (s *store[A, R, S]) GarbageSize() int {
	if !s.policy.Tracked {
		return 0
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	n := 0
	for _, e := range s.entries {
		if e.resolve() == nil {
			n++
		}
	}
	return n
}

// Clean removes expired entries, preserving the order of the rest.
// It does nothing on untracked registries.
func (s *store[A, R, S]) Clean() {
	if !s.policy.Tracked {
		return
	}

	s.guard.Lock()
	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e S) bool {
		return e.resolve() == nil
	})
	remaining := len(s.entries)
	s.guard.Unlock()

	removed := before - remaining
	observability.LogPurge(s.logger, s.name, removed, remaining)
	s.metrics.RecordPurge(context.Background(), s.name, removed)
}
