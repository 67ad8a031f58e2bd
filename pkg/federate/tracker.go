package federate

import "weak"

// Tracker is the caller-held owner of a handler registered with
// (*Tracked).Register.
//
// The registry itself only keeps a weak reference. As long as any copy of
// the Tracker is reachable the handler stays registered and live; once the
// last copy becomes unreachable the garbage collector reclaims the handler
// and its entry expires. Expired entries are skipped by every invocation
// and removed by Clean or Clear.
//
// Copying a Tracker is cheap and shares ownership. If a handler closure
// captures its own Tracker the handler never expires.
type Tracker[A, R any] struct {
	fn *Handler[A, R]
}

// Valid reports whether t was returned by a registration. The zero
// Tracker owns nothing.
func (t Tracker[A, R]) Valid() bool {
	return t.fn != nil
}

// slot is the storage shape of one entry. resolve returns the strong
// handler pointer, or nil once the entry has expired.
type slot[A, R any] interface {
	resolve() *Handler[A, R]
}

// ownedEntry is an untracked entry: the registry holds the only reference.
type ownedEntry[A, R any] struct {
	fn *Handler[A, R]
}

func (o ownedEntry[A, R]) resolve() *Handler[A, R] {
	return o.fn
}

// weakEntry is a tracked entry. Its handler lives exactly as long as a Tracker.
type weakEntry[A, R any] struct {
	ref weak.Pointer[Handler[A, R]]
}

func (w weakEntry[A, R]) resolve() *Handler[A, R] {
	return w.ref.Value()
}
