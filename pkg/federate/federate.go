package federate

import (
	"context"
	"weak"
)

// Maintainer is the signature-independent surface shared by every registry.
type Maintainer interface {
	Name() string
	Policy() Policy
	Size() int
	Empty() bool
	GarbageSize() int
	Clean()
	Clear()
}

// Invoker is the dispatch surface of a registry for handlers of type
// Handler[A, R].
type Invoker[A, R any] interface {
	Maintainer
	Invoke(ctx context.Context, args A) []R
	Notify(ctx context.Context, args A)
	InvokeAsync(ctx context.Context, args A) []*Future[R]
}

// Compile-time interface checks.
var (
	_ Invoker[int, int] = (*Federate[int, int])(nil)
	_ Invoker[int, int] = (*Tracked[int, int])(nil)
)

// Federate is an untracked registry: it owns every handler registered into
// it until Clear.
type Federate[A, R any] struct {
	store[A, R, ownedEntry[A, R]]
}

// New creates an empty untracked registry.
//
// Example:
//
//	f := federate.New[int, int](federate.WithThreadSafe())
//	f.Register(func(x int) int { return x * 2 })
//	f.Register(func(x int) int { return x * x })
//	results := f.Invoke(ctx, 8) // [16 64]
func New[A, R any](opts ...Option) *Federate[A, R] {
	return &Federate[A, R]{store: newStore[A, R, ownedEntry[A, R]](false, opts)}
}

// Register appends h to the registry. It panics with ErrNilHandler if h is nil.
func (f *Federate[A, R]) Register(h Handler[A, R]) {
	if h == nil {
		panic(ErrNilHandler)
	}
	fn := new(Handler[A, R])
	*fn = h
	f.add(ownedEntry[A, R]{fn: fn})
}

// Tracked is a registry that does not keep its handlers alive. Each
// registration hands ownership back to the caller as a Tracker; once every
// copy of that Tracker is unreachable the entry expires.
//
// Expiry is observed after the garbage collector has reclaimed the handler,
// so it is not immediate. Expired entries keep counting in Size until Clean
// or Clear removes them.
type Tracked[A, R any] struct {
	store[A, R, weakEntry[A, R]]
}

// NewTracked creates an empty tracked registry.
func NewTracked[A, R any](opts ...Option) *Tracked[A, R] {
	return &Tracked[A, R]{store: newStore[A, R, weakEntry[A, R]](true, opts)}
}

// Register appends h to the registry and returns the Tracker that owns it.
// Discarding the Tracker lets the handler expire. It panics with
// ErrNilHandler if h is nil.
func (t *Tracked[A, R]) Register(h Handler[A, R]) Tracker[A, R] {
	if h == nil {
		panic(ErrNilHandler)
	}
	fn := new(Handler[A, R])
	*fn = h
	t.add(weakEntry[A, R]{ref: weak.Make(fn)})
	return Tracker[A, R]{fn: fn}
}
