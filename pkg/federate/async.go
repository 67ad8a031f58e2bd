package federate

import (
	"context"
	"runtime"

	"github.com/randalmurphal/federate/pkg/federate/observability"
)

// InvokeAsync starts one goroutine per live handler and returns their
// futures in registration order. Completion order is unspecified.
//
// Liveness is decided here, at scheduling time. Each goroutine holds a
// strong reference to its handler, so a tracked handler whose Tracker is
// dropped mid-flight still runs to completion. Every goroutine receives its
// own copy of args; sharing mutable state through pointers inside args is
// the caller's business.
//
// A handler panic is recovered in its goroutine and surfaces only from that
// handler's Future as a *PanicError. There is no way to cancel a scheduled
// handler.
func (s *store[A, R, S]) InvokeAsync(ctx context.Context, args A) []*Future[R] {
	s.guard.Lock()
	defer s.guard.Unlock()

	futures := make([]*Future[R], 0, len(s.entries))
	s.walk(ctx, observability.ModeInvokeAsync, func(index int, fn *Handler[A, R]) {
		futures = append(futures, s.spawn(ctx, index, fn, args))
	})
	return futures
}

func (s *store[A, R, S]) spawn(ctx context.Context, index int, fn *Handler[A, R], args A) *Future[R] {
	f := newFuture[R]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err := newPanicError(s.name, index, r)
				observability.LogHandlerPanic(s.logger, s.name, observability.ModeInvokeAsync, index, err)
				s.metrics.RecordHandlerPanic(ctx, s.name, observability.ModeInvokeAsync)
				var zero R
				f.complete(zero, err)
			}
		}()
		v := (*fn)(args)
		runtime.KeepAlive(fn)
		f.complete(v, nil)
	}()
	return f
}
