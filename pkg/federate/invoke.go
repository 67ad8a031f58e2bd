package federate

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/federate/pkg/federate/observability"
)

// Invoke calls every live handler with args, in registration order, on the
// calling goroutine, and returns their results in that order. Expired
// entries contribute nothing, so len(result) is the number of live handlers.
//
// On a thread-safe registry the guard is held until the last handler
// returns. A panicking handler aborts the walk and the panic propagates to
// the caller unchanged.
//
// ctx carries trace and metric context only; it never interrupts handlers.
func (s *store[A, R, S]) Invoke(ctx context.Context, args A) []R {
	s.guard.Lock()
	defer s.guard.Unlock()

	results := make([]R, 0, len(s.entries))
	s.walk(ctx, observability.ModeInvoke, func(_ int, fn *Handler[A, R]) {
		results = append(results, (*fn)(args))
	})
	return results
}

// Notify is Invoke without result collection, for handlers whose results
// are of no interest (typically R = Unit).
func (s *store[A, R, S]) Notify(ctx context.Context, args A) {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.walk(ctx, observability.ModeNotify, func(_ int, fn *Handler[A, R]) {
		(*fn)(args)
	})
}

// walk visits each live entry in order. The caller holds the guard.
//
// Telemetry for a panicking visit is recorded before the panic is passed
// on with its original value.
func (s *store[A, R, S]) walk(ctx context.Context, mode string, visit func(index int, fn *Handler[A, R])) {
	ctx, span := s.spans.StartInvokeSpan(ctx, s.name, mode)
	elapsed := observability.TimedOperation()

	live, expired, current := 0, 0, -1
	defer func() {
		if r := recover(); r != nil {
			err := newPanicError(s.name, current, r)
			observability.LogHandlerPanic(s.logger, s.name, mode, current, err)
			s.metrics.RecordHandlerPanic(ctx, s.name, mode)
			s.metrics.RecordInvoke(ctx, s.name, mode, live, elapsed(), err)
			s.spans.EndSpanWithError(span, err)
			panic(r)
		}
	}()

	for i, e := range s.entries {
		fn := e.resolve()
		if fn == nil {
			expired++
			continue
		}
		current = i
		visit(i, fn)
		live++
	}

	d := elapsed()
	if expired > 0 {
		s.spans.AddSpanEvent(ctx, "expired_skipped", attribute.Int("count", expired))
	}
	observability.LogInvokeComplete(s.logger, s.name, mode, live, expired, observability.Milliseconds(d))
	s.metrics.RecordInvoke(ctx, s.name, mode, live, d, nil)
	s.spans.EndSpanWithError(span, nil)
}
