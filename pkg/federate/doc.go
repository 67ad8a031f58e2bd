// Package federate provides generic multicast handler registries.
//
// # Overview
//
// A registry collects handlers sharing one signature, Handler[A, R], and
// calls all of them with a single argument value:
//
//   - Invoke runs them in registration order and returns their results.
//   - Notify does the same and discards the results.
//   - InvokeAsync runs each in its own goroutine and returns one Future per
//     handler, in registration order.
//
// Handlers with several parameters take a struct as A. Unit stands in for
// "no argument" and "no result"; Action, Thunk and Proc adapt plain
// functions to those shapes.
//
// # Policies
//
// Two policies are fixed when a registry is built.
//
// Tracking is chosen by the constructor. New returns a *Federate that owns
// its handlers. NewTracked returns a *Tracked whose Register hands back a
// Tracker; the registry only holds a weak reference, and the entry expires
// once every copy of the Tracker is unreachable:
//
//	f := federate.NewTracked[Event, federate.Unit]()
//	tracker := f.Register(federate.Action(w.OnEvent))
//	defer runtime.KeepAlive(tracker)
//
// Expired entries are skipped by every invocation, counted by GarbageSize,
// and removed by Clean or Clear.
//
// Thread-safety is chosen with WithThreadSafe. Without it a registry does
// no locking and must not be shared between goroutines.
//
// # Reentrancy
//
// A thread-safe registry holds its mutex for the whole of Invoke, Notify
// and the scheduling phase of InvokeAsync, handler bodies included. A
// handler that registers into, clears, cleans or invokes its own registry
// from inside an invocation deadlocks.
//
// # Failures
//
// The registry recovers nothing on the synchronous paths: a handler panic
// escapes Invoke or Notify with its original value and later handlers do
// not run. Under InvokeAsync a panic is captured as a *PanicError on that
// handler's Future; other futures are unaffected.
//
// # Observability
//
// WithLogger, WithMetrics and WithTracing (or WithSettings, fed from the
// config package) attach slog logging and OpenTelemetry metrics and spans.
// All are disabled by default.
package federate
