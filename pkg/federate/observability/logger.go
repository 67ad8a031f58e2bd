// Package observability provides logging, metrics and tracing hooks for
// federate registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// Invocation modes used as the "mode" field, metric attribute and span suffix.
const (
	ModeInvoke      = "invoke"
	ModeNotify      = "notify"
	ModeInvokeAsync = "invoke_async"
)

// EnrichLogger adds registry context to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "orders", "tracked,thread_safe")
//	enriched.Info("registered") // includes federate and policy
func EnrichLogger(logger *slog.Logger, name, policy string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("federate", name),
		slog.String("policy", policy),
	)
}

// LogInvokeComplete logs a finished synchronous invocation or async dispatch.
func LogInvokeComplete(logger *slog.Logger, name, mode string, handlers, expired int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("invocation completed",
		slog.String("federate", name),
		slog.String("mode", mode),
		slog.Int("handlers", handlers),
		slog.Int("expired", expired),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogHandlerPanic logs a handler that panicked during an invocation.
func LogHandlerPanic(logger *slog.Logger, name, mode string, index int, err error) {
	if logger == nil {
		return
	}
	logger.Error("handler panicked",
		slog.String("federate", name),
		slog.String("mode", mode),
		slog.Int("index", index),
		slog.String("error", err.Error()),
	)
}

// LogPurge logs expired entries removed by Clean.
func LogPurge(logger *slog.Logger, name string, removed, remaining int) {
	if logger == nil || removed == 0 {
		return
	}
	logger.Debug("expired handlers purged",
		slog.String("federate", name),
		slog.Int("removed", removed),
		slog.Int("remaining", remaining),
	)
}

// LogClear logs a registry being emptied.
func LogClear(logger *slog.Logger, name string, removed int) {
	if logger == nil {
		return
	}
	logger.Debug("federate cleared",
		slog.String("federate", name),
		slog.Int("removed", removed),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
