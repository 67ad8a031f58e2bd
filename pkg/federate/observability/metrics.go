package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records federate metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordInvoke records one invocation over handlers live entries.
	RecordInvoke(ctx context.Context, name, mode string, handlers int, duration time.Duration, err error)

	// RecordHandlerPanic records a single handler failure.
	RecordHandlerPanic(ctx context.Context, name, mode string)

	// RecordPurge records expired entries removed from a registry.
	RecordPurge(ctx context.Context, name string, removed int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	invocations   metric.Int64Counter
	handlerCalls  metric.Int64Counter
	handlerPanics metric.Int64Counter
	invokeLatency metric.Float64Histogram
	purged        metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter("federate"))
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	invocations, err := meter.Int64Counter("federate.invocations",
		metric.WithDescription("Number of registry invocations"),
	)
	if err != nil {
		return nil, err
	}

	handlerCalls, err := meter.Int64Counter("federate.handler.calls",
		metric.WithDescription("Number of live handlers called or scheduled"),
	)
	if err != nil {
		return nil, err
	}

	handlerPanics, err := meter.Int64Counter("federate.handler.panics",
		metric.WithDescription("Number of handlers that panicked"),
	)
	if err != nil {
		return nil, err
	}

	invokeLatency, err := meter.Float64Histogram("federate.invoke.latency_ms",
		metric.WithDescription("Invocation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	purged, err := meter.Int64Counter("federate.entries.purged",
		metric.WithDescription("Number of expired entries removed by clean"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		invocations:   invocations,
		handlerCalls:  handlerCalls,
		handlerPanics: handlerPanics,
		invokeLatency: invokeLatency,
		purged:        purged,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFrom builds a recorder on an explicit meter provider.
func NewMetricsRecorderFrom(provider metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(provider.Meter("federate"))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordInvoke records an invocation.
func (m *otelMetrics) RecordInvoke(ctx context.Context, name, mode string, handlers int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("federate", name),
		attribute.String("mode", mode),
		attribute.Bool("success", err == nil),
	)

	m.invocations.Add(ctx, 1, attrs)
	m.handlerCalls.Add(ctx, int64(handlers), attrs)
	m.invokeLatency.Record(ctx, Milliseconds(duration), attrs)
}

// RecordHandlerPanic records a handler panic.
func (m *otelMetrics) RecordHandlerPanic(ctx context.Context, name, mode string) {
	m.handlerPanics.Add(ctx, 1, metric.WithAttributes(
		attribute.String("federate", name),
		attribute.String("mode", mode),
	))
}

// RecordPurge records purged entries. Zero counts are skipped.
func (m *otelMetrics) RecordPurge(ctx context.Context, name string, removed int) {
	if removed <= 0 {
		return
	}
	m.purged.Add(ctx, int64(removed), metric.WithAttributes(
		attribute.String("federate", name),
	))
}
