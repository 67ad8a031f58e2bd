package federate

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/federate/pkg/federate/config"
	"github.com/randalmurphal/federate/pkg/federate/observability"
)

// options holds construction-time configuration for a registry.
type options struct {
	name       string
	threadSafe bool
	logger     *slog.Logger
	metrics    observability.MetricsRecorder
	spans      observability.SpanManager
}

// defaultOptions returns an unguarded registry with telemetry disabled.
func defaultOptions() options {
	return options{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = fmt.Sprintf("fed-%s", uuid.New().String()[:8])
	}
	return o
}

// Option configures a registry at construction time.
type Option func(*options)

// WithThreadSafe serializes every operation on the registry behind a mutex.
//
// Invocations hold the mutex while handlers run, so a handler must never
// register into, clear, or invoke the registry that is calling it: doing so
// deadlocks.
func WithThreadSafe() Option {
	return func(o *options) {
		o.threadSafe = true
	}
}

// WithName labels the registry in logs, metrics and spans.
// Default: "fed-" followed by eight characters of a random UUID.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger enables structured debug logging of invocations, purges and
// handler panics. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics on the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = observability.NewMetricsRecorder()
		} else {
			o.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder installs a specific recorder. Nil restores the no-op one.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		o.metrics = m
	}
}

// WithTracing enables OpenTelemetry spans on the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.spans = observability.NewSpanManager()
		} else {
			o.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager installs a specific span manager. Nil restores the no-op one.
func WithSpanManager(s observability.SpanManager) Option {
	return func(o *options) {
		if s == nil {
			s = observability.NoopSpanManager{}
		}
		o.spans = s
	}
}

// WithSettings applies settings loaded by the config package.
// Options listed after it override individual fields.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		if s.Name != "" {
			o.name = s.Name
		}
		o.threadSafe = s.ThreadSafe
		WithMetrics(s.Metrics)(o)
		WithTracing(s.Tracing)(o)
	}
}
