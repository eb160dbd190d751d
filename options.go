package fairhold

import (
	"github.com/fairhold/fairhold/types"
	"github.com/fairhold/fairhold/weight"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine and all its components.
//
// The default discards all messages; inject a logger compatible with
// zap.SugaredLogger (or the internal slog adapter) to see engine activity.
func WithLogger(logger types.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock replaces the system clock.
//
// Tests inject a fixed clock so rotation distances, deadline pressure and
// forecasts are deterministic.
func WithClock(clock types.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithIDGenerator replaces the UUID generator used for alert and plan IDs.
func WithIDGenerator(idgen types.IDGenerator) Option {
	return func(e *Engine) {
		if idgen != nil {
			e.idgen = idgen
		}
	}
}

// WithMetrics sets the metrics collector.
//
// The default discards all measurements; use metrics.NewPrometheus for the
// built-in Prometheus collector.
func WithMetrics(collector types.MetricsCollector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithHooks sets the engine callbacks.
func WithHooks(hooks Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithWeightProfiles adds or replaces category weight profiles.
//
// Builtin categories keep their defaults unless overridden.
func WithWeightProfiles(profiles map[string]weight.Profile) Option {
	return func(e *Engine) {
		e.profiles = profiles
	}
}
