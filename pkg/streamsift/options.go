package streamsift

import (
	"io"
	"log/slog"
)

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultMaxNameLength caps the length of stream names fed to extraction
// patterns. Longer names skip extraction (no highlighting) rather than
// spending unbounded matcher time; include/exclude checks still run.
const DefaultMaxNameLength = 4096

// Option configures an Engine using the functional options pattern.
type Option func(*engineConfig)

// engineConfig holds internal configuration for the engine.
type engineConfig struct {
	logger        *slog.Logger
	rules         RuleSource
	workers       int
	maxNameLength int
}

// defaultEngineConfig returns an engineConfig with sensible defaults.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:        discardLogger,
		rules:         DefaultRules(),
		workers:       1,
		maxNameLength: DefaultMaxNameLength,
	}
}

// applyOptions applies functional options to an engineConfig.
func applyOptions(opts []Option) *engineConfig {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger sets a custom logger for soft warnings (invalid patterns,
// over-length names). If logger is nil, logging is disabled (default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRuleSource replaces the built-in filter rule source. If src is nil,
// this option has no effect (the default rule set remains active).
func WithRuleSource(src RuleSource) Option {
	return func(c *engineConfig) {
		if src != nil {
			c.rules = src
		}
	}
}

// WithWorkers sets the number of goroutines ClassifyAll uses. Values
// below 1 are treated as 1 (sequential, the default). Classification is
// side-effect-free, so any worker count preserves per-name results and
// output order.
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithMaxNameLength sets the extraction length cap for stream names.
// 0 disables the cap (not recommended for untrusted listings).
func WithMaxNameLength(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.maxNameLength = n
		}
	}
}
