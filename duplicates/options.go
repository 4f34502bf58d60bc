// SPDX-License-Identifier: MIT

package duplicates

import (
	"github.com/katalvlaran/dupguard/roundset"
	"github.com/rs/zerolog"
)

// DefaultDecimals is the rounding precision used when WithDecimals is not given.
const DefaultDecimals = roundset.DefaultDecimals

// DefaultMetrics toggles Prometheus reporting (package prom) for new managers.
const DefaultMetrics = true

// Option configures a Manager at construction time.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	decimals int            // validated by roundset.New
	logger   zerolog.Logger // zerolog.Nop() unless WithLogger
	metrics  bool           // DefaultMetrics
}

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() options {
	return options{
		decimals: DefaultDecimals,
		logger:   zerolog.Nop(),
		metrics:  DefaultMetrics,
	}
}

// WithDecimals sets the number of decimal places used to normalize
// coordinates before comparison. Negative values make NewManager fail with
// ErrInvalidConfiguration.
func WithDecimals(decimals int) Option {
	return func(o *options) { o.decimals = decimals }
}

// WithLogger routes the Manager's debug and trace events to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables or disables Prometheus reporting.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}
