// SPDX-License-Identifier: MIT

package roundset

// DefaultDecimals is the rounding precision used when WithDecimals is not given.
const DefaultDecimals = 4

// Option configures a Set at construction time.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	decimals int // >= 0 after validation in New
}

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() options {
	return options{decimals: DefaultDecimals}
}

// WithDecimals sets the number of decimal places coordinates are rounded to.
// The value is validated by New: a negative count yields ErrInvalidConfiguration
// rather than a panic, because it usually comes from user configuration.
func WithDecimals(decimals int) Option {
	return func(o *options) { o.decimals = decimals }
}
