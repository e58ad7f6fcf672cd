package salvage

import "time"

// Defaults for ParseOptions fields left at their zero value.
const (
	DefaultMaxPages             = 1000
	DefaultAlternativePageLimit = 50
	DefaultTimeout              = 60 * time.Second
	DefaultMaxFileSize          = 100 << 20 // 100 MB
)

// ParseOptions bounds a single extraction invocation. Options are immutable
// per invocation; the Service applies the same options to every call.
type ParseOptions struct {
	// MaxPages is the page ceiling for the primary tier.
	MaxPages int

	// AlternativePageLimit is the tighter page ceiling for the alternative
	// tier.
	AlternativePageLimit int

	// Timeout is the wall-clock budget for the entire tier ladder. Expiry
	// abandons in-flight work and discards partial pages.
	Timeout time.Duration

	// MaxFileSize is the input size bound checked before any tier runs.
	MaxFileSize int64
}

// DefaultParseOptions returns the default extraction options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		MaxPages:             DefaultMaxPages,
		AlternativePageLimit: DefaultAlternativePageLimit,
		Timeout:              DefaultTimeout,
		MaxFileSize:          DefaultMaxFileSize,
	}
}

// withDefaults fills zero fields from the defaults.
func (o ParseOptions) withDefaults() ParseOptions {
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.AlternativePageLimit <= 0 {
		o.AlternativePageLimit = DefaultAlternativePageLimit
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxFileSize <= 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
	return o
}
