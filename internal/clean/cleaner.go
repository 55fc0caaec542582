// Package clean implements the cleaning passes applied to a table: null
// identification, position-keyed null substitution and IQR outlier flagging.
//
// Both transforming passes mutate the table in place and return it so calls
// can be chained:
//
//	report := clean.IdentifyNulls(clean.FlagOutliers(clean.FillNulls(t)))
package clean

import (
	"io"
	"log/slog"
)

// Replacement literals written by the cleaning passes.
const (
	// PrimeFill replaces nulls of numeric columns at a prime position.
	PrimeFill = 1111111
	// DefaultFill replaces nulls of the remaining numeric columns.
	DefaultFill = 1000001
	// NullText replaces nulls of text columns.
	NullText = "Valor Nulo"
	// OutlierText replaces numeric values outside the IQR fences.
	OutlierText = "Valor Atípico"
)

// Cleaner runs the cleaning passes and logs per-column decisions.
type Cleaner struct {
	logger *slog.Logger
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogger sets the logger used for per-column debug output
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cleaner) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Cleaner. Without options it logs nothing.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCleaner = New()
