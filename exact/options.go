package exact

import (
	"fmt"
	"io"
	"log/slog"
)

// Option configures a solver run.
type Option func(*options)

type options struct {
	bound    int // inclusive; negative means NumVertices()
	logger   *slog.Logger
	portable bool
}

// defaultOptions: any feasible size, discarded logs, hardware extract when present.
func defaultOptions() options {
	return options{
		bound:  -1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithUpperBound limits the search to solutions of at most k vertices.
// Panics on negative k.
func WithUpperBound(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("exact: WithUpperBound(%d)", k))
	}
	return func(o *options) {
		o.bound = k
	}
}

// WithLogger routes debug records of the run to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPortableExtract disables the BMI2 PEXT instruction even when the CPU
// supports it.
func WithPortableExtract() Option {
	return func(o *options) {
		o.portable = true
	}
}
