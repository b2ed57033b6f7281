package vmem

import "log/slog"

type options struct {
	trace TraceFunc
}

// Option configures VMem constructor behavior.
type Option func(*options)

// WithTrace configures the sink that receives one rendered message per
// failed operation. Pass nil to disable reporting (the default).
func WithTrace(fn TraceFunc) Option {
	return func(o *options) {
		o.trace = fn
	}
}

// WithLogger reports failed operations to logger at error level.
// Convenience wrapper for WithTrace. Pass nil to disable reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			o.trace = nil
			return
		}
		o.trace = func(msg string) {
			logger.Error(msg)
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
