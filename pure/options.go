package pure

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures a Cacher, FallibleCacher or Tableize function.
type Option func(*options)

// WithLogger makes the cacher report hits, misses and table failures to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
