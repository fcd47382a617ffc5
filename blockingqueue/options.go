package blockingqueue

import "go.uber.org/zap"

type options struct {
	capacity int
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// Option configures a Queue at construction.
type Option func(*options)

// WithCapacity preallocates room for n elements. It is a sizing hint, not a
// bound: the queue still grows without limit.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
