package resolver

import "go.uber.org/zap"

type options struct {
	logger         *zap.Logger
	allMethods     bool
	ungroupedTitle string
	newKey         func(name string) string
}

type Option func(*options)

// WithLogger sets the logger that receives resolution errors and dropped
// operations.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAllMethods builds a node for every method of a path instead of only
// the first one. Nodes after the first get the method appended to PathName
// and FileName.
func WithAllMethods() Option {
	return func(o *options) {
		o.allMethods = true
	}
}

// WithUngrouped collects operations that match no declared tag into a
// trailing group with the given title. Without it they are dropped.
func WithUngrouped(title string) Option {
	return func(o *options) {
		o.ungroupedTitle = title
	}
}

// WithKeyFunc replaces the per-build key generator.
func WithKeyFunc(fn func(name string) string) Option {
	return func(o *options) {
		if fn != nil {
			o.newKey = fn
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zap.NewNop(),
		newKey: randomKey,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
