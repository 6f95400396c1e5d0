package fileops

// Option configures a FileOps.
type Option func(*config)

type config struct {
	logger      *Logger
	validator   PathValidator
	tempPattern string
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:      NewNopLogger(),
		validator:   DefaultPathValidator(),
		tempPattern: ".fileops-*",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger that records every operation. A nil logger
// discards output.
func WithLogger(logger *Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = NewNopLogger()
		}
		c.logger = logger
	}
}

// WithPathValidator replaces the per-OS invalid character check.
func WithPathValidator(v PathValidator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithTempPattern sets the name pattern for temporary files created next to
// a Copy destination. A trailing "*" is replaced by a random suffix.
func WithTempPattern(pattern string) Option {
	return func(c *config) {
		c.tempPattern = pattern
	}
}
