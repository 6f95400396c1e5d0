package billy

import (
	"time"

	"github.com/jmgilman/go/fs/core"
)

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	caps core.Capabilities
	now  func() time.Time
}

func newConfig(caps core.Capabilities, opts []Option) config {
	cfg := config{caps: caps, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBlockOnOpenHandle controls whether Remove, Rename and SetTimes fail
// with core.ErrBusy while a handle to the file is open. Enabled by default.
func WithBlockOnOpenHandle(block bool) Option {
	return func(c *config) {
		c.caps.BlockOnOpenHandle = block
	}
}

// WithTimeResolution overrides the granularity reported for stored timestamps.
func WithTimeResolution(d time.Duration) Option {
	return func(c *config) {
		c.caps.TimeResolution = d
	}
}

// WithTimeRange overrides the earliest and latest timestamps the
// filesystem accepts.
func WithTimeRange(minTime, maxTime time.Time) Option {
	return func(c *config) {
		c.caps.MinTime = minTime
		c.caps.MaxTime = maxTime
	}
}

// WithClock sets the clock used to stamp newly created and modified files.
// Only the memory filesystem consults it.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
