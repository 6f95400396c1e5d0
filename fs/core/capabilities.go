package core

import "time"

// Capabilities describes host behaviors that affect the result of file
// operations but cannot be discovered from the interfaces a host implements.
type Capabilities struct {
	// BlockOnOpenHandle reports whether the host refuses to delete, rename
	// or retime a file while any handle to it is open.
	BlockOnOpenHandle bool

	// TimeResolution is the granularity at which timestamps are stored.
	// Values written are truncated to this resolution.
	TimeResolution time.Duration

	// MinTime and MaxTime bound the timestamps the host can represent.
	MinTime time.Time
	MaxTime time.Time
}

// CapabilitiesFS is implemented by hosts that report their Capabilities.
type CapabilitiesFS interface {
	Capabilities() Capabilities
}

// DefaultCapabilities returns the capabilities assumed for a host that does
// not report its own: handles block, 100ns resolution and timestamps from
// 1601-01-01 through 9999-12-31.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		BlockOnOpenHandle: true,
		TimeResolution:    100 * time.Nanosecond,
		MinTime:           time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxTime:           time.Date(9999, time.December, 31, 23, 59, 59, 999999900, time.UTC),
	}
}

// CapabilitiesOf returns the capabilities reported by fsys, or
// DefaultCapabilities if fsys does not implement CapabilitiesFS.
func CapabilitiesOf(fsys FS) Capabilities {
	if c, ok := fsys.(CapabilitiesFS); ok {
		return c.Capabilities()
	}
	return DefaultCapabilities()
}

// InRange reports whether t lies within [MinTime, MaxTime]. A zero bound is
// treated as unbounded.
func (c Capabilities) InRange(t time.Time) bool {
	if !c.MinTime.IsZero() && t.Before(c.MinTime) {
		return false
	}
	if !c.MaxTime.IsZero() && t.After(c.MaxTime) {
		return false
	}
	return true
}

// Truncate rounds t down to the host's TimeResolution.
func (c Capabilities) Truncate(t time.Time) time.Time {
	if c.TimeResolution <= 0 {
		return t
	}
	return t.Truncate(c.TimeResolution)
}
