package core

import "time"

// FileTimes holds the three timestamps a host records for a file.
// A zero field means "unknown" when read and "leave unchanged" when written.
type FileTimes struct {
	Creation time.Time
	Access   time.Time
	Write    time.Time
}

// TimesFS is implemented by hosts that expose file timestamps.
//
//	if tfs, ok := filesystem.(TimesFS); ok {
//	    ft, err := tfs.Times("report.txt")
//	}
type TimesFS interface {
	// Times returns the timestamps of the named file.
	// If there is an error, it will be of type *fs.PathError.
	Times(name string) (FileTimes, error)

	// SetTimes updates the non-zero fields of ft on the named file.
	// Hosts that cannot record a creation time return ErrUnsupported when
	// ft.Creation is set.
	SetTimes(name string, ft FileTimes) error
}
