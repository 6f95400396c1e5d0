package fileops

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// TimestampKind selects one of the three timestamps a file carries.
type TimestampKind int

// Timestamp kinds.
const (
	Creation TimestampKind = iota + 1
	LastAccess
	LastWrite
)

func (k TimestampKind) String() string {
	switch k {
	case Creation:
		return "Creation"
	case LastAccess:
		return "LastAccess"
	case LastWrite:
		return "LastWrite"
	default:
		return fmt.Sprintf("TimestampKind(%d)", int(k))
	}
}

func (k TimestampKind) valid() bool {
	return k >= Creation && k <= LastWrite
}

func (k TimestampKind) from(ft core.FileTimes) time.Time {
	switch k {
	case Creation:
		return ft.Creation
	case LastAccess:
		return ft.Access
	default:
		return ft.Write
	}
}

func (k TimestampKind) times(t time.Time) core.FileTimes {
	switch k {
	case Creation:
		return core.FileTimes{Creation: t}
	case LastAccess:
		return core.FileTimes{Access: t}
	default:
		return core.FileTimes{Write: t}
	}
}

func timeOpName(set bool, kind TimestampKind, utc bool) string {
	name := "Get"
	if set {
		name = "Set"
	}
	name += kind.String() + "Time"
	if utc {
		name += "UTC"
	}
	return name
}

func zone(utc bool) string {
	if utc {
		return "UTC"
	}
	return "Local"
}

// GetTime returns the kind timestamp of path, in UTC or local time.
//
// A missing path fails with an IO error rather than FileNotFound.
func (o *FileOps) GetTime(path string, kind TimestampKind, utc bool) (time.Time, error) {
	c := o.begin(OpGetTime, timeOpName(false, kind, utc)).
		with("path", path).
		with("kind", kind.String())
	t, err := o.getTime(c, path, kind, utc)
	return t, c.done(err)
}

func (o *FileOps) getTime(c *call, path string, kind TimestampKind, utc bool) (time.Time, error) {
	if err := c.checkPath("path", path); err != nil {
		return time.Time{}, err
	}
	if !kind.valid() {
		return time.Time{}, c.fail(errors.CodeArgumentOutOfRange, "kind %d is not a valid timestamp kind", int(kind))
	}

	info, err := o.host.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, c.wrap(err, errors.CodeIO, "could not find %q", path)
		}
		return time.Time{}, c.host(err, "could not inspect %q", path)
	}

	var t time.Time
	if tfs, ok := o.host.(core.TimesFS); ok {
		ft, err := tfs.Times(path)
		if err != nil {
			return time.Time{}, c.host(err, "could not read times of %q", path)
		}
		t = kind.from(ft)
	} else if kind == LastWrite {
		t = info.ModTime()
	}
	if t.IsZero() {
		return time.Time{}, c.wrap(core.ErrUnsupported, errors.CodeNotSupported,
			"host does not record %s time", kind)
	}

	if utc {
		return t.UTC(), nil
	}
	return t.In(time.Local), nil
}

// SetTime sets the kind timestamp of path. t is stored as an instant,
// truncated to the host's time resolution; utc only selects which accessor
// is reported in errors and logs.
func (o *FileOps) SetTime(path string, kind TimestampKind, utc bool, t time.Time) error {
	c := o.begin(OpSetTime, timeOpName(true, kind, utc)).
		with("path", path).
		with("kind", kind.String())
	return c.done(o.setTime(c, path, kind, utc, t))
}

func (o *FileOps) setTime(c *call, path string, kind TimestampKind, utc bool, t time.Time) error {
	if err := c.checkPath("path", path); err != nil {
		return err
	}
	if !kind.valid() {
		return c.fail(errors.CodeArgumentOutOfRange, "kind %d is not a valid timestamp kind", int(kind))
	}

	info, err := c.stat(path)
	if err != nil {
		return err
	}
	if info == nil {
		return c.wrap(fs.ErrNotExist, errors.CodeFileNotFound, "could not find file %q", path)
	}

	if o.caps.BlockOnOpenHandle {
		if ht, ok := o.host.(core.HandleTracker); ok && ht.InUse(path) {
			return c.wrap(core.ErrBusy, errors.CodeBusy, "file %q is in use", path)
		}
	}

	if t.IsZero() || !o.caps.InRange(t) {
		return c.with("time", t.Format(time.RFC3339Nano)).fail(errors.CodeArgumentOutOfRange,
			"%s time %s is outside the range the host can represent", zone(utc), t.Format(time.RFC3339Nano))
	}

	tfs, ok := o.host.(core.TimesFS)
	if !ok {
		return c.wrap(core.ErrUnsupported, errors.CodeNotSupported, "host cannot set file times")
	}
	if err := tfs.SetTimes(path, kind.times(o.caps.Truncate(t))); err != nil {
		return c.host(err, "could not set %s time of %q", kind, path)
	}
	return nil
}

// GetCreationTime returns the creation time of path in local time.
func (o *FileOps) GetCreationTime(path string) (time.Time, error) {
	return o.GetTime(path, Creation, false)
}

// GetCreationTimeUTC returns the creation time of path in UTC.
func (o *FileOps) GetCreationTimeUTC(path string) (time.Time, error) {
	return o.GetTime(path, Creation, true)
}

// GetLastAccessTime returns the last access time of path in local time.
func (o *FileOps) GetLastAccessTime(path string) (time.Time, error) {
	return o.GetTime(path, LastAccess, false)
}

// GetLastAccessTimeUTC returns the last access time of path in UTC.
func (o *FileOps) GetLastAccessTimeUTC(path string) (time.Time, error) {
	return o.GetTime(path, LastAccess, true)
}

// GetLastWriteTime returns the last write time of path in local time.
func (o *FileOps) GetLastWriteTime(path string) (time.Time, error) {
	return o.GetTime(path, LastWrite, false)
}

// GetLastWriteTimeUTC returns the last write time of path in UTC.
func (o *FileOps) GetLastWriteTimeUTC(path string) (time.Time, error) {
	return o.GetTime(path, LastWrite, true)
}

// SetCreationTime sets the creation time of path.
func (o *FileOps) SetCreationTime(path string, t time.Time) error {
	return o.SetTime(path, Creation, false, t)
}

// SetCreationTimeUTC sets the creation time of path.
func (o *FileOps) SetCreationTimeUTC(path string, t time.Time) error {
	return o.SetTime(path, Creation, true, t)
}

// SetLastAccessTime sets the last access time of path.
func (o *FileOps) SetLastAccessTime(path string, t time.Time) error {
	return o.SetTime(path, LastAccess, false, t)
}

// SetLastAccessTimeUTC sets the last access time of path.
func (o *FileOps) SetLastAccessTimeUTC(path string, t time.Time) error {
	return o.SetTime(path, LastAccess, true, t)
}

// SetLastWriteTime sets the last write time of path.
func (o *FileOps) SetLastWriteTime(path string, t time.Time) error {
	return o.SetTime(path, LastWrite, false, t)
}

// SetLastWriteTimeUTC sets the last write time of path.
func (o *FileOps) SetLastWriteTimeUTC(path string, t time.Time) error {
	return o.SetTime(path, LastWrite, true, t)
}
