package fileops

import (
	"time"

	"github.com/jmgilman/go/errors"
)

// Nullable exposes the FileOps operations with *string paths. A nil path
// fails with NullArgument before anything else is checked; Exists reports
// false instead.
type Nullable struct {
	o *FileOps
}

// Nullable returns the *string adapter for o.
func (o *FileOps) Nullable() *Nullable {
	return &Nullable{o: o}
}

func (n *Nullable) null(op Operation, name, arg string) error {
	c := n.o.begin(op, name)
	return c.done(c.fail(errors.CodeNullArgument, "%s cannot be nil", arg))
}

// Exists reports false for a nil path.
func (n *Nullable) Exists(path *string) bool {
	if path == nil {
		return false
	}
	return n.o.Exists(*path)
}

// Create is FileOps.Create.
func (n *Nullable) Create(path *string) (*Handle, error) {
	if path == nil {
		return nil, n.null(OpCreate, "Create", "path")
	}
	return n.o.Create(*path)
}

// Open is FileOps.Open.
func (n *Nullable) Open(path *string, mode OpenMode, access Access) (*Handle, error) {
	if path == nil {
		return nil, n.null(OpOpen, "Open", "path")
	}
	return n.o.Open(*path, mode, access)
}

// OpenRead is FileOps.OpenRead.
func (n *Nullable) OpenRead(path *string) (*Handle, error) {
	return n.Open(path, ModeOpen, AccessRead)
}

// OpenWrite is FileOps.OpenWrite.
func (n *Nullable) OpenWrite(path *string) (*Handle, error) {
	return n.Open(path, ModeOpenOrCreate, AccessWrite)
}

// Copy is FileOps.Copy.
func (n *Nullable) Copy(src, dst *string, overwrite bool) error {
	switch {
	case src == nil:
		return n.null(OpCopy, "Copy", "source")
	case dst == nil:
		return n.null(OpCopy, "Copy", "dest")
	}
	return n.o.Copy(*src, *dst, overwrite)
}

// Move is FileOps.Move.
func (n *Nullable) Move(src, dst *string) error {
	switch {
	case src == nil:
		return n.null(OpMove, "Move", "source")
	case dst == nil:
		return n.null(OpMove, "Move", "dest")
	}
	return n.o.Move(*src, *dst)
}

// Delete is FileOps.Delete.
func (n *Nullable) Delete(path *string) error {
	if path == nil {
		return n.null(OpDelete, "Delete", "path")
	}
	return n.o.Delete(*path)
}

// GetTime is FileOps.GetTime.
func (n *Nullable) GetTime(path *string, kind TimestampKind, utc bool) (time.Time, error) {
	if path == nil {
		return time.Time{}, n.null(OpGetTime, timeOpName(false, kind, utc), "path")
	}
	return n.o.GetTime(*path, kind, utc)
}

// SetTime is FileOps.SetTime.
func (n *Nullable) SetTime(path *string, kind TimestampKind, utc bool, t time.Time) error {
	if path == nil {
		return n.null(OpSetTime, timeOpName(true, kind, utc), "path")
	}
	return n.o.SetTime(*path, kind, utc, t)
}
