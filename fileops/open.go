package fileops

import (
	"github.com/jmgilman/go/errors"
)

// Open opens path with the given mode and access.
//
// Modes that create or discard content require write access; pairing
// them with AccessRead fails with InvalidArgument before the host is
// consulted.
func (o *FileOps) Open(path string, mode OpenMode, access Access) (*Handle, error) {
	c := o.begin(OpOpen, "Open").
		with("path", path).
		with("mode", mode.String()).
		with("access", access.String())
	h, err := o.open(c, path, mode, access)
	return h, c.done(err)
}

// OpenDefault opens path with the given mode and read/write access.
func (o *FileOps) OpenDefault(path string, mode OpenMode) (*Handle, error) {
	return o.Open(path, mode, AccessReadWrite)
}

// OpenRead opens an existing file for reading.
func (o *FileOps) OpenRead(path string) (*Handle, error) {
	return o.Open(path, ModeOpen, AccessRead)
}

// OpenWrite opens or creates a file for writing, keeping its content.
func (o *FileOps) OpenWrite(path string) (*Handle, error) {
	return o.Open(path, ModeOpenOrCreate, AccessWrite)
}

func (o *FileOps) open(c *call, path string, mode OpenMode, access Access) (*Handle, error) {
	if err := c.checkPath("path", path); err != nil {
		return nil, err
	}
	if !mode.valid() {
		return nil, c.fail(errors.CodeArgumentOutOfRange, "mode %d is not a valid open mode", int(mode))
	}
	if !access.valid() {
		return nil, c.fail(errors.CodeArgumentOutOfRange, "access %d is not a valid access", int(access))
	}
	if mode.writes() && !access.canWrite() {
		return nil, c.fail(errors.CodeInvalidArgument, "mode %s cannot be combined with access %s", mode, access)
	}

	if err := c.checkParent(path); err != nil {
		return nil, err
	}
	info, err := c.stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case info != nil && info.IsDir():
		return nil, c.fail(errors.CodeIO, "path %q is a directory", path)
	case info == nil && !mode.creates():
		return nil, c.fail(errors.CodeFileNotFound, "could not find file %q", path)
	case info != nil && mode == ModeCreateNew:
		return nil, c.fail(errors.CodeAlreadyExists, "file %q already exists", path)
	}

	f, err := o.host.OpenFile(path, flags(mode, access), 0o666)
	if err != nil {
		return nil, c.host(err, "could not open %q", path)
	}
	h := newHandle(f, path, access)
	if mode == ModeAppend {
		if err := h.seekEnd(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return h, nil
}
