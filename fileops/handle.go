package fileops

import (
	"io"
	"io/fs"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// Handle is an open file returned by Create and Open. Its capability
// flags mirror the access it was opened with and all report false once it
// is closed. A Handle is not safe for concurrent use.
type Handle struct {
	file   core.File
	name   string
	access Access
	floor  int64
	closed bool
}

func newHandle(file core.File, name string, access Access) *Handle {
	return &Handle{file: file, name: name, access: access}
}

// Name returns the path the handle was opened with.
func (h *Handle) Name() string {
	return h.name
}

// CanRead reports whether the handle permits reads.
func (h *Handle) CanRead() bool {
	return !h.closed && h.access.canRead()
}

// CanWrite reports whether the handle permits writes.
func (h *Handle) CanWrite() bool {
	return !h.closed && h.access.canWrite()
}

// CanSeek reports whether the handle permits seeking.
func (h *Handle) CanSeek() bool {
	if h.closed {
		return false
	}
	_, ok := h.file.(io.Seeker)
	return ok
}

func (h *Handle) fail(code errors.ErrorCode, cause error, msg string) error {
	if cause == nil {
		return errors.WithContext(errors.New(code, msg), "path", h.name)
	}
	return errors.WrapWithContext(cause, code, msg, map[string]interface{}{"path": h.name})
}

func (h *Handle) check(allowed bool, what string) error {
	if h.closed {
		return h.fail(errors.CodeIO, fs.ErrClosed, "cannot access a closed file")
	}
	if !allowed {
		return h.fail(errors.CodeNotSupported, nil, "handle does not support "+what)
	}
	return nil
}

// Read implements io.Reader. io.EOF is returned unwrapped.
func (h *Handle) Read(p []byte) (int, error) {
	if err := h.check(h.access.canRead(), "reading"); err != nil {
		return 0, err
	}
	n, err := h.file.Read(p)
	if err != nil && err != io.EOF {
		return n, h.fail(hostCode(err), err, "read failed")
	}
	return n, err
}

// Write implements io.Writer.
func (h *Handle) Write(p []byte) (int, error) {
	if err := h.check(h.access.canWrite(), "writing"); err != nil {
		return 0, err
	}
	n, err := h.file.Write(p)
	if err != nil {
		return n, h.fail(hostCode(err), err, "write failed")
	}
	return n, nil
}

// Seek implements io.Seeker. A handle opened with ModeAppend cannot seek
// before the length the file had when it was opened.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := h.file.(io.Seeker)
	if err := h.check(ok, "seeking"); err != nil {
		return 0, err
	}
	if h.floor > 0 {
		target, err := h.target(seeker, offset, whence)
		if err != nil {
			return 0, err
		}
		if target < h.floor {
			return 0, h.fail(errors.CodeIO, nil, "cannot seek before data that existed when the file was opened for append")
		}
	}
	pos, err := seeker.Seek(offset, whence)
	if err != nil {
		return pos, h.fail(errors.CodeIO, err, "seek failed")
	}
	return pos, nil
}

func (h *Handle) target(seeker io.Seeker, offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		return offset, nil
	case io.SeekCurrent:
		cur, err := seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, h.fail(errors.CodeIO, err, "seek failed")
		}
		return cur + offset, nil
	case io.SeekEnd:
		size, err := h.Length()
		if err != nil {
			return 0, err
		}
		return size + offset, nil
	default:
		return 0, h.fail(errors.CodeArgumentOutOfRange, nil, "invalid whence")
	}
}

// Length returns the current size of the file in bytes.
func (h *Handle) Length() (int64, error) {
	if err := h.check(true, ""); err != nil {
		return 0, err
	}
	info, err := h.file.Stat()
	if err != nil {
		return 0, h.fail(hostCode(err), err, "stat failed")
	}
	return info.Size(), nil
}

// SetLength truncates or extends the file to size bytes.
func (h *Handle) SetLength(size int64) error {
	if err := h.check(h.access.canWrite(), "writing"); err != nil {
		return err
	}
	if size < 0 {
		return h.fail(errors.CodeArgumentOutOfRange, nil, "length cannot be negative")
	}
	if size < h.floor {
		return h.fail(errors.CodeIO, nil, "cannot truncate data that existed when the file was opened for append")
	}
	t, ok := h.file.(core.Truncater)
	if !ok {
		return h.fail(errors.CodeNotSupported, core.ErrUnsupported, "host cannot truncate files")
	}
	if err := t.Truncate(size); err != nil {
		return h.fail(hostCode(err), err, "truncate failed")
	}
	return nil
}

// Flush commits written data to stable storage where the host supports it.
func (h *Handle) Flush() error {
	if err := h.check(true, ""); err != nil {
		return err
	}
	if s, ok := h.file.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			return h.fail(hostCode(err), err, "flush failed")
		}
	}
	return nil
}

// Close releases the handle. Closing twice fails with an IO error wrapping
// fs.ErrClosed.
func (h *Handle) Close() error {
	if h.closed {
		return h.fail(errors.CodeIO, fs.ErrClosed, "file already closed")
	}
	h.closed = true
	if err := h.file.Close(); err != nil {
		return h.fail(hostCode(err), err, "close failed")
	}
	return nil
}

// seekEnd positions the handle at the end of the file and forbids seeking
// back before that point.
func (h *Handle) seekEnd() error {
	seeker, ok := h.file.(io.Seeker)
	if !ok {
		return nil
	}
	pos, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return h.fail(errors.CodeIO, err, "seek failed")
	}
	h.floor = pos
	return nil
}

var (
	_ io.ReadWriteSeeker = (*Handle)(nil)
	_ io.Closer          = (*Handle)(nil)
)
