package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fs/core"
)

// File wraps billy.File to implement both core.File and fs.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation.
//
// Closing a File releases its entry in the owning filesystem's handle
// registry, after which the file no longer counts as in use.
type File struct {
	file    billy.File
	name    string
	stat    func(string) (fs.FileInfo, error)
	release func()
	touch   func()
}

// Read implements io.Reader (required by fs.File).
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer (required by core.File).
func (f *File) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if n > 0 && f.touch != nil {
		f.touch()
	}
	return n, err
}

// Close implements io.Closer. The handle is released even if the
// underlying close fails.
func (f *File) Close() error {
	defer f.release()
	return f.file.Close()
}

// Stat implements fs.File.Stat.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.stat(f.name)
}

// Name returns the name provided to Open/Create, relative to the
// filesystem root.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate implements core.Truncater.
func (f *File) Truncate(size int64) error {
	if err := f.file.Truncate(size); err != nil {
		return err
	}
	if f.touch != nil {
		f.touch()
	}
	return nil
}

// Sync implements core.Syncer.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File      = (*File)(nil)
	_ fs.File        = (*File)(nil)
	_ io.Seeker      = (*File)(nil)
	_ core.Truncater = (*File)(nil)
	_ core.Syncer    = (*File)(nil)
)
