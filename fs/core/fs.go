package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the host filesystem contract consumed by the file operations facade.
// FS explicitly embeds fs.FS for stdlib compatibility.
//
// Hosts MUST implement FS. Timestamps, handle tracking, atomic writes and
// temporary files are optional and discovered through type assertions.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	// Callers can type-assert the result to File.
	Open(name string) (fs.File, error)

	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is absent.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file and opens it for reading
	// and writing. The parent directory must already exist.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	// The flags are the os.O_* bitmask. Hosts must honor O_EXCL, O_TRUNC
	// and O_APPEND, and must not create missing parent directories.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// Hosts that block on open handles return an error wrapping ErrBusy
	// while the file is held open.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath already exists and is not a directory, Rename replaces it.
	// The parent of newpath must already exist.
	Rename(oldpath, newpath string) error
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// Optional File capabilities (use type assertions):
//
// - io.Seeker: Seek(offset int64, whence int) (int64, error)
// - Truncater: Truncate(size int64) error
// - Syncer: Sync() error

// Truncater allows truncating a file to a specified size.
//
//	if t, ok := file.(Truncater); ok {
//	    err := t.Truncate(size)
//	}
type Truncater interface {
	// Truncate changes the size of the file without moving the I/O offset.
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	Sync() error
}

// TempFS defines temporary file creation.
//
//	if tfs, ok := filesystem.(TempFS); ok {
//	    file, err := tfs.TempFile(dir, ".copy-*")
//	}
type TempFS interface {
	// TempFile creates a new temporary file in the directory dir,
	// opens it for reading and writing, and returns the File.
	// If pattern includes a "*", the random string replaces the "*".
	// The caller is responsible for removing the file.
	TempFile(dir, pattern string) (File, error)
}

// AtomicWriter is implemented by hosts that can replace a file's contents in
// one step, so a reader never observes a partially written file.
type AtomicWriter interface {
	// WriteFileAtomic writes everything from r to name, replacing any
	// existing file. The parent directory must already exist.
	WriteFileAtomic(name string, r io.Reader) error
}

// HandleTracker is implemented by hosts that track their open handles.
type HandleTracker interface {
	// InUse reports whether name is currently held open by any handle
	// obtained from this filesystem.
	InUse(name string) bool
}
