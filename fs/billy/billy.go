package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fs/core"
)

const accessMask = os.O_RDONLY | os.O_WRONLY | os.O_RDWR

// provider holds the behavior shared by LocalFS and MemoryFS.
//
// Both billy backends create missing parent directories on create and
// rename; provider checks parents first so callers see fs.ErrNotExist
// instead.
type provider struct {
	bfs     billy.Filesystem
	mu      sync.Mutex
	handles *handleRegistry
	book    *timeBook
	caps    core.Capabilities
	now     func() time.Time

	// stamp is set for backends that keep no timestamps of their own.
	stamp bool
	// rename overrides bfs.Rename. Called with mu held.
	rename func(from, to string) error
	// key maps a caller's path to the name used for the backend, the handle
	// registry and the time book. Aliases of one file must map to one key.
	key func(name string) string
}

func newProvider(bfs billy.Filesystem, cfg config) *provider {
	p := &provider{
		bfs:     bfs,
		handles: newHandleRegistry(),
		book:    newTimeBook(),
		caps:    cfg.caps,
		now:     cfg.now,
	}
	p.rename = bfs.Rename
	p.key = normalize
	return p
}

// Unwrap returns the underlying billy.Filesystem.
func (p *provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// Capabilities implements core.CapabilitiesFS.
func (p *provider) Capabilities() core.Capabilities {
	return p.caps
}

// InUse implements core.HandleTracker.
func (p *provider) InUse(name string) bool {
	return p.handles.inUse(p.key(name))
}

// normalize converts paths to a cleaned, slash-separated form relative to
// the filesystem root. "a.txt" and "/a.txt" name the same file.
func normalize(name string) string {
	n := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(name)), "/")
	if n == "" {
		return "."
	}
	return n
}

// dirSuffix reports whether name ends in a path separator, which only a
// directory may carry.
func dirSuffix(name string) bool {
	return strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator))
}

// notDir reports whether name demands a directory that info is not.
func notDir(name string, info fs.FileInfo) bool {
	return dirSuffix(name) && !info.IsDir()
}

// pathError wraps err in an *fs.PathError unless it already is one. memfs
// returns bare sentinels.
func pathError(op, name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// requireParent fails with fs.ErrNotExist unless the parent of name is an
// existing directory. Called with mu held.
func (p *provider) requireParent(op, name string) error {
	dir := path.Dir(name)
	if dir == "." {
		return nil
	}
	info, err := p.bfs.Stat(dir)
	if err != nil {
		return pathError(op, name, err)
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return nil
}

func (p *provider) busy(names ...string) bool {
	if !p.caps.BlockOnOpenHandle {
		return false
	}
	for _, n := range names {
		if p.handles.inUse(n) {
			return true
		}
	}
	return false
}

func (p *provider) wrap(f billy.File, name string) *File {
	file := &File{
		file:    f,
		name:    name,
		stat:    p.Stat,
		release: p.handles.acquire(name),
	}
	if p.stamp {
		file.touch = func() {
			p.book.merge(name, core.FileTimes{Write: p.now()})
		}
	}
	return file
}

// Open opens the named file for reading.
func (p *provider) Open(name string) (fs.File, error) {
	return p.OpenFile(name, os.O_RDONLY, 0)
}

// Stat returns file metadata for the named file.
func (p *provider) Stat(name string) (fs.FileInfo, error) {
	orig := name
	name = p.key(name)
	p.mu.Lock()
	info, err := p.bfs.Stat(name)
	p.mu.Unlock()
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	if notDir(orig, info) {
		return nil, &fs.PathError{Op: "stat", Path: orig, Err: fs.ErrNotExist}
	}
	if p.stamp {
		if ft, ok := p.book.get(name); ok && !ft.Write.IsZero() {
			return &stampedInfo{FileInfo: info, mod: ft.Write}, nil
		}
	}
	return info, nil
}

// ReadFile reads the named file and returns its contents.
func (p *provider) ReadFile(name string) ([]byte, error) {
	f, err := p.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (p *provider) Exists(name string) (bool, error) {
	_, err := p.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for reading and writing.
func (p *provider) Create(name string) (core.File, error) {
	return p.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// OpenFile opens a file with the specified flags and permissions.
// Directories cannot be opened; they fail with core.ErrIsDir.
func (p *provider) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	orig := name
	name = p.key(name)
	p.mu.Lock()
	defer p.mu.Unlock()

	info, statErr := p.bfs.Stat(name)
	exists := statErr == nil
	switch {
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
		return nil, pathError("open", name, statErr)
	case exists && notDir(orig, info):
		return nil, &fs.PathError{Op: "open", Path: orig, Err: fs.ErrNotExist}
	case !exists && dirSuffix(orig) && flag&os.O_CREATE != 0:
		return nil, &fs.PathError{Op: "open", Path: orig, Err: core.ErrIsDir}
	case exists && info.IsDir():
		return nil, &fs.PathError{Op: "open", Path: name, Err: core.ErrIsDir}
	case exists && flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	case !exists && flag&os.O_CREATE == 0:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	case !exists:
		if err := p.requireParent("open", name); err != nil {
			return nil, err
		}
	}

	if !exists && flag&accessMask == os.O_RDONLY {
		// memfs only allows reads when the flag is exactly O_RDONLY.
		f, err := p.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err != nil {
			return nil, pathError("open", name, err)
		}
		_ = f.Close()
		flag &^= os.O_CREATE | os.O_EXCL | os.O_TRUNC
	}

	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, pathError("open", name, err)
	}

	if p.stamp {
		now := p.now()
		switch {
		case !exists:
			p.book.merge(name, core.FileTimes{Creation: now, Access: now, Write: now})
		case flag&os.O_TRUNC != 0:
			p.book.merge(name, core.FileTimes{Write: now})
		}
	}
	return p.wrap(f, name), nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (p *provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := p.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// MkdirAll creates a directory named dir, along with any necessary parents.
func (p *provider) MkdirAll(dir string, perm fs.FileMode) error {
	dir = p.key(dir)
	p.mu.Lock()
	defer p.mu.Unlock()
	_, statErr := p.bfs.Stat(dir)
	if err := p.bfs.MkdirAll(dir, perm); err != nil {
		return pathError("mkdir", dir, err)
	}
	if p.stamp && statErr != nil {
		now := p.now()
		p.book.merge(dir, core.FileTimes{Creation: now, Access: now, Write: now})
	}
	return nil
}

// Remove removes the named file or empty directory.
func (p *provider) Remove(name string) error {
	orig := name
	name = p.key(name)
	if p.busy(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrBusy}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	info, err := p.bfs.Stat(name)
	if err != nil {
		return pathError("remove", name, err)
	}
	if notDir(orig, info) {
		return &fs.PathError{Op: "remove", Path: orig, Err: fs.ErrNotExist}
	}
	if err := p.bfs.Remove(name); err != nil {
		return pathError("remove", name, err)
	}
	p.book.drop(name)
	return nil
}

// Rename renames (moves) oldpath to newpath, replacing newpath if it is a file.
func (p *provider) Rename(oldpath, newpath string) error {
	origOld, origNew := oldpath, newpath
	oldpath, newpath = p.key(oldpath), p.key(newpath)
	if p.busy(oldpath, newpath) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: core.ErrBusy}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	info, err := p.bfs.Stat(oldpath)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unwrapPath(err)}
	}
	if notDir(origOld, info) || (dirSuffix(origNew) && !info.IsDir()) {
		return &os.LinkError{Op: "rename", Old: origOld, New: origNew, Err: fs.ErrNotExist}
	}
	if err := p.requireParent("rename", newpath); err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if oldpath == newpath {
		return nil
	}
	if err := p.rename(oldpath, newpath); err != nil {
		var le *os.LinkError
		if errors.As(err, &le) {
			return err
		}
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unwrapPath(err)}
	}
	p.book.move(oldpath, newpath)
	return nil
}

// TempFile creates a new temporary file in dir. A trailing "*" in pattern
// is replaced by the random suffix.
func (p *provider) TempFile(dir, pattern string) (core.File, error) {
	dir = p.key(dir)
	prefix := strings.TrimSuffix(pattern, "*")

	p.mu.Lock()
	defer p.mu.Unlock()
	tfs, ok := p.bfs.(billy.TempFile)
	if !ok {
		return nil, &fs.PathError{Op: "createtemp", Path: dir, Err: core.ErrUnsupported}
	}
	f, err := tfs.TempFile(dir, prefix)
	if err != nil {
		return nil, pathError("createtemp", dir, err)
	}

	// osfs reports an absolute host path, memfs a chroot-relative one.
	name := path.Join(dir, path.Base(filepath.ToSlash(f.Name())))
	if p.stamp {
		now := p.now()
		p.book.merge(name, core.FileTimes{Creation: now, Access: now, Write: now})
	}
	return p.wrap(f, name), nil
}

func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// stampedInfo reports a recorded modification time for backends whose
// FileInfo has none.
type stampedInfo struct {
	fs.FileInfo
	mod time.Time
}

func (i *stampedInfo) ModTime() time.Time { return i.mod }
