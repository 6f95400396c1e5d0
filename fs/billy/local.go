package billy

import (
	"io"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/fs/core"
	"github.com/natefinch/atomic"
)

// LocalFS wraps billy's osfs for local filesystem access, bound to a root
// directory. Paths are resolved below the root and cannot escape it.
//
// Access and write times come from the host. Creation times come from the
// host where it records a birth time; a creation time set through SetTimes
// is remembered for the lifetime of the LocalFS and follows the file across
// renames.
type LocalFS struct {
	*provider
	root string
}

// NewLocal creates a go-billy-backed local filesystem rooted at root.
func NewLocal(root string, opts ...Option) (*LocalFS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "chroot", Path: abs, Err: fs.ErrInvalid}
	}

	cfg := newConfig(localCapabilities(), opts)
	l := &LocalFS{
		provider: newProvider(osfs.New(abs, osfs.WithBoundOS()), cfg),
		root:     abs,
	}
	l.key = l.resolve
	return l, nil
}

// localCapabilities bounds timestamps to what a 34-bit ext4 inode timestamp
// can hold.
func localCapabilities() core.Capabilities {
	caps := core.DefaultCapabilities()
	caps.MinTime = time.Unix(math.MinInt32, 0).UTC()
	caps.MaxTime = time.Date(2446, time.May, 10, 22, 38, 55, 999999999, time.UTC)
	caps.TimeResolution = time.Microsecond
	return caps
}

// Root returns the absolute host directory the filesystem is bound to.
func (l *LocalFS) Root() string {
	return l.root
}

// Type returns FSTypeLocal for local filesystem implementations.
func (l *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// resolve returns the root-relative key for name. The parent directory is
// resolved with securejoin, as the host resolves it: ".." is clamped at the
// root and symlinked directories are followed. The final element is kept so
// a symlink and its target stay distinct files.
func (l *LocalFS) resolve(name string) string {
	n := normalize(name)
	dir, base := path.Split(n)
	switch {
	case base == "..":
		return "."
	case dir == "":
		return n
	}
	resolved, err := securejoin.SecureJoin(l.root, filepath.FromSlash(dir))
	if err != nil {
		return n
	}
	rel, err := filepath.Rel(l.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return n
	}
	return path.Join(filepath.ToSlash(rel), base)
}

// hostPath resolves name to an absolute host path below the root.
func (l *LocalFS) hostPath(name string) (string, error) {
	return securejoin.SecureJoin(l.root, filepath.FromSlash(l.key(name)))
}

// Times implements core.TimesFS.
func (l *LocalFS) Times(name string) (core.FileTimes, error) {
	if dirSuffix(name) {
		if _, err := l.Stat(name); err != nil {
			return core.FileTimes{}, err
		}
	}
	name = l.key(name)
	p, err := l.hostPath(name)
	if err != nil {
		return core.FileTimes{}, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	ft, err := hostTimes(p)
	if err != nil {
		return core.FileTimes{}, pathError("stat", name, unwrapPath(err))
	}
	if recorded, ok := l.book.get(name); ok && !recorded.Creation.IsZero() {
		ft.Creation = recorded.Creation
	}
	return ft, nil
}

// SetTimes implements core.TimesFS.
func (l *LocalFS) SetTimes(name string, ft core.FileTimes) error {
	if dirSuffix(name) {
		if _, err := l.Stat(name); err != nil {
			return err
		}
	}
	name = l.key(name)
	if l.busy(name) {
		return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrBusy}
	}
	p, err := l.hostPath(name)
	if err != nil {
		return &fs.PathError{Op: "chtimes", Path: name, Err: err}
	}

	// os.Chtimes leaves zero times unchanged.
	if err := os.Chtimes(p, ft.Access, ft.Write); err != nil {
		return pathError("chtimes", name, unwrapPath(err))
	}
	if !ft.Creation.IsZero() {
		l.book.merge(name, core.FileTimes{Creation: ft.Creation})
	}
	return nil
}

// WriteFileAtomic implements core.AtomicWriter. The content is written to
// a temporary file in the same directory and renamed over name.
func (l *LocalFS) WriteFileAtomic(name string, r io.Reader) error {
	if dirSuffix(name) {
		return &fs.PathError{Op: "write", Path: name, Err: core.ErrIsDir}
	}
	name = l.key(name)
	if l.busy(name) {
		return &fs.PathError{Op: "write", Path: name, Err: core.ErrBusy}
	}
	p, err := l.hostPath(name)
	if err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireParent("write", name); err != nil {
		return err
	}
	_, statErr := os.Stat(p)
	if err := atomic.WriteFile(p, r); err != nil {
		return pathError("write", name, unwrapPath(err))
	}
	if statErr != nil {
		// atomic.WriteFile keeps the 0600 mode of its temp file for new files.
		if err := os.Chmod(p, 0o644); err != nil {
			return pathError("chmod", name, unwrapPath(err))
		}
	}
	l.book.drop(name)
	return nil
}

// Compile-time interface checks.
var (
	_ core.FS             = (*LocalFS)(nil)
	_ core.TimesFS        = (*LocalFS)(nil)
	_ core.HandleTracker  = (*LocalFS)(nil)
	_ core.CapabilitiesFS = (*LocalFS)(nil)
	_ core.TempFS         = (*LocalFS)(nil)
	_ core.AtomicWriter   = (*LocalFS)(nil)
)
