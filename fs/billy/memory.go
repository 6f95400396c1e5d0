package billy

import (
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/go/fs/core"
)

// MemoryFS wraps billy's memfs for in-memory filesystem access.
//
// memfs keeps no timestamps, so MemoryFS records creation, access and write
// times itself. New files are stamped with the configured clock and writes
// through a handle advance the write time.
type MemoryFS struct {
	*provider
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(opts ...Option) *MemoryFS {
	cfg := newConfig(core.DefaultCapabilities(), opts)
	p := newProvider(memfs.New(), cfg)
	p.stamp = true
	m := &MemoryFS{provider: p}
	p.rename = m.renameFile
	return m
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (m *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Times implements core.TimesFS.
func (m *MemoryFS) Times(name string) (core.FileTimes, error) {
	if _, err := m.Stat(name); err != nil {
		return core.FileTimes{}, err
	}
	ft, _ := m.book.get(m.key(name))
	return ft, nil
}

// SetTimes implements core.TimesFS.
func (m *MemoryFS) SetTimes(name string, ft core.FileTimes) error {
	key := m.key(name)
	if m.busy(key) {
		return &fs.PathError{Op: "chtimes", Path: key, Err: core.ErrBusy}
	}
	if _, err := m.Stat(name); err != nil {
		return err
	}
	m.book.merge(key, ft)
	return nil
}

// renameFile moves a regular file by copying its content. memfs.Rename
// matches by path prefix and would also move siblings such as "a.txt.bak"
// when renaming "a.txt". Directories still go through memfs.
func (m *MemoryFS) renameFile(from, to string) error {
	info, err := m.bfs.Stat(from)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return m.bfs.Rename(from, to)
	}
	if dst, err := m.bfs.Stat(to); err == nil && dst.IsDir() {
		return &fs.PathError{Op: "rename", Path: to, Err: core.ErrIsDir}
	}

	src, err := m.bfs.Open(from)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := m.bfs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return m.bfs.Remove(from)
}

// Compile-time interface checks.
var (
	_ core.FS             = (*MemoryFS)(nil)
	_ core.TimesFS        = (*MemoryFS)(nil)
	_ core.HandleTracker  = (*MemoryFS)(nil)
	_ core.CapabilitiesFS = (*MemoryFS)(nil)
	_ core.TempFS         = (*MemoryFS)(nil)
)
