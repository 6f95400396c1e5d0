// Package billy provides go-billy-backed host filesystems implementing
// core.FS and the optional interfaces the file operations facade uses.
//
// LocalFS wraps osfs bound to a root directory; MemoryFS wraps memfs.
// Both add what billy lacks:
//
//   - parent directories are never created implicitly
//   - directories refuse to open as files (core.ErrIsDir)
//   - open handles are tracked, and Remove, Rename and SetTimes fail with
//     core.ErrBusy while a handle is open unless WithBlockOnOpenHandle(false)
//   - timestamps through core.TimesFS
//
// Usage:
//
//	local, err := billy.NewLocal("/srv/data")
//	mem := billy.NewMemory(billy.WithBlockOnOpenHandle(false))
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
