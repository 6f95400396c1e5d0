// Package core defines the host filesystem contract used by the file
// operations facade.
//
// Hosts implement FS for the essentials (stat, open with os.O_* flags,
// remove, rename) and opt into further behavior through small interfaces
// discovered by type assertion:
//
//   - TimesFS: read and write creation, access and write timestamps
//   - HandleTracker: report whether a path is held open
//   - CapabilitiesFS: report timestamp range, resolution and whether open
//     handles block deletes
//   - AtomicWriter: replace a file's contents in one step
//   - TempFS: create temporary files
//
// The package only depends on the standard library so that hosts and the
// facade can share it without pulling in each other's dependencies.
//
// # Checking Optional Capabilities
//
//	if tfs, ok := filesystem.(core.TimesFS); ok {
//	    ft, err := tfs.Times("file.txt")
//	}
//
//	caps := core.CapabilitiesOf(filesystem)
//	if !caps.InRange(t) {
//	    // reject
//	}
//
// # Stdlib Compatibility
//
// FS embeds fs.FS, so hosts work with fs.WalkDir, fs.ReadFile and friends.
//
// # Errors
//
// Hosts report failures as *fs.PathError values wrapping one of the
// sentinels in this package. ErrBusy and ErrUnsupported have no io/fs
// equivalent; the rest are re-exported from io/fs.
package core
