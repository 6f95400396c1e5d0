// Package fileops provides validated file operations over a host
// filesystem.
//
// Every operation checks its arguments before touching the host and reports
// failures as errors.PlatformError values with a stable code:
//
//	ops, err := fileops.New(billy.NewMemory())
//	if err != nil {
//	    return err
//	}
//	if err := ops.Move("draft.txt", "final.txt"); err != nil {
//	    switch {
//	    case errors.GetCode(err) == errors.CodeAlreadyExists:
//	        // final.txt is taken
//	    case errors.IsKind(err, errors.CodeIO):
//	        // any other filesystem failure
//	    }
//	}
//
// # Paths
//
// Paths are interpreted by the host. An empty path, a path of only
// whitespace or one holding a character rejected by the PathValidator fails
// with CodeInvalidArgument. Go strings cannot be nil; the Nullable adapter
// accepts *string paths and reports a nil path as CodeNullArgument.
//
// # Open modes
//
// Open takes an OpenMode and an Access. Modes that create or discard content
// (ModeCreateNew, ModeCreate, ModeTruncate, ModeAppend) require write access.
//
// # Timestamps
//
// GetTime and SetTime, and the twelve named accessors built on them, read and
// write creation, last access and last write times. Local accessors return
// time.Local values, UTC accessors time.UTC values. Values outside the host's
// range fail with CodeArgumentOutOfRange; values inside it are truncated to the
// host's resolution.
//
// # Busy files
//
// Hosts that report core.Capabilities.BlockOnOpenHandle refuse to delete,
// move or retime a file while a handle to it is open. Those operations fail
// with CodeBusy, which is retryable.
package fileops
