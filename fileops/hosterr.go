package fileops

import (
	stderrors "errors"
	"io/fs"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// hostCode classifies a host filesystem error. Busy is tested first since
// hosts report it inside *fs.PathError and *os.LinkError alike.
func hostCode(err error) errors.ErrorCode {
	switch {
	case errors.Is(err, core.ErrBusy):
		return errors.CodeBusy
	case errors.Is(err, fs.ErrNotExist):
		return errors.CodeFileNotFound
	case errors.Is(err, fs.ErrExist):
		return errors.CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return errors.CodePermissionDenied
	case errors.Is(err, core.ErrUnsupported), errors.Is(err, stderrors.ErrUnsupported):
		return errors.CodeNotSupported
	default:
		return errors.CodeIO
	}
}
