package fileops

import (
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// Delete removes the file at path. Deleting a missing file is not an
// error as long as its directory exists.
func (o *FileOps) Delete(path string) error {
	c := o.begin(OpDelete, "Delete").with("path", path)
	return c.done(o.delete(c, path))
}

func (o *FileOps) delete(c *call, path string) error {
	if err := c.checkPath("path", path); err != nil {
		return err
	}
	if err := c.checkParent(path); err != nil {
		return err
	}
	info, err := c.stat(path)
	switch {
	case err != nil:
		return err
	case info == nil:
		return nil
	case info.IsDir():
		return c.fail(errors.CodeIO, "path %q is a directory", path)
	}

	err = o.host.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return c.host(err, "could not delete %q", path)
}
