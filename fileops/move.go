package fileops

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/errors"
)

// Move renames the file src to dst. dst must not exist.
func (o *FileOps) Move(src, dst string) error {
	c := o.begin(OpMove, "Move").with("path", src).with("dest", dst)
	return c.done(o.move(c, src, dst))
}

func (o *FileOps) move(c *call, src, dst string) error {
	if err := c.checkPath("source", src); err != nil {
		return err
	}
	if err := c.checkPath("dest", dst); err != nil {
		return err
	}

	info, err := c.stat(src)
	switch {
	case err != nil:
		return err
	case info == nil:
		return c.wrap(fs.ErrNotExist, errors.CodeFileNotFound, "could not find file %q", src)
	case info.IsDir():
		return c.fail(errors.CodeFileNotFound, "source %q is a directory, not a file", src)
	}

	if err := c.checkParent(dst); err != nil {
		return err
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return nil
	}
	existing, err := c.stat(dst)
	switch {
	case err != nil:
		return err
	case existing != nil && existing.IsDir():
		return c.fail(errors.CodeIO, "destination is a directory")
	case existing != nil:
		return c.wrap(fs.ErrExist, errors.CodeAlreadyExists, "file %q already exists", dst)
	}

	if err := o.host.Rename(src, dst); err != nil {
		return c.host(err, "could not move %q to %q", src, dst)
	}
	return nil
}
