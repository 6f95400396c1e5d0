package fileops

import (
	"os"

	"github.com/jmgilman/go/errors"
)

// Exists reports whether path names an existing regular file. It never
// fails: invalid paths, directories and host errors all report false.
func (o *FileOps) Exists(path string) bool {
	c := o.begin(OpExists, "Exists").with("path", path)
	defer c.done(nil)
	if c.checkPath("path", path) != nil {
		return false
	}
	info, err := o.host.Stat(path)
	return err == nil && !info.IsDir()
}

// Create creates or truncates the file at path and returns a read/write
// handle to it.
func (o *FileOps) Create(path string) (*Handle, error) {
	c := o.begin(OpCreate, "Create").with("path", path)
	h, err := o.create(c, path)
	return h, c.done(err)
}

func (o *FileOps) create(c *call, path string) (*Handle, error) {
	if err := c.checkPath("path", path); err != nil {
		return nil, err
	}
	if err := c.checkParent(path); err != nil {
		return nil, err
	}
	info, err := c.stat(path)
	if err != nil {
		return nil, err
	}
	if info != nil && info.IsDir() {
		return nil, c.fail(errors.CodeIO, "path %q is a directory", path)
	}

	f, err := o.host.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, c.host(err, "could not create %q", path)
	}
	return newHandle(f, path, AccessReadWrite), nil
}
