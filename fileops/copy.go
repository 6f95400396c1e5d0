package fileops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

// CopyFile copies src to dst. It fails if dst exists.
func (o *FileOps) CopyFile(src, dst string) error {
	return o.Copy(src, dst, false)
}

// Copy copies the file src to dst, replacing dst when overwrite is set.
// The destination takes the source's last-write time. A failed copy leaves
// no partial destination behind.
func (o *FileOps) Copy(src, dst string, overwrite bool) error {
	c := o.begin(OpCopy, "Copy").with("path", src).with("dest", dst)
	return c.done(o.copy(c, src, dst, overwrite))
}

func (o *FileOps) copy(c *call, src, dst string, overwrite bool) error {
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
	existing, err := c.stat(dst)
	switch {
	case err != nil:
		return err
	case existing != nil && existing.IsDir():
		return c.fail(errors.CodeIO, "destination %q is a directory", dst)
	case existing != nil && !overwrite:
		return c.wrap(fs.ErrExist, errors.CodeAlreadyExists, "file %q already exists", dst)
	case existing != nil && filepath.Clean(src) == filepath.Clean(dst):
		return c.fail(errors.CodeIO, "cannot copy %q onto itself", src)
	}

	if err := o.copyContent(c, src, dst, existing == nil); err != nil {
		return err
	}
	return o.copyWriteTime(c, src, dst)
}

func (o *FileOps) copyContent(c *call, src, dst string, fresh bool) error {
	in, err := o.host.Open(src)
	if err != nil {
		return c.host(err, "could not open %q", src)
	}
	defer func() { _ = in.Close() }()

	if aw, ok := o.host.(core.AtomicWriter); ok {
		if err := aw.WriteFileAtomic(dst, in); err != nil {
			return c.host(err, "could not write %q", dst)
		}
		return nil
	}
	if tfs, ok := o.host.(core.TempFS); ok {
		return o.copyViaTemp(c, tfs, in, dst)
	}
	return o.copyDirect(c, in, dst, fresh)
}

// copyViaTemp writes into a temporary file beside dst and renames it into
// place.
func (o *FileOps) copyViaTemp(c *call, tfs core.TempFS, in io.Reader, dst string) error {
	tmp, err := tfs.TempFile(filepath.Dir(dst), o.tempPattern)
	if err != nil {
		return c.host(err, "could not create temporary file for %q", dst)
	}
	name := tmp.Name()

	_, err = io.Copy(tmp, in)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = o.host.Rename(name, dst)
	}
	if err != nil {
		_ = o.host.Remove(name)
		return c.host(err, "could not write %q", dst)
	}
	return nil
}

// copyDirect writes dst in place. A destination created by the copy is
// removed again on failure.
func (o *FileOps) copyDirect(c *call, in io.Reader, dst string, fresh bool) error {
	out, err := o.host.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return c.host(err, "could not create %q", dst)
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if fresh {
			_ = o.host.Remove(dst)
		}
		return c.host(err, "could not write %q", dst)
	}
	return nil
}

func (o *FileOps) copyWriteTime(c *call, src, dst string) error {
	tfs, ok := o.host.(core.TimesFS)
	if !ok {
		return nil
	}
	ft, err := tfs.Times(src)
	if err != nil {
		return c.host(err, "could not read times of %q", src)
	}
	if ft.Write.IsZero() {
		return nil
	}
	err = tfs.SetTimes(dst, core.FileTimes{Write: ft.Write})
	if err != nil && !errors.Is(err, core.ErrUnsupported) {
		return c.host(err, "could not set times of %q", dst)
	}
	return nil
}
