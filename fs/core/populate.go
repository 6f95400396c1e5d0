package core

import (
	"io/fs"
	"path"
	"strings"
)

// Populate copies every regular file below root in src into dst, creating
// directories as needed. Use "." to copy all of src. It is mostly used to
// seed a memory filesystem from an fstest.MapFS or embed.FS.
//
// Example:
//
//	mem := billy.NewMemory()
//	err := core.Populate(mem, fstest.MapFS{
//	    "docs/a.txt": {Data: []byte("a")},
//	}, ".")
func Populate(dst FS, src fs.FS, root string) error {
	return fs.WalkDir(src, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := name
		if root != "." && root != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
		}
		if rel == "" {
			return nil
		}

		if d.IsDir() {
			return dst.MkdirAll(rel, 0o755)
		}

		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		if dir := path.Dir(rel); dir != "." {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return dst.WriteFile(rel, data, info.Mode().Perm())
	})
}
