package fileops

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/go/errors"
)

// PathValidator reports characters a host cannot accept in a path.
type PathValidator interface {
	// InvalidChar returns the first rejected character in p.
	InvalidChar(p string) (rune, bool)
}

// InvalidChars is a PathValidator that rejects every character it contains.
type InvalidChars string

// InvalidChar implements PathValidator.
func (c InvalidChars) InvalidChar(p string) (rune, bool) {
	if i := strings.IndexAny(p, string(c)); i >= 0 {
		r, _ := utf8.DecodeRuneInString(p[i:])
		return r, true
	}
	return 0, false
}

// DefaultPathValidator returns the validator for the running OS. Unix
// hosts reject only NUL; Windows also rejects `"<>|` and control characters.
func DefaultPathValidator() PathValidator {
	if runtime.GOOS == "windows" {
		return windowsInvalidChars
	}
	return InvalidChars("\x00")
}

var windowsInvalidChars = func() InvalidChars {
	var b strings.Builder
	b.WriteString(`"<>|`)
	for r := rune(0); r < 32; r++ {
		b.WriteRune(r)
	}
	return InvalidChars(b.String())
}()

// checkPath validates a path argument. arg names the argument in messages
// ("path", "source" or "dest").
func (c *call) checkPath(arg, p string) error {
	switch {
	case p == "":
		return c.fail(errors.CodeInvalidArgument, "%s cannot be empty", arg)
	case strings.TrimSpace(p) == "":
		return c.fail(errors.CodeInvalidArgument, "%s cannot consist only of whitespace", arg)
	}
	if c.o.validator == nil {
		return nil
	}
	if r, ok := c.o.validator.InvalidChar(p); ok {
		return c.fail(errors.CodeInvalidArgument, "%s contains invalid character %q", arg, r)
	}
	return nil
}

// checkParent fails with DirectoryNotFound unless the directory holding p
// exists.
func (c *call) checkParent(p string) error {
	dir := filepath.Dir(p)
	if dir == "." || dir == p || dir == filepath.VolumeName(p)+string(filepath.Separator) {
		return nil
	}
	info, err := c.o.host.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return c.wrap(fs.ErrNotExist, errors.CodeDirectoryNotFound,
			"could not find a part of the path %q", p)
	default:
		return c.host(err, "could not inspect directory %q", dir)
	}
}

// stat returns the FileInfo for p, or nil if nothing exists at p.
func (c *call) stat(p string) (fs.FileInfo, error) {
	info, err := c.o.host.Stat(p)
	switch {
	case err == nil:
		return info, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	default:
		return nil, c.host(err, "could not inspect %q", p)
	}
}
