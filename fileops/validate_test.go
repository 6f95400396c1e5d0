package fileops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
)

var invalidPaths = []struct {
	name string
	path string
}{
	{"empty", ""},
	{"spaces", "   "},
	{"tabs and newlines", "\t\n"},
	{"nul", "a\x00b.txt"},
}

// pathOperations calls every path-taking operation with p in its first
// path argument.
func pathOperations(ops *FileOps, valid string) map[string]func(p string) error {
	stamp := time.Date(2011, 3, 4, 5, 6, 7, 0, time.UTC)
	return map[string]func(p string) error{
		"Create": func(p string) error { _, err := ops.Create(p); return err },
		"Open":   func(p string) error { _, err := ops.Open(p, ModeOpenOrCreate, AccessReadWrite); return err },
		"OpenRead": func(p string) error {
			_, err := ops.OpenRead(p)
			return err
		},
		"OpenWrite": func(p string) error {
			_, err := ops.OpenWrite(p)
			return err
		},
		"CopySource":   func(p string) error { return ops.Copy(p, valid, true) },
		"CopyDest":     func(p string) error { return ops.Copy(valid, p, true) },
		"MoveSource":   func(p string) error { return ops.Move(p, valid) },
		"MoveDest":     func(p string) error { return ops.Move(valid, p) },
		"Delete":       func(p string) error { return ops.Delete(p) },
		"ReadAllBytes": func(p string) error { _, err := ops.ReadAllBytes(p); return err },
		"WriteAllBytes": func(p string) error {
			return ops.WriteAllBytes(p, nil)
		},
		"GetCreationTime":   func(p string) error { _, err := ops.GetCreationTime(p); return err },
		"GetLastAccessTime": func(p string) error { _, err := ops.GetLastAccessTimeUTC(p); return err },
		"GetLastWriteTime":  func(p string) error { _, err := ops.GetLastWriteTime(p); return err },
		"SetCreationTime":   func(p string) error { return ops.SetCreationTimeUTC(p, stamp) },
		"SetLastAccessTime": func(p string) error { return ops.SetLastAccessTime(p, stamp) },
		"SetLastWriteTime":  func(p string) error { return ops.SetLastWriteTimeUTC(p, stamp) },
	}
}

func TestInvalidPaths(t *testing.T) {
	ops, err := New(billy.NewMemory())
	require.NoError(t, err)
	require.NoError(t, ops.WriteAllBytes("valid.txt", []byte("x")))

	for opName, op := range pathOperations(ops, "valid.txt") {
		for _, tt := range invalidPaths {
			t.Run(opName+"/"+tt.name, func(t *testing.T) {
				err := op(tt.path)
				requireCode(t, err, errors.CodeInvalidArgument)
				assert.True(t, errors.IsKind(err, errors.CodeInvalidArgument))
				assert.False(t, errors.IsRetryable(err))
			})
		}
	}
	assert.Equal(t, "x", readFile(t, ops.Host(), "valid.txt"))
}

func TestExists_InvalidPaths(t *testing.T) {
	ops, err := New(billy.NewMemory())
	require.NoError(t, err)
	for _, tt := range invalidPaths {
		assert.False(t, ops.Exists(tt.path), tt.name)
	}
	assert.False(t, ops.Nullable().Exists(nil))
}

func TestNullable_NilPaths(t *testing.T) {
	ops, err := New(billy.NewMemory())
	require.NoError(t, err)
	require.NoError(t, ops.WriteAllBytes("valid.txt", []byte("x")))

	n := ops.Nullable()
	valid := "valid.txt"
	stamp := time.Date(2011, 3, 4, 5, 6, 7, 0, time.UTC)

	cases := map[string]func() error{
		"Create":     func() error { _, err := n.Create(nil); return err },
		"Open":       func() error { _, err := n.Open(nil, ModeOpen, AccessRead); return err },
		"OpenRead":   func() error { _, err := n.OpenRead(nil); return err },
		"OpenWrite":  func() error { _, err := n.OpenWrite(nil); return err },
		"CopySource": func() error { return n.Copy(nil, &valid, false) },
		"CopyDest":   func() error { return n.Copy(&valid, nil, false) },
		"MoveSource": func() error { return n.Move(nil, &valid) },
		"MoveDest":   func() error { return n.Move(&valid, nil) },
		"Delete":     func() error { return n.Delete(nil) },
		"GetTime":    func() error { _, err := n.GetTime(nil, Creation, true); return err },
		"SetTime":    func() error { return n.SetTime(nil, LastWrite, false, stamp) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			err := fn()
			requireCode(t, err, errors.CodeNullArgument)
			assert.True(t, errors.IsKind(err, errors.CodeInvalidArgument))
		})
	}
	assert.True(t, ops.Exists(valid))
}

func TestNullable_Delegates(t *testing.T) {
	ops, err := New(billy.NewMemory())
	require.NoError(t, err)
	n := ops.Nullable()

	src, dst, moved := "a.txt", "b.txt", "c.txt"
	h, err := n.Create(&src)
	require.NoError(t, err)
	require.NoError(t, h.Close())

	require.True(t, n.Exists(&src))
	require.NoError(t, n.Copy(&src, &dst, false))
	require.NoError(t, n.Move(&dst, &moved))
	require.NoError(t, n.Delete(&src))
	assert.False(t, n.Exists(&src))
	assert.True(t, n.Exists(&moved))

	empty := ""
	requireCode(t, n.Delete(&empty), errors.CodeInvalidArgument)
}

func TestInvalidChars(t *testing.T) {
	v := InvalidChars("<>|")
	r, ok := v.InvalidChar("a<b")
	require.True(t, ok)
	assert.Equal(t, '<', r)

	_, ok = v.InvalidChar("plain.txt")
	assert.False(t, ok)

	r, ok = InvalidChars("é").InvalidChar("café")
	require.True(t, ok)
	assert.Equal(t, 'é', r)
}

func TestWithPathValidator(t *testing.T) {
	ops, err := New(billy.NewMemory(), WithPathValidator(InvalidChars("?")))
	require.NoError(t, err)

	_, err = ops.Create("what?.txt")
	requireCode(t, err, errors.CodeInvalidArgument)

	h, err := ops.Create("fine.txt")
	require.NoError(t, err)
	require.NoError(t, h.Close())
}

func TestMissingParent(t *testing.T) {
	eachHost(t, func(t *testing.T, h testHost) {
		writeFile(t, h.fs, "file.txt", "x")

		for _, p := range []string{"missing/a.txt", "file.txt/a.txt"} {
			_, err := h.ops.Create(p)
			requireCode(t, err, errors.CodeDirectoryNotFound)
			assert.True(t, errors.IsKind(err, errors.CodeIO))

			_, err = h.ops.Open(p, ModeOpenOrCreate, AccessWrite)
			requireCode(t, err, errors.CodeDirectoryNotFound)

			requireCode(t, h.ops.Delete(p), errors.CodeDirectoryNotFound)
			requireCode(t, h.ops.Copy("file.txt", p, true), errors.CodeDirectoryNotFound)
			requireCode(t, h.ops.Move("file.txt", p), errors.CodeDirectoryNotFound)
		}
		assert.True(t, h.ops.Exists("file.txt"))
	})
}
