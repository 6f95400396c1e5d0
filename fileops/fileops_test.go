package fileops

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
)

// testHost pairs a FileOps with the host it dispatches to.
type testHost struct {
	name string
	ops  *FileOps
	fs   core.FS
}

// eachHost runs fn against a fresh MemoryFS and a fresh LocalFS.
func eachHost(t *testing.T, fn func(t *testing.T, h testHost)) {
	t.Helper()
	factories := []struct {
		name string
		new  func(t *testing.T) core.FS
	}{
		{"memory", func(t *testing.T) core.FS { return billy.NewMemory() }},
		{"local", func(t *testing.T) core.FS {
			l, err := billy.NewLocal(t.TempDir())
			require.NoError(t, err)
			return l
		}},
	}
	for _, f := range factories {
		t.Run(f.name, func(t *testing.T) {
			host := f.new(t)
			ops, err := New(host)
			require.NoError(t, err)
			fn(t, testHost{name: f.name, ops: ops, fs: host})
		})
	}
}

func writeFile(t *testing.T, host core.FS, name, content string) {
	t.Helper()
	require.NoError(t, host.WriteFile(name, []byte(content), 0o644))
}

func readFile(t *testing.T, host core.FS, name string) string {
	t.Helper()
	data, err := host.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func mkdir(t *testing.T, host core.FS, name string) {
	t.Helper()
	require.NoError(t, host.MkdirAll(name, 0o755))
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errors.GetCode(err), "error: %v", err)
}

func readAll(t *testing.T, h *Handle) string {
	t.Helper()
	_, err := h.Seek(0, io.SeekStart)
	require.NoError(t, err)
	data, err := io.ReadAll(h)
	require.NoError(t, err)
	return string(data)
}

func TestNew(t *testing.T) {
	t.Run("nil host", func(t *testing.T) {
		_, err := New(nil)
		requireCode(t, err, errors.CodeNullArgument)
	})

	t.Run("temp pattern with separator", func(t *testing.T) {
		_, err := New(billy.NewMemory(), WithTempPattern("tmp/x*"))
		requireCode(t, err, errors.CodeInvalidArgument)
	})

	t.Run("empty temp pattern", func(t *testing.T) {
		_, err := New(billy.NewMemory(), WithTempPattern(""))
		requireCode(t, err, errors.CodeInvalidArgument)
	})

	t.Run("capabilities from host", func(t *testing.T) {
		host := billy.NewMemory(billy.WithBlockOnOpenHandle(false))
		ops, err := New(host)
		require.NoError(t, err)
		assert.False(t, ops.Capabilities().BlockOnOpenHandle)
		assert.Same(t, host, ops.Host())
	})

	t.Run("default capabilities without CapabilitiesFS", func(t *testing.T) {
		ops, err := New(plainHost{billy.NewMemory()})
		require.NoError(t, err)
		assert.Equal(t, core.DefaultCapabilities(), ops.Capabilities())
	})
}

func TestOperationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf})
	ops, err := New(billy.NewMemory(), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, ops.WriteAllBytes("a.txt", []byte("x")))
	require.Error(t, ops.Move("missing.txt", "b.txt"))

	out := buf.String()
	assert.Contains(t, out, "file operation completed")
	assert.Contains(t, out, "operation=create")
	assert.Contains(t, out, "file operation failed")
	assert.Contains(t, out, "code=FILE_NOT_FOUND")
	assert.Contains(t, out, "dest=b.txt")
	assert.Contains(t, out, "path=missing.txt")
}

func TestWithLogger_Nil(t *testing.T) {
	ops, err := New(billy.NewMemory(), WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, ops.WriteAllBytes("a.txt", nil))
}

func TestErrorContext(t *testing.T) {
	ops, err := New(billy.NewMemory())
	require.NoError(t, err)

	err = ops.Move("missing.txt", "b.txt")
	var pe errors.PlatformError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Move", pe.Context()["op"])
	assert.Equal(t, "missing.txt", pe.Context()["path"])
	assert.Equal(t, "b.txt", pe.Context()["dest"])

	_, err = ops.Open("missing.txt", ModeOpen, AccessRead)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Open", pe.Context()["mode"])
	assert.Equal(t, "Read", pe.Context()["access"])

	_, err = ops.GetLastWriteTimeUTC("missing.txt")
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "GetLastWriteTimeUTC", pe.Context()["op"])
	assert.Equal(t, "LastWrite", pe.Context()["kind"])
}

// plainHost hides every optional interface of the wrapped filesystem.
type plainHost struct {
	core.FS
}

func TestLocalHost_ParentAliases(t *testing.T) {
	host, err := billy.NewLocal(t.TempDir())
	require.NoError(t, err)
	ops, err := New(host)
	require.NoError(t, err)

	f, err := ops.Create("a.txt")
	require.NoError(t, err)

	// ".." is clamped at the root, so these name the open file.
	requireCode(t, ops.Delete("../a.txt"), errors.CodeBusy)
	requireCode(t, ops.Move("../a.txt", "b.txt"), errors.CodeBusy)
	requireCode(t, ops.SetLastWriteTime("sub/../../a.txt", time.Now()), errors.CodeBusy)
	assert.True(t, ops.Exists("a.txt"))

	require.NoError(t, f.Close())

	created := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, ops.SetCreationTimeUTC("../a.txt", created))
	got, err := ops.GetCreationTimeUTC("a.txt")
	require.NoError(t, err)
	assert.True(t, created.Equal(got), "got %v, want %v", got, created)

	require.NoError(t, ops.Delete("../a.txt"))
	assert.False(t, ops.Exists("a.txt"))
}

func TestTrailingSeparator(t *testing.T) {
	eachHost(t, func(t *testing.T, h testHost) {
		writeFile(t, h.fs, "b.txt", "content")
		mkdir(t, h.fs, "dir")

		assert.False(t, h.ops.Exists("b.txt/"))
		assert.True(t, h.ops.Exists("b.txt"))

		// A file cannot hold entries, as with ENOTDIR.
		_, err := h.ops.OpenRead("b.txt/")
		requireCode(t, err, errors.CodeDirectoryNotFound)
		requireCode(t, h.ops.Delete("b.txt/"), errors.CodeDirectoryNotFound)
		assert.Equal(t, "content", readFile(t, h.fs, "b.txt"))

		info, err := h.fs.Stat("dir/")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
