package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadFile, Exists.
// Uses DefaultTestConfig().
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content")
	mkdirAll(t, filesystem, "testdir")
	writeFile(t, filesystem, "testdir/testfile.txt", testContent)

	config.run(t, "ReadFS", "Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem, testContent)
	})
	config.run(t, "ReadFS", "StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	config.run(t, "ReadFS", "StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem)
	})
	config.run(t, "ReadFS", "ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, testContent)
	})
	config.run(t, "ReadFS", "OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	config.run(t, "ReadFS", "OpenDirectory", func(t *testing.T) {
		testReadFSOpenDirectory(t, filesystem)
	})
	config.run(t, "ReadFS", "Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem)
	})
}

// testReadFSOpen tests Open() on existing file and reads contents.
func testReadFSOpen(t *testing.T, filesystem core.FS, testContent []byte) {
	f, err := filesystem.Open("testdir/testfile.txt")
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

// testReadFSStatFile tests Stat() on file.
func testReadFSStatFile(t *testing.T, filesystem core.FS, testContent []byte) {
	info, err := filesystem.Stat("testdir/testfile.txt")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/testfile.txt")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
	}
}

// testReadFSStatDir tests Stat() on directory.
func testReadFSStatDir(t *testing.T, filesystem core.FS) {
	info, err := filesystem.Stat("testdir")
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", "testdir", err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", "testdir")
	}
}

// testReadFSReadFile tests ReadFile() entire contents.
func testReadFSReadFile(t *testing.T, filesystem core.FS, testContent []byte) {
	data, err := filesystem.ReadFile("testdir/testfile.txt")
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
	}
}

// testReadFSOpenNotExist tests Open() and Stat() on missing paths.
func testReadFSOpenNotExist(t *testing.T, filesystem core.FS) {
	for _, name := range []string{"nonexistent", "missingdir/file.txt"} {
		if _, err := filesystem.Open(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", name, err)
		}
		_, err := filesystem.Stat(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
		}
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			t.Errorf("Stat(%q): got %T, want *fs.PathError", name, err)
		}
	}
}

// testReadFSOpenDirectory tests that directories cannot be opened as files.
func testReadFSOpenDirectory(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Open("testdir")
	if err == nil {
		_ = f.Close()
		t.Fatalf("Open(%q): got nil error, want core.ErrIsDir", "testdir")
	}
	if !errors.Is(err, core.ErrIsDir) {
		t.Errorf("Open(%q): got error %v, want core.ErrIsDir", "testdir", err)
	}
}

// testReadFSExists tests Exists() for files, directories and missing paths.
func testReadFSExists(t *testing.T, filesystem core.FS) {
	tests := []struct {
		name string
		want bool
	}{
		{"testdir/testfile.txt", true},
		{"testdir", true},
		{"nonexistent", false},
		{"nonexistent/child", false},
	}

	for _, tt := range tests {
		got, err := filesystem.Exists(tt.name)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Exists(%q): got %v, want %v", tt.name, got, tt.want)
		}
	}
}
