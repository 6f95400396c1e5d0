package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestWriteFS tests write operations: Create, OpenFile, WriteFile, MkdirAll.
// Uses DefaultTestConfig().
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "WriteFS", "CreateAndWrite", func(t *testing.T) {
		testWriteFSCreate(t, filesystem)
	})
	config.run(t, "WriteFS", "CreateTruncates", func(t *testing.T) {
		testWriteFSCreateTruncates(t, filesystem)
	})
	config.run(t, "WriteFS", "CreateInNonExistentDir", func(t *testing.T) {
		testWriteFSCreateNoParent(t, filesystem)
	})
	config.run(t, "WriteFS", "Exclusive", func(t *testing.T) {
		testWriteFSExclusive(t, filesystem)
	})
	config.run(t, "WriteFS", "Append", func(t *testing.T) {
		testWriteFSAppend(t, filesystem)
	})
	config.run(t, "WriteFS", "ReadOnlyCreate", func(t *testing.T) {
		testWriteFSReadOnlyCreate(t, filesystem)
	})
	config.run(t, "WriteFS", "MkdirAll", func(t *testing.T) {
		testWriteFSMkdirAll(t, filesystem)
	})
}

// testWriteFSCreate tests Create() followed by Write() and ReadFile().
func testWriteFSCreate(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Create("created.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "created.txt", err)
	}
	if _, err := f.Write([]byte("hello")); err != nil {
		t.Errorf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}

	data, err := filesystem.ReadFile("created.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "created.txt", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile(%q): got %q, want %q", "created.txt", data, "hello")
	}
}

// testWriteFSCreateTruncates tests that Create() empties an existing file.
func testWriteFSCreateTruncates(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "truncate.txt", []byte("old content"))

	f, err := filesystem.Create("truncate.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "truncate.txt", err)
	}
	_ = f.Close()

	info, err := filesystem.Stat("truncate.txt")
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", "truncate.txt", err)
	}
	if info.Size() != 0 {
		t.Errorf("Stat(%q): Size() = %d, want 0", "truncate.txt", info.Size())
	}
}

// testWriteFSCreateNoParent tests that hosts never create parent directories.
func testWriteFSCreateNoParent(t *testing.T, filesystem core.FS) {
	_, err := filesystem.Create("noparent/file.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Create(%q): got error %v, want fs.ErrNotExist", "noparent/file.txt", err)
	}
	if exists, _ := filesystem.Exists("noparent"); exists {
		t.Errorf("Create(%q): parent directory was created", "noparent/file.txt")
	}
}

// testWriteFSExclusive tests O_CREATE|O_EXCL.
func testWriteFSExclusive(t *testing.T, filesystem core.FS) {
	flag := os.O_RDWR | os.O_CREATE | os.O_EXCL

	f, err := filesystem.OpenFile("excl.txt", flag, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_EXCL): got error %v, want nil", "excl.txt", err)
	}
	_ = f.Close()

	_, err = filesystem.OpenFile("excl.txt", flag, 0o644)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("OpenFile(%q, O_EXCL) second time: got error %v, want fs.ErrExist", "excl.txt", err)
	}
}

// testWriteFSAppend tests that O_APPEND writes land at the end.
func testWriteFSAppend(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "append.txt", []byte("abc"))

	f, err := filesystem.OpenFile("append.txt", os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_APPEND): got error %v, want nil", "append.txt", err)
	}
	if _, err := f.Write([]byte("def")); err != nil {
		t.Errorf("Write(): got error %v, want nil", err)
	}
	_ = f.Close()

	data, _ := filesystem.ReadFile("append.txt")
	if string(data) != "abcdef" {
		t.Errorf("ReadFile(%q): got %q, want %q", "append.txt", data, "abcdef")
	}
}

// testWriteFSReadOnlyCreate tests O_RDONLY|O_CREATE yields a readable
// handle on a new, empty file.
func testWriteFSReadOnlyCreate(t *testing.T, filesystem core.FS) {
	f, err := filesystem.OpenFile("rocreate.txt", os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_RDONLY|O_CREATE): got error %v, want nil", "rocreate.txt", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4)
	if n, err := f.Read(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read(): got (%d, %v), want (0, io.EOF)", n, err)
	}
}

// testWriteFSMkdirAll tests nested directory creation and idempotence.
func testWriteFSMkdirAll(t *testing.T, filesystem core.FS) {
	for i := 0; i < 2; i++ {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(%q) call %d: got error %v, want nil", "a/b/c", i+1, err)
		}
	}

	info, err := filesystem.Stat("a/b")
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(%q): got (%v, %v), want directory", "a/b", info, err)
	}

	writeFile(t, filesystem, "a/b/c/leaf.txt", []byte("leaf"))
	data, _ := filesystem.ReadFile("a/b/c/leaf.txt")
	if !bytes.Equal(data, []byte("leaf")) {
		t.Errorf("ReadFile(%q): got %q, want %q", "a/b/c/leaf.txt", data, "leaf")
	}
}
