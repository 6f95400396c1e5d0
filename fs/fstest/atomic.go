package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestAtomicWriter tests whole-file replacement.
// Skips if fs doesn't implement core.AtomicWriter.
func TestAtomicWriter(t *testing.T, filesystem core.FS) {
	TestAtomicWriterWithConfig(t, filesystem, DefaultTestConfig())
}

// TestAtomicWriterWithConfig tests whole-file replacement with behavior configuration.
func TestAtomicWriterWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	aw, ok := filesystem.(core.AtomicWriter)
	if !ok {
		t.Skip("AtomicWriter not supported")
		return
	}

	config.run(t, "AtomicWriter", "NewFile", func(t *testing.T) {
		if err := aw.WriteFileAtomic("atomic-new.txt", strings.NewReader("fresh")); err != nil {
			t.Fatalf("WriteFileAtomic(atomic-new.txt): got error %v, want nil", err)
		}
		data, _ := filesystem.ReadFile("atomic-new.txt")
		if !bytes.Equal(data, []byte("fresh")) {
			t.Errorf("ReadFile(atomic-new.txt): got %q, want %q", data, "fresh")
		}
	})
	config.run(t, "AtomicWriter", "Replace", func(t *testing.T) {
		writeFile(t, filesystem, "atomic-old.txt", []byte("a much longer original body"))
		if err := aw.WriteFileAtomic("atomic-old.txt", strings.NewReader("short")); err != nil {
			t.Fatalf("WriteFileAtomic(atomic-old.txt): got error %v, want nil", err)
		}
		data, _ := filesystem.ReadFile("atomic-old.txt")
		if !bytes.Equal(data, []byte("short")) {
			t.Errorf("ReadFile(atomic-old.txt): got %q, want %q", data, "short")
		}
	})
	config.run(t, "AtomicWriter", "NoParent", func(t *testing.T) {
		err := aw.WriteFileAtomic("missing/atomic.txt", strings.NewReader("x"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("WriteFileAtomic(missing/atomic.txt): got error %v, want fs.ErrNotExist", err)
		}
	})
}
