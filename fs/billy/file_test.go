package billy

import (
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// forEachFS runs fn against a fresh MemoryFS and LocalFS.
func forEachFS(t *testing.T, fn func(t *testing.T, filesystem core.FS)) {
	t.Run("Memory", func(t *testing.T) { fn(t, NewMemory()) })
	t.Run("Local", func(t *testing.T) { fn(t, newLocal(t)) })
}

func TestFile_Name(t *testing.T) {
	forEachFS(t, func(t *testing.T, filesystem core.FS) {
		if err := filesystem.MkdirAll("dir", 0o755); err != nil {
			t.Fatalf("MkdirAll(dir): setup failed: %v", err)
		}
		f, err := filesystem.Create("/dir/./named.txt")
		if err != nil {
			t.Fatalf("Create(): got error %v", err)
		}
		defer func() { _ = f.Close() }()

		if got := f.Name(); got != "dir/named.txt" {
			t.Errorf("Name() = %q, want %q", got, "dir/named.txt")
		}
	})
}

func TestFile_SeekTruncateStat(t *testing.T) {
	forEachFS(t, func(t *testing.T, filesystem core.FS) {
		f, err := filesystem.OpenFile("seek.txt", os.O_RDWR|os.O_CREATE, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(): got error %v", err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.Write([]byte("0123456789")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}

		bf := f.(*File)
		pos, err := bf.Seek(2, io.SeekStart)
		if err != nil || pos != 2 {
			t.Fatalf("Seek(2, SeekStart) = (%d, %v), want (2, nil)", pos, err)
		}
		buf := make([]byte, 3)
		if _, err := io.ReadFull(bf, buf); err != nil || string(buf) != "234" {
			t.Errorf("Read after Seek: got (%q, %v), want %q", buf, err, "234")
		}

		if err := bf.Truncate(4); err != nil {
			t.Fatalf("Truncate(4): got error %v", err)
		}
		info, err := bf.Stat()
		if err != nil {
			t.Fatalf("Stat(): got error %v", err)
		}
		if info.Size() != 4 {
			t.Errorf("Stat().Size() after Truncate(4) = %d, want 4", info.Size())
		}

		if err := bf.Sync(); err != nil {
			t.Errorf("Sync(): got error %v, want nil", err)
		}
	})
}

func TestFile_CloseReleasesHandle(t *testing.T) {
	forEachFS(t, func(t *testing.T, filesystem core.FS) {
		tracker := filesystem.(core.HandleTracker)
		f, err := filesystem.Create("release.txt")
		if err != nil {
			t.Fatalf("Create(): got error %v", err)
		}
		if !tracker.InUse("release.txt") {
			t.Error("InUse() while open: got false, want true")
		}
		_ = f.Close()
		_ = f.Close()
		if tracker.InUse("release.txt") {
			t.Error("InUse() after Close: got true, want false")
		}
	})
}

func TestFile_Interfaces(t *testing.T) {
	var f interface{} = &File{}
	if _, ok := f.(core.File); !ok {
		t.Error("File does not implement core.File")
	}
	if _, ok := f.(io.Seeker); !ok {
		t.Error("File does not implement io.Seeker")
	}
	if _, ok := f.(core.Truncater); !ok {
		t.Error("File does not implement core.Truncater")
	}
	if _, ok := f.(core.Syncer); !ok {
		t.Error("File does not implement core.Syncer")
	}
}
