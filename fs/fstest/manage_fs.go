package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestManageFS tests file management: Remove and Rename.
// Uses DefaultTestConfig().
func TestManageFS(t *testing.T, filesystem core.FS) {
	TestManageFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestManageFSWithConfig tests file management with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "ManageFS", "RemoveSingleFile", func(t *testing.T) {
		testManageFSRemoveFile(t, filesystem)
	})
	config.run(t, "ManageFS", "RemoveEmptyDirectory", func(t *testing.T) {
		testManageFSRemoveEmptyDir(t, filesystem)
	})
	config.run(t, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		testManageFSRemoveNotExist(t, filesystem)
	})
	config.run(t, "ManageFS", "RenameFile", func(t *testing.T) {
		testManageFSRenameFile(t, filesystem)
	})
	config.run(t, "ManageFS", "RenameReplaces", func(t *testing.T) {
		testManageFSRenameReplaces(t, filesystem)
	})
	config.run(t, "ManageFS", "RenameLeavesSiblings", func(t *testing.T) {
		testManageFSRenameSiblings(t, filesystem)
	})
	config.run(t, "ManageFS", "RenameNoParent", func(t *testing.T) {
		testManageFSRenameNoParent(t, filesystem)
	})
}

// testManageFSRemoveFile tests Remove() single file deletion.
func testManageFSRemoveFile(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "testfile.txt", []byte("test file content"))

	if err := filesystem.Remove("testfile.txt"); err != nil {
		t.Fatalf("Remove(testfile.txt): got error %v, want nil", err)
	}

	_, err := filesystem.Stat("testfile.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(testfile.txt) after Remove: got error %v, want fs.ErrNotExist", err)
	}
}

// testManageFSRemoveEmptyDir tests Remove() empty directory deletion.
func testManageFSRemoveEmptyDir(t *testing.T, filesystem core.FS) {
	mkdirAll(t, filesystem, "emptydir")

	if err := filesystem.Remove("emptydir"); err != nil {
		t.Fatalf("Remove(emptydir): got error %v, want nil", err)
	}

	_, err := filesystem.Stat("emptydir")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(emptydir) after Remove: got error %v, want fs.ErrNotExist", err)
	}
}

// testManageFSRemoveNotExist tests Remove() on a missing file.
func testManageFSRemoveNotExist(t *testing.T, filesystem core.FS) {
	err := filesystem.Remove("nonexistent.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(nonexistent.txt): got error %v, want fs.ErrNotExist", err)
	}
}

// testManageFSRenameFile tests Rename() into another directory.
func testManageFSRenameFile(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "old.txt", []byte("rename me"))
	mkdirAll(t, filesystem, "dest")

	if err := filesystem.Rename("old.txt", "dest/new.txt"); err != nil {
		t.Fatalf("Rename(old.txt, dest/new.txt): got error %v, want nil", err)
	}

	if _, err := filesystem.Stat("old.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(old.txt) after Rename: got error %v, want fs.ErrNotExist", err)
	}
	data, err := filesystem.ReadFile("dest/new.txt")
	if err != nil {
		t.Fatalf("ReadFile(dest/new.txt): got error %v, want nil", err)
	}
	if string(data) != "rename me" {
		t.Errorf("ReadFile(dest/new.txt): got %q, want %q", data, "rename me")
	}
}

// testManageFSRenameReplaces tests Rename() over an existing file.
func testManageFSRenameReplaces(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "src-replace.txt", []byte("new"))
	writeFile(t, filesystem, "dst-replace.txt", []byte("old"))

	if err := filesystem.Rename("src-replace.txt", "dst-replace.txt"); err != nil {
		t.Fatalf("Rename(src-replace.txt, dst-replace.txt): got error %v, want nil", err)
	}
	data, _ := filesystem.ReadFile("dst-replace.txt")
	if string(data) != "new" {
		t.Errorf("ReadFile(dst-replace.txt): got %q, want %q", data, "new")
	}
}

// testManageFSRenameSiblings tests that Rename() only moves the named file,
// not files sharing its name as a prefix.
func testManageFSRenameSiblings(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "sib.txt", []byte("a"))
	writeFile(t, filesystem, "sib.txt.bak", []byte("b"))

	if err := filesystem.Rename("sib.txt", "moved.txt"); err != nil {
		t.Fatalf("Rename(sib.txt, moved.txt): got error %v, want nil", err)
	}
	data, err := filesystem.ReadFile("sib.txt.bak")
	if err != nil {
		t.Fatalf("ReadFile(sib.txt.bak): got error %v, want nil", err)
	}
	if string(data) != "b" {
		t.Errorf("ReadFile(sib.txt.bak): got %q, want %q", data, "b")
	}
}

// testManageFSRenameNoParent tests that Rename() never creates directories.
func testManageFSRenameNoParent(t *testing.T, filesystem core.FS) {
	writeFile(t, filesystem, "orphan.txt", []byte("x"))

	err := filesystem.Rename("orphan.txt", "nowhere/orphan.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Rename(orphan.txt, nowhere/orphan.txt): got error %v, want fs.ErrNotExist", err)
	}
	if exists, _ := filesystem.Exists("orphan.txt"); !exists {
		t.Error("Rename into missing directory removed the source")
	}
}
