package fstest

import (
	"bytes"
	"path"
	"strings"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestTempFS tests temporary file creation.
// Skips if fs doesn't implement core.TempFS.
func TestTempFS(t *testing.T, filesystem core.FS) {
	TestTempFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestTempFSWithConfig tests temporary file creation with behavior configuration.
func TestTempFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	tfs, ok := filesystem.(core.TempFS)
	if !ok {
		t.Skip("TempFS not supported")
		return
	}

	config.run(t, "TempFS", "TempFileInRoot", func(t *testing.T) {
		testTempFSTempFile(t, filesystem, tfs, ".")
	})
	config.run(t, "TempFS", "TempFileInDir", func(t *testing.T) {
		mkdirAll(t, filesystem, "tempfiles")
		testTempFSTempFile(t, filesystem, tfs, "tempfiles")
	})
}

// testTempFSTempFile tests that TempFile() creates a writable file in dir
// whose Name() can be used with the filesystem.
func testTempFSTempFile(t *testing.T, filesystem core.FS, tfs core.TempFS, dir string) {
	f, err := tfs.TempFile(dir, ".tmp-*")
	if err != nil {
		t.Fatalf("TempFile(%q, %q): got error %v, want nil", dir, ".tmp-*", err)
	}
	tempPath := f.Name()

	if got := path.Dir(tempPath); got != dir {
		t.Errorf("TempFile(%q): Name() = %q, want a file directly in %q", dir, tempPath, dir)
	}
	if !strings.HasPrefix(path.Base(tempPath), ".tmp-") {
		t.Errorf("TempFile(%q): Name() = %q, want prefix %q", dir, tempPath, ".tmp-")
	}

	testData := []byte("temporary file content")
	if _, err := f.Write(testData); err != nil {
		t.Errorf("Write() to temp file: got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() temp file: got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(tempPath)
	if err != nil {
		t.Fatalf("ReadFile(%q) on temp file: got error %v, want nil", tempPath, err)
	}
	if !bytes.Equal(data, testData) {
		t.Errorf("ReadFile(%q) on temp file: got %q, want %q", tempPath, data, testData)
	}

	if err := filesystem.Remove(tempPath); err != nil {
		t.Errorf("Remove(%q) temp file: got error %v, want nil", tempPath, err)
	}
}
