// Package fstest provides a conformance test suite for validating host
// filesystems against the core.FS contract the file operations facade
// relies on.
//
// Besides the basic read, write and manage operations, the suite checks the
// behaviors hosts must get right for the facade's error taxonomy to hold:
// no implicit parent directories, O_EXCL and O_TRUNC semantics, directories
// refusing to open as files, busy files while a handle is open, and
// timestamp round trips.
//
// Example usage:
//
//	func TestMyHost(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myhost.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// BlockOnOpenHandle indicates the host refuses Remove, Rename and
	// SetTimes while a handle to the file is open.
	BlockOnOpenHandle bool

	// SettableCreationTime indicates SetTimes accepts a creation time.
	SettableCreationTime bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "ManageFS/RenameBusy").
	SkipTests []string
}

// DefaultTestConfig returns the configuration matching core.DefaultCapabilities.
func DefaultTestConfig() FSTestConfig {
	return FSTestConfig{
		BlockOnOpenHandle:    true,
		SettableCreationTime: true,
	}
}

// TestSuite runs all applicable conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
// Uses DefaultTestConfig().
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, DefaultTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"TimesFS", TestTimesFSWithConfig},
		{"Handles", TestHandlesWithConfig},
		{"TempFS", TestTempFSWithConfig},
		{"AtomicWriter", TestAtomicWriterWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newFS(), config)
		})
	}
}

func (c FSTestConfig) shouldSkip(testName string) bool {
	for _, skip := range c.SkipTests {
		if skip == testName {
			return true
		}
	}
	return false
}

// run executes a named subtest unless it is listed in SkipTests.
func (c FSTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if c.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}

// writeFile is a setup helper that fails the test on error.
func writeFile(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()
	if err := filesystem.WriteFile(name, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

// mkdirAll is a setup helper that fails the test on error.
func mkdirAll(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	if err := filesystem.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
	}
}
