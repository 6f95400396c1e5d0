package fstest

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/fs/core"
)

// TestHandles tests how open handles interact with Remove, Rename and SetTimes.
func TestHandles(t *testing.T, filesystem core.FS) {
	TestHandlesWithConfig(t, filesystem, DefaultTestConfig())
}

// TestHandlesWithConfig tests open-handle behavior with configuration.
func TestHandlesWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	config.run(t, "Handles", "InUse", func(t *testing.T) {
		testHandlesInUse(t, filesystem)
	})
	config.run(t, "Handles", "RemoveWhileOpen", func(t *testing.T) {
		testHandlesRemove(t, filesystem, config)
	})
	config.run(t, "Handles", "RenameWhileOpen", func(t *testing.T) {
		testHandlesRename(t, filesystem, config)
	})
	config.run(t, "Handles", "SetTimesWhileOpen", func(t *testing.T) {
		testHandlesSetTimes(t, filesystem, config)
	})
}

func testHandlesInUse(t *testing.T, filesystem core.FS) {
	tracker, ok := filesystem.(core.HandleTracker)
	if !ok {
		t.Skip("HandleTracker not supported")
		return
	}
	writeFile(t, filesystem, "tracked.txt", []byte("x"))

	if tracker.InUse("tracked.txt") {
		t.Errorf("InUse(tracked.txt) before Open: got true, want false")
	}

	first, err := filesystem.Open("tracked.txt")
	if err != nil {
		t.Fatalf("Open(tracked.txt): got error %v, want nil", err)
	}
	second, err := filesystem.Open("tracked.txt")
	if err != nil {
		t.Fatalf("Open(tracked.txt) second handle: got error %v, want nil", err)
	}
	if !tracker.InUse("tracked.txt") {
		t.Errorf("InUse(tracked.txt) while open: got false, want true")
	}

	_ = first.Close()
	if !tracker.InUse("tracked.txt") {
		t.Errorf("InUse(tracked.txt) with one handle left: got false, want true")
	}
	_ = second.Close()
	if tracker.InUse("tracked.txt") {
		t.Errorf("InUse(tracked.txt) after Close: got true, want false")
	}
}

// expectBusy checks err against the configured open-handle behavior.
func expectBusy(t *testing.T, op string, err error, config FSTestConfig) {
	t.Helper()
	if config.BlockOnOpenHandle {
		if !errors.Is(err, core.ErrBusy) {
			t.Errorf("%s while open: got error %v, want core.ErrBusy", op, err)
		}
		return
	}
	if err != nil {
		t.Errorf("%s while open: got error %v, want nil", op, err)
	}
}

func testHandlesRemove(t *testing.T, filesystem core.FS, config FSTestConfig) {
	writeFile(t, filesystem, "held-remove.txt", []byte("x"))
	f, err := filesystem.Open("held-remove.txt")
	if err != nil {
		t.Fatalf("Open(held-remove.txt): setup failed: %v", err)
	}

	expectBusy(t, "Remove(held-remove.txt)", filesystem.Remove("held-remove.txt"), config)
	_ = f.Close()

	if config.BlockOnOpenHandle {
		if err := filesystem.Remove("held-remove.txt"); err != nil {
			t.Errorf("Remove(held-remove.txt) after Close: got error %v, want nil", err)
		}
	}
}

func testHandlesRename(t *testing.T, filesystem core.FS, config FSTestConfig) {
	writeFile(t, filesystem, "held-rename.txt", []byte("x"))
	f, err := filesystem.Open("held-rename.txt")
	if err != nil {
		t.Fatalf("Open(held-rename.txt): setup failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	expectBusy(t, "Rename(held-rename.txt)", filesystem.Rename("held-rename.txt", "renamed.txt"), config)
}

func testHandlesSetTimes(t *testing.T, filesystem core.FS, config FSTestConfig) {
	tfs, ok := filesystem.(core.TimesFS)
	if !ok {
		t.Skip("TimesFS not supported")
		return
	}
	writeFile(t, filesystem, "held-times.txt", []byte("x"))
	f, err := filesystem.Open("held-times.txt")
	if err != nil {
		t.Fatalf("Open(held-times.txt): setup failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	err = tfs.SetTimes("held-times.txt", core.FileTimes{Write: fixedTime})
	expectBusy(t, "SetTimes(held-times.txt)", err, config)
}
