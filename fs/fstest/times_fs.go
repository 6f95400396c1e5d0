package fstest

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/go/fs/core"
)

// TestTimesFS tests timestamp reads and writes.
// Skips if fs doesn't implement core.TimesFS.
func TestTimesFS(t *testing.T, filesystem core.FS) {
	TestTimesFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestTimesFSWithConfig tests timestamp operations with behavior configuration.
func TestTimesFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	tfs, ok := filesystem.(core.TimesFS)
	if !ok {
		t.Skip("TimesFS not supported")
		return
	}
	caps := core.CapabilitiesOf(filesystem)

	config.run(t, "TimesFS", "NewFileHasTimes", func(t *testing.T) {
		testTimesFSNewFile(t, filesystem, tfs)
	})
	config.run(t, "TimesFS", "SetWriteAndAccess", func(t *testing.T) {
		testTimesFSSet(t, filesystem, tfs, caps)
	})
	config.run(t, "TimesFS", "ZeroFieldsPreserved", func(t *testing.T) {
		testTimesFSZeroPreserved(t, filesystem, tfs, caps)
	})
	config.run(t, "TimesFS", "SetCreation", func(t *testing.T) {
		testTimesFSSetCreation(t, filesystem, tfs, caps, config)
	})
	config.run(t, "TimesFS", "RenameKeepsTimes", func(t *testing.T) {
		testTimesFSRename(t, filesystem, tfs, caps)
	})
	config.run(t, "TimesFS", "NotExist", func(t *testing.T) {
		testTimesFSNotExist(t, tfs)
	})
}

// fixedTime is a timestamp every host in this module can represent exactly.
var fixedTime = time.Date(2011, time.March, 4, 5, 6, 7, 890123000, time.UTC)

func testTimesFSNewFile(t *testing.T, filesystem core.FS, tfs core.TimesFS) {
	writeFile(t, filesystem, "fresh.txt", []byte("x"))

	ft, err := tfs.Times("fresh.txt")
	if err != nil {
		t.Fatalf("Times(fresh.txt): got error %v, want nil", err)
	}
	if ft.Write.IsZero() || ft.Access.IsZero() || ft.Creation.IsZero() {
		t.Errorf("Times(fresh.txt): got %+v, want all fields set", ft)
	}
	if since := time.Since(ft.Write); since < -time.Minute || since > time.Hour {
		t.Errorf("Times(fresh.txt): Write = %v, want close to now", ft.Write)
	}
}

func testTimesFSSet(t *testing.T, filesystem core.FS, tfs core.TimesFS, caps core.Capabilities) {
	writeFile(t, filesystem, "stamped.txt", []byte("x"))

	access := fixedTime.Add(time.Hour)
	if err := tfs.SetTimes("stamped.txt", core.FileTimes{Access: access, Write: fixedTime}); err != nil {
		t.Fatalf("SetTimes(stamped.txt): got error %v, want nil", err)
	}

	ft, err := tfs.Times("stamped.txt")
	if err != nil {
		t.Fatalf("Times(stamped.txt): got error %v, want nil", err)
	}
	if want := caps.Truncate(fixedTime); !ft.Write.Equal(want) {
		t.Errorf("Times(stamped.txt): Write = %v, want %v", ft.Write, want)
	}
	if want := caps.Truncate(access); !ft.Access.Equal(want) {
		t.Errorf("Times(stamped.txt): Access = %v, want %v", ft.Access, want)
	}
}

func testTimesFSZeroPreserved(t *testing.T, filesystem core.FS, tfs core.TimesFS, caps core.Capabilities) {
	writeFile(t, filesystem, "partial.txt", []byte("x"))
	if err := tfs.SetTimes("partial.txt", core.FileTimes{Access: fixedTime, Write: fixedTime}); err != nil {
		t.Fatalf("SetTimes(partial.txt): setup failed: %v", err)
	}

	later := fixedTime.Add(24 * time.Hour)
	if err := tfs.SetTimes("partial.txt", core.FileTimes{Write: later}); err != nil {
		t.Fatalf("SetTimes(partial.txt, Write only): got error %v, want nil", err)
	}

	ft, _ := tfs.Times("partial.txt")
	if want := caps.Truncate(fixedTime); !ft.Access.Equal(want) {
		t.Errorf("Times(partial.txt): Access = %v, want unchanged %v", ft.Access, want)
	}
	if want := caps.Truncate(later); !ft.Write.Equal(want) {
		t.Errorf("Times(partial.txt): Write = %v, want %v", ft.Write, want)
	}
}

func testTimesFSSetCreation(t *testing.T, filesystem core.FS, tfs core.TimesFS, caps core.Capabilities, config FSTestConfig) {
	writeFile(t, filesystem, "born.txt", []byte("x"))

	err := tfs.SetTimes("born.txt", core.FileTimes{Creation: fixedTime})
	if !config.SettableCreationTime {
		if !errors.Is(err, core.ErrUnsupported) {
			t.Errorf("SetTimes(born.txt, Creation): got error %v, want core.ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("SetTimes(born.txt, Creation): got error %v, want nil", err)
	}

	ft, _ := tfs.Times("born.txt")
	if want := caps.Truncate(fixedTime); !ft.Creation.Equal(want) {
		t.Errorf("Times(born.txt): Creation = %v, want %v", ft.Creation, want)
	}
}

func testTimesFSRename(t *testing.T, filesystem core.FS, tfs core.TimesFS, caps core.Capabilities) {
	writeFile(t, filesystem, "before.txt", []byte("x"))
	if err := tfs.SetTimes("before.txt", core.FileTimes{Write: fixedTime}); err != nil {
		t.Fatalf("SetTimes(before.txt): setup failed: %v", err)
	}
	if err := filesystem.Rename("before.txt", "after.txt"); err != nil {
		t.Fatalf("Rename(before.txt, after.txt): setup failed: %v", err)
	}

	ft, err := tfs.Times("after.txt")
	if err != nil {
		t.Fatalf("Times(after.txt): got error %v, want nil", err)
	}
	if want := caps.Truncate(fixedTime); !ft.Write.Equal(want) {
		t.Errorf("Times(after.txt): Write = %v, want %v", ft.Write, want)
	}
}

func testTimesFSNotExist(t *testing.T, tfs core.TimesFS) {
	if _, err := tfs.Times("ghost.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Times(ghost.txt): got error %v, want fs.ErrNotExist", err)
	}
	if err := tfs.SetTimes("ghost.txt", core.FileTimes{Write: fixedTime}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SetTimes(ghost.txt): got error %v, want fs.ErrNotExist", err)
	}
}
