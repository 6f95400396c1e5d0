package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jmgilman/go/fs/core"
	corefstest "github.com/jmgilman/go/fs/fstest"
)

func newLocal(t *testing.T, opts ...Option) *LocalFS {
	t.Helper()
	l, err := NewLocal(t.TempDir(), opts...)
	if err != nil {
		t.Fatalf("NewLocal(): got error %v, want nil", err)
	}
	return l
}

// TestMemoryFS runs the conformance suite against MemoryFS.
func TestMemoryFS(t *testing.T) {
	corefstest.TestSuite(t, func() core.FS {
		return NewMemory()
	})
}

// TestMemoryFS_NonBlocking runs the suite with open handles not blocking.
func TestMemoryFS_NonBlocking(t *testing.T) {
	config := corefstest.DefaultTestConfig()
	config.BlockOnOpenHandle = false
	corefstest.TestSuiteWithConfig(t, func() core.FS {
		return NewMemory(WithBlockOnOpenHandle(false))
	}, config)
}

// TestLocalFS runs the conformance suite against LocalFS.
func TestLocalFS(t *testing.T) {
	corefstest.TestSuite(t, func() core.FS {
		return newLocal(t)
	})
}

func TestNewLocal_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("os.WriteFile(): setup failed: %v", err)
	}

	if _, err := NewLocal(filepath.Join(dir, "missing")); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("NewLocal(missing): got error %v, want fs.ErrNotExist", err)
	}
	if _, err := NewLocal(file); !errors.Is(err, iofs.ErrInvalid) {
		t.Errorf("NewLocal(file): got error %v, want fs.ErrInvalid", err)
	}
}

func TestLocalFS_RootBound(t *testing.T) {
	l := newLocal(t)
	if err := l.WriteFile("/etc-escape.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(/etc-escape.txt): got error %v, want nil", err)
	}
	if _, err := os.Stat(filepath.Join(l.Root(), "etc-escape.txt")); err != nil {
		t.Errorf("absolute path was not resolved below root: %v", err)
	}

	if err := l.WriteFile("../outside.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(../outside.txt): got error %v, want nil", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(l.Root()), "outside.txt")); err == nil {
		t.Error("WriteFile(../outside.txt) escaped the root")
	}
}

func TestLocalFS_AtomicWriteMode(t *testing.T) {
	l := newLocal(t)
	if err := l.WriteFileAtomic("mode.txt", strings.NewReader("")); err != nil {
		t.Fatalf("WriteFileAtomic(mode.txt): got error %v, want nil", err)
	}
	info, err := os.Stat(filepath.Join(l.Root(), "mode.txt"))
	if err != nil {
		t.Fatalf("os.Stat(mode.txt): got error %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("WriteFileAtomic(mode.txt): mode = %o, want 644", got)
	}
}

func TestLocalFS_Capabilities(t *testing.T) {
	caps := newLocal(t).Capabilities()
	if caps.TimeResolution != time.Microsecond {
		t.Errorf("TimeResolution = %v, want 1µs", caps.TimeResolution)
	}
	if caps.MaxTime.Year() != 2446 {
		t.Errorf("MaxTime = %v, want year 2446", caps.MaxTime)
	}
	if caps.MinTime.Year() != 1901 {
		t.Errorf("MinTime = %v, want year 1901", caps.MinTime)
	}
}

func TestMemoryFS_Clock(t *testing.T) {
	now := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	m := NewMemory(WithClock(func() time.Time { return now }))

	if err := m.WriteFile("clocked.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(clocked.txt): got error %v, want nil", err)
	}
	ft, err := m.Times("clocked.txt")
	if err != nil {
		t.Fatalf("Times(clocked.txt): got error %v, want nil", err)
	}
	want := core.FileTimes{Creation: now, Access: now, Write: now}
	if ft != want {
		t.Errorf("Times(clocked.txt): got %+v, want %+v", ft, want)
	}

	info, _ := m.Stat("clocked.txt")
	if !info.ModTime().Equal(now) {
		t.Errorf("Stat(clocked.txt).ModTime() = %v, want %v", info.ModTime(), now)
	}

	now = now.Add(time.Hour)
	f, _ := m.OpenFile("clocked.txt", os.O_WRONLY, 0)
	_, _ = f.Write([]byte("y"))
	_ = f.Close()

	ft, _ = m.Times("clocked.txt")
	if !ft.Write.Equal(now) {
		t.Errorf("Times(clocked.txt) after write: Write = %v, want %v", ft.Write, now)
	}
	if ft.Creation.Equal(now) {
		t.Errorf("Times(clocked.txt) after write: Creation moved to %v", ft.Creation)
	}
}

func TestMemoryFS_RemoveDropsTimes(t *testing.T) {
	m := NewMemory()
	_ = m.WriteFile("gone.txt", []byte("x"), 0o644)
	_ = m.SetTimes("gone.txt", core.FileTimes{Creation: time.Unix(0, 0)})
	if err := m.Remove("gone.txt"); err != nil {
		t.Fatalf("Remove(gone.txt): got error %v, want nil", err)
	}
	if _, ok := m.book.get("gone.txt"); ok {
		t.Error("Remove(gone.txt) left timestamps behind")
	}
}

func TestOptions(t *testing.T) {
	minTime := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTime := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(
		WithBlockOnOpenHandle(false),
		WithTimeResolution(time.Second),
		WithTimeRange(minTime, maxTime),
	)

	caps := m.Capabilities()
	if caps.BlockOnOpenHandle {
		t.Error("BlockOnOpenHandle = true, want false")
	}
	if caps.TimeResolution != time.Second {
		t.Errorf("TimeResolution = %v, want 1s", caps.TimeResolution)
	}
	if !caps.MinTime.Equal(minTime) || !caps.MaxTime.Equal(maxTime) {
		t.Errorf("time range = [%v, %v], want [%v, %v]", caps.MinTime, caps.MaxTime, minTime, maxTime)
	}
}

func TestType(t *testing.T) {
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %v, want %v", got, core.FSTypeMemory)
	}
	if got := newLocal(t).Type(); got != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %v, want %v", got, core.FSTypeLocal)
	}
}

func TestUnwrap(t *testing.T) {
	m := NewMemory()
	if m.Unwrap() == nil {
		t.Fatal("Unwrap() returned nil")
	}
	if _, err := m.Unwrap().Create("direct.txt"); err != nil {
		t.Errorf("Unwrap().Create(): got error %v", err)
	}
	if exists, _ := m.Exists("direct.txt"); !exists {
		t.Error("file created through Unwrap() is not visible")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.txt", "a.txt"},
		{"/a.txt", "a.txt"},
		{"./dir//b.txt", "dir/b.txt"},
		{"dir/../c.txt", "c.txt"},
		{".", "."},
		{"/", "."},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandleRegistry(t *testing.T) {
	r := newHandleRegistry()
	release := r.acquire("a")
	if !r.inUse("a") {
		t.Fatal("inUse(a) after acquire: got false, want true")
	}
	release()
	release()
	if r.inUse("a") {
		t.Error("inUse(a) after release: got true, want false")
	}

	r1, r2 := r.acquire("b"), r.acquire("b")
	r1()
	r1()
	if !r.inUse("b") {
		t.Error("double release of one handle freed the other")
	}
	r2()
	if r.inUse("b") {
		t.Error("inUse(b) after all releases: got true, want false")
	}
}

func TestPopulate(t *testing.T) {
	m := NewMemory()
	src := fstest.MapFS{
		"seed/a.txt":       {Data: []byte("a")},
		"seed/sub/b.txt":   {Data: []byte("b")},
		"seed/empty":       {Mode: iofs.ModeDir},
		"other/ignore.txt": {Data: []byte("x")},
	}

	if err := core.Populate(m, src, "seed"); err != nil {
		t.Fatalf("Populate(): got error %v, want nil", err)
	}

	for name, want := range map[string]string{"a.txt": "a", "sub/b.txt": "b"} {
		data, err := m.ReadFile(name)
		if err != nil || string(data) != want {
			t.Errorf("ReadFile(%q): got (%q, %v), want %q", name, data, err, want)
		}
	}
	if info, err := m.Stat("empty"); err != nil || !info.IsDir() {
		t.Errorf("Stat(empty): got (%v, %v), want directory", info, err)
	}
	if exists, _ := m.Exists("ignore.txt"); exists {
		t.Error("Populate copied files outside root")
	}
}

func TestLocalFS_Aliases(t *testing.T) {
	l := newLocal(t)
	if err := l.MkdirAll("real", 0o755); err != nil {
		t.Fatalf("MkdirAll(real): got error %v", err)
	}
	f, err := l.Create("real/a.txt")
	if err != nil {
		t.Fatalf("Create(real/a.txt): got error %v", err)
	}
	defer func() { _ = f.Close() }()

	aliases := []string{"../real/a.txt", "/../../real/a.txt", "real/../../real/a.txt"}
	if err := os.Symlink("real", filepath.Join(l.Root(), "link")); err == nil {
		aliases = append(aliases, "link/a.txt")
	}

	for _, alias := range aliases {
		if got := l.resolve(alias); got != "real/a.txt" {
			t.Errorf("resolve(%q) = %q, want real/a.txt", alias, got)
		}
		if !l.InUse(alias) {
			t.Errorf("InUse(%q): got false, want true", alias)
		}
		if err := l.Remove(alias); !errors.Is(err, core.ErrBusy) {
			t.Errorf("Remove(%q): got error %v, want core.ErrBusy", alias, err)
		}
		if err := l.Rename(alias, "b.txt"); !errors.Is(err, core.ErrBusy) {
			t.Errorf("Rename(%q): got error %v, want core.ErrBusy", alias, err)
		}
		if err := l.SetTimes(alias, core.FileTimes{Write: time.Now()}); !errors.Is(err, core.ErrBusy) {
			t.Errorf("SetTimes(%q): got error %v, want core.ErrBusy", alias, err)
		}
	}
	if got := l.resolve(".."); got != "." {
		t.Errorf(`resolve("..") = %q, want "."`, got)
	}
}

func TestLocalFS_CreationTimeThroughAlias(t *testing.T) {
	l := newLocal(t)
	if err := l.WriteFile("a.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(a.txt): got error %v", err)
	}
	created := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)
	if err := l.SetTimes("../a.txt", core.FileTimes{Creation: created}); err != nil {
		t.Fatalf("SetTimes(../a.txt): got error %v", err)
	}
	ft, err := l.Times("a.txt")
	if err != nil {
		t.Fatalf("Times(a.txt): got error %v", err)
	}
	if !ft.Creation.Equal(created) {
		t.Errorf("Times(a.txt).Creation = %v, want %v", ft.Creation, created)
	}
}

func TestTrailingSeparator(t *testing.T) {
	hosts := map[string]core.FS{
		"memory": NewMemory(),
		"local":  newLocal(t),
	}
	for name, fsys := range hosts {
		t.Run(name, func(t *testing.T) {
			if err := fsys.WriteFile("b.txt", []byte("x"), 0o644); err != nil {
				t.Fatalf("WriteFile(b.txt): got error %v", err)
			}
			if err := fsys.MkdirAll("dir", 0o755); err != nil {
				t.Fatalf("MkdirAll(dir): got error %v", err)
			}

			if _, err := fsys.Stat("b.txt/"); !errors.Is(err, iofs.ErrNotExist) {
				t.Errorf("Stat(b.txt/): got error %v, want fs.ErrNotExist", err)
			}
			if ok, err := fsys.Exists("b.txt/"); ok || err != nil {
				t.Errorf("Exists(b.txt/) = %v, %v, want false, nil", ok, err)
			}
			if _, err := fsys.Open("b.txt/"); !errors.Is(err, iofs.ErrNotExist) {
				t.Errorf("Open(b.txt/): got error %v, want fs.ErrNotExist", err)
			}
			if err := fsys.Remove("b.txt/"); !errors.Is(err, iofs.ErrNotExist) {
				t.Errorf("Remove(b.txt/): got error %v, want fs.ErrNotExist", err)
			}
			if err := fsys.Rename("b.txt/", "c.txt"); !errors.Is(err, iofs.ErrNotExist) {
				t.Errorf("Rename(b.txt/): got error %v, want fs.ErrNotExist", err)
			}
			if _, err := fsys.Create("new.txt/"); !errors.Is(err, core.ErrIsDir) {
				t.Errorf("Create(new.txt/): got error %v, want core.ErrIsDir", err)
			}
			if ok, _ := fsys.Exists("b.txt"); !ok {
				t.Error("b.txt was removed through b.txt/")
			}
			if info, err := fsys.Stat("dir/"); err != nil || !info.IsDir() {
				t.Errorf("Stat(dir/): got %v, %v, want a directory", info, err)
			}
		})
	}
}
