package billy

import (
	"sync"

	"github.com/jmgilman/go/fs/core"
)

// timeBook records timestamps the backing billy filesystem cannot hold.
type timeBook struct {
	mu    sync.RWMutex
	times map[string]core.FileTimes
}

func newTimeBook() *timeBook {
	return &timeBook{times: make(map[string]core.FileTimes)}
}

func (b *timeBook) get(name string) (core.FileTimes, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ft, ok := b.times[name]
	return ft, ok
}

// merge stores the non-zero fields of ft over whatever is recorded for name.
func (b *timeBook) merge(name string, ft core.FileTimes) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.times[name]
	if !ft.Creation.IsZero() {
		cur.Creation = ft.Creation
	}
	if !ft.Access.IsZero() {
		cur.Access = ft.Access
	}
	if !ft.Write.IsZero() {
		cur.Write = ft.Write
	}
	b.times[name] = cur
}

func (b *timeBook) move(from, to string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.times, to)
	if ft, ok := b.times[from]; ok {
		b.times[to] = ft
		delete(b.times, from)
	}
}

func (b *timeBook) drop(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.times, name)
}
