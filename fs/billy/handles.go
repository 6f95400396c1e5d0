package billy

import "sync"

// handleRegistry counts open handles per file.
type handleRegistry struct {
	mu   sync.Mutex
	open map[string]int
}

func newHandleRegistry() *handleRegistry {
	return &handleRegistry{open: make(map[string]int)}
}

// acquire records a new handle on name and returns the func that releases it.
// The returned func is safe to call more than once.
func (r *handleRegistry) acquire(name string) func() {
	r.mu.Lock()
	r.open[name]++
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.open[name] <= 1 {
				delete(r.open, name)
				return
			}
			r.open[name]--
		})
	}
}

func (r *handleRegistry) inUse(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open[name] > 0
}
