//go:build !linux

package billy

import (
	"os"

	"github.com/jmgilman/go/fs/core"
)

// hostTimes falls back to the portable modification time for every field.
func hostTimes(path string) (core.FileTimes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return core.FileTimes{}, err
	}
	mod := info.ModTime()
	return core.FileTimes{Creation: mod, Access: mod, Write: mod}, nil
}
