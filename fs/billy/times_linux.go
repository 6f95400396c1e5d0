//go:build linux

package billy

import (
	"time"

	"github.com/jmgilman/go/fs/core"
	"golang.org/x/sys/unix"
)

// hostTimes reads timestamps with statx so the birth time is available on
// filesystems that record one. Otherwise Creation falls back to the change
// time, which is the earliest timestamp the kernel keeps.
func hostTimes(path string) (core.FileTimes, error) {
	var stx unix.Statx_t
	mask := unix.STATX_ATIME | unix.STATX_MTIME | unix.STATX_CTIME | unix.STATX_BTIME
	if err := unix.Statx(unix.AT_FDCWD, path, 0, mask, &stx); err != nil {
		return core.FileTimes{}, err
	}

	ft := core.FileTimes{
		Access: statxTime(stx.Atime),
		Write:  statxTime(stx.Mtime),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		ft.Creation = statxTime(stx.Btime)
	} else {
		ft.Creation = statxTime(stx.Ctime)
	}
	return ft, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
