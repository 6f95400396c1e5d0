package fileops

import (
	"fmt"
	"os"
)

// OpenMode specifies how the host should open a file.
type OpenMode int

// Open modes. The zero value is invalid.
const (
	// ModeCreateNew creates a new file and fails if it already exists.
	ModeCreateNew OpenMode = iota + 1
	// ModeCreate creates a new file or truncates an existing one.
	ModeCreate
	// ModeOpen opens an existing file.
	ModeOpen
	// ModeOpenOrCreate opens a file, creating it if absent. Content is kept.
	ModeOpenOrCreate
	// ModeTruncate opens a file and discards its content.
	ModeTruncate
	// ModeAppend opens a file positioned at its end. Data before that
	// position cannot be overwritten through the handle.
	ModeAppend
)

func (m OpenMode) String() string {
	switch m {
	case ModeCreateNew:
		return "CreateNew"
	case ModeCreate:
		return "Create"
	case ModeOpen:
		return "Open"
	case ModeOpenOrCreate:
		return "OpenOrCreate"
	case ModeTruncate:
		return "Truncate"
	case ModeAppend:
		return "Append"
	default:
		return fmt.Sprintf("OpenMode(%d)", int(m))
	}
}

func (m OpenMode) valid() bool {
	return m >= ModeCreateNew && m <= ModeAppend
}

// creates reports whether the mode creates an absent file.
func (m OpenMode) creates() bool {
	return m != ModeOpen
}

// writes reports whether the mode needs write access.
func (m OpenMode) writes() bool {
	switch m {
	case ModeCreateNew, ModeCreate, ModeTruncate, ModeAppend:
		return true
	default:
		return false
	}
}

// Access specifies the operations permitted through a handle.
type Access int

// Access values. The zero value is invalid.
const (
	AccessRead Access = iota + 1
	AccessWrite
	AccessReadWrite
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	case AccessReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

func (a Access) valid() bool {
	return a >= AccessRead && a <= AccessReadWrite
}

func (a Access) canRead() bool  { return a == AccessRead || a == AccessReadWrite }
func (a Access) canWrite() bool { return a == AccessWrite || a == AccessReadWrite }

// flags returns the os.OpenFile flags for the pair. Append is opened
// without O_APPEND; the handle positions itself at the end instead.
func flags(mode OpenMode, access Access) int {
	var flag int
	switch access {
	case AccessRead:
		flag = os.O_RDONLY
	case AccessWrite:
		flag = os.O_WRONLY
	case AccessReadWrite:
		flag = os.O_RDWR
	}

	switch mode {
	case ModeCreateNew:
		flag |= os.O_CREATE | os.O_EXCL
	case ModeCreate, ModeTruncate:
		flag |= os.O_CREATE | os.O_TRUNC
	case ModeOpenOrCreate, ModeAppend:
		flag |= os.O_CREATE
	}
	return flag
}
