package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Argument errors.

	// CodeNullArgument indicates a required argument was not supplied at all.
	CodeNullArgument ErrorCode = "NULL_ARGUMENT"

	// CodeInvalidArgument indicates an argument is empty, whitespace-only,
	// contains an invalid character, or forms an illegal combination.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeArgumentOutOfRange indicates an argument lies outside the range the host can represent.
	CodeArgumentOutOfRange ErrorCode = "ARGUMENT_OUT_OF_RANGE"

	// I/O errors.

	// CodeIO indicates a generic I/O failure reported by the host.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeFileNotFound indicates the operation requires an existing file and it is absent.
	CodeFileNotFound ErrorCode = "FILE_NOT_FOUND"

	// CodeDirectoryNotFound indicates the parent directory of a target path does not exist.
	CodeDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"

	// CodeAlreadyExists indicates the destination exists where exclusivity is required.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeBusy indicates the file is held open and the host refuses the operation.
	CodeBusy ErrorCode = "RESOURCE_BUSY"

	// CodePermissionDenied indicates the host denied access to the file.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Capability errors.

	// CodeNotSupported indicates the host or handle cannot perform the operation.
	CodeNotSupported ErrorCode = "NOT_SUPPORTED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// parents records the broader kind each code belongs to. A FileNotFound is
// also an I/O error and a NullArgument is also an InvalidArgument.
var parents = map[ErrorCode]ErrorCode{
	CodeNullArgument:       CodeInvalidArgument,
	CodeArgumentOutOfRange: CodeInvalidArgument,
	CodeFileNotFound:       CodeIO,
	CodeDirectoryNotFound:  CodeIO,
	CodeAlreadyExists:      CodeIO,
	CodeBusy:               CodeIO,
	CodePermissionDenied:   CodeIO,
}

// Parent returns the broader kind this code is a member of.
// The second return value is false for root kinds.
func (c ErrorCode) Parent() (ErrorCode, bool) {
	p, ok := parents[c]
	return p, ok
}

// Within reports whether c equals kind or descends from it.
func (c ErrorCode) Within(kind ErrorCode) bool {
	for code, ok := c, true; ok; code, ok = code.Parent() {
		if code == kind {
			return true
		}
	}
	return false
}
