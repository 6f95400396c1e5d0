// Package errors provides the structured error taxonomy used by every file
// operation in this module.
//
// Errors carry a code, a retry classification, a message, optional context
// metadata and an optional cause. They remain compatible with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidArgument, "path is empty")
//	err := errors.Newf(errors.CodeFileNotFound, "could not find file %q", path)
//
// Wrapping host errors:
//
//	if err := host.Remove(path); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "remove failed")
//	}
//
// Adding context:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "op":   "Move",
//	    "path": src,
//	})
//
// # Error Kinds
//
// Codes form a small hierarchy. A caller may test for a precise code with
// GetCode or for a whole family with IsKind:
//
//	CodeInvalidArgument
//	    CodeNullArgument
//	    CodeArgumentOutOfRange
//	CodeIO
//	    CodeFileNotFound
//	    CodeDirectoryNotFound
//	    CodeAlreadyExists
//	    CodeBusy
//	    CodePermissionDenied
//	CodeNotSupported
//	CodeInternal
//	CodeUnknown
//
// So errors.IsKind(err, errors.CodeIO) holds for a FileNotFound error while
// errors.GetCode(err) == errors.CodeIO does not.
//
// # Error Classification
//
// Only CodeBusy is retryable by default: the file may be released by its
// holder. Every other code is permanent. Classification is preserved when
// wrapping and can be overridden with WithClassification.
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse. The cause chain is never
// serialized since it may contain host paths or other internal details.
package errors
