package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // the host reported a missing file
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var platformErr PlatformError
//	if errors.As(err, &platformErr) {
//	    code := platformErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a PlatformError.
//
// This function handles the error chain and will extract the code from
// the outermost PlatformError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeFileNotFound {
//	    // Handle missing file
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a PlatformError.
// This is a safe default that prevents inappropriate retry attempts.
//
// This function handles the error chain and will extract the classification
// from the outermost PlatformError in the chain.
//
// Example:
//
//	classification := errors.GetClassification(err)
//	if classification == errors.ClassificationRetryable {
//	    // Retry logic
//	}
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a PlatformError (safe default).
//
// Example:
//
//	for errors.IsRetryable(err) && attempts < 3 {
//	    time.Sleep(backoff)
//	    err = ops.Delete(path)
//	    attempts++
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// IsKind reports whether err carries kind or a code that descends from it.
// A FileNotFound error is of kind CodeIO; a NullArgument error is of kind
// CodeInvalidArgument.
func IsKind(err error, kind ErrorCode) bool {
	if err == nil {
		return false
	}
	return GetCode(err).Within(kind)
}
