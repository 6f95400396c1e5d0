package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers use it to decide whether a failed file operation is worth repeating
// or represents a permanent failure.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Example: a file that is held open by another handle.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid paths, missing files, out-of-range timestamps.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (temporary failures)
	CodeBusy: ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	CodeNullArgument:       ClassificationPermanent,
	CodeInvalidArgument:    ClassificationPermanent,
	CodeArgumentOutOfRange: ClassificationPermanent,
	CodeFileNotFound:       ClassificationPermanent,
	CodeDirectoryNotFound:  ClassificationPermanent,
	CodeAlreadyExists:      ClassificationPermanent,
	CodePermissionDenied:   ClassificationPermanent,
	CodeNotSupported:       ClassificationPermanent,

	// Generic I/O failures are not assumed to be transient
	CodeIO:       ClassificationPermanent,
	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
