package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for error responses in API endpoints.
// It provides a flat, serializable representation of errors without exposing
// internal error chains or sensitive information.
//
// The wrapped error chain is intentionally excluded to prevent information leakage
// while still providing useful debugging context through the Code, Message, and Context fields.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For PlatformError instances, extracts code, message, classification, and context.
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the error message.
//
// The wrapped error chain is excluded; it may contain host paths.
//
// Example:
//
//	if err := ops.Copy(src, dst, false); err != nil {
//	    _ = json.NewEncoder(os.Stderr).Encode(errors.ToJSON(err))
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !As(err, &platformErr) {
		return &ErrorResponse{
			Code:           string(CodeUnknown),
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}

	return &ErrorResponse{
		Code:           string(platformErr.Code()),
		Message:        platformErr.Message(),
		Classification: string(platformErr.Classification()),
		Context:        platformErr.Context(),
	}
}

// MarshalJSON implements json.Marshaler for platformError.
// This allows PlatformError instances to be marshaled directly using json.Marshal
// without needing to call ToJSON explicitly.
//
// Example:
//
//	err := errors.New(errors.CodeFileNotFound, "could not find file")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"FILE_NOT_FOUND","message":"could not find file","classification":"PERMANENT"}
func (e *platformError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		// context values are caller supplied and may not be marshalable
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
