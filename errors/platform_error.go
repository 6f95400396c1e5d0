package errors

import (
	stderrors "errors"
	"fmt"
)

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *platformError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *platformError) Unwrap() error {
	return e.cause
}

// derive returns a copy of e with fresh context storage.
func (e *platformError) derive() *platformError {
	return &platformError{
		code:           e.code,
		classification: e.classification,
		message:        e.message,
		context:        copyContext(e.context),
		cause:          e.cause,
	}
}

// asPlatformError finds the outermost PlatformError in err's chain. Plain
// errors are promoted to CodeUnknown with err as the cause.
func asPlatformError(err error) *platformError {
	var pe PlatformError
	if stderrors.As(err, &pe) {
		if concrete, ok := pe.(*platformError); ok {
			return concrete
		}
		return &platformError{
			code:           pe.Code(),
			classification: pe.Classification(),
			message:        pe.Message(),
			context:        pe.Context(),
			cause:          pe.Unwrap(),
		}
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
