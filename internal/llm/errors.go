package llm

import (
	"fmt"
	"net/http"
)

// InferenceFailedMessage is the only message callers ever see for a failed inference call.
const InferenceFailedMessage = "Model inference failed"

// InferenceError is returned by InferenceClient.Infer for every failure.
//
// Message and StatusCode are constants; the remote status and body never reach the caller.
// Upstream and Cause are kept for server-side logging and metrics only.
type InferenceError struct {
	Message    string
	StatusCode int
	// Upstream is the remote HTTP status, or 0 when no response was received.
	Upstream int
	Cause    error
}

func newInferenceError(upstream int, cause error) *InferenceError {
	return &InferenceError{
		Message:    InferenceFailedMessage,
		StatusCode: http.StatusInternalServerError,
		Upstream:   upstream,
		Cause:      cause,
	}
}

func (e *InferenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InferenceError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status the serving layer should answer with.
func (e *InferenceError) HTTPStatus() int {
	return e.StatusCode
}

// PublicMessage returns the message that may be shown to clients.
func (e *InferenceError) PublicMessage() string {
	return e.Message
}
