package llm

import (
	"errors"
	"net/http"
	"testing"
)

func TestInferenceError(t *testing.T) {
	cause := errors.New("bad status 503")
	err := newInferenceError(http.StatusServiceUnavailable, cause)

	if err.Message != "Model inference failed" {
		t.Errorf("Message = %q, want Model inference failed", err.Message)
	}
	if err.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("HTTPStatus() = %d, want 500", err.HTTPStatus())
	}
	if err.Error() != "Model inference failed: bad status 503" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("InferenceError should unwrap to its cause")
	}
}

func TestInferenceError_NoCause(t *testing.T) {
	err := &InferenceError{Message: InferenceFailedMessage, StatusCode: http.StatusInternalServerError}
	if err.Error() != InferenceFailedMessage {
		t.Errorf("Error() = %q, want %q", err.Error(), InferenceFailedMessage)
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() should be nil without a cause")
	}
}
