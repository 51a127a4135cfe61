package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is shown when the backend did not supply a message text.
// The wording is inherited from the admin front-end this client replaces.
const FallbackMessage = "Something went wrong"

// ErrInvalidFormat is returned when a 2xx response body does not match the
// endpoint's documented envelope. Callers get this instead of a nonsensical
// partial value.
var ErrInvalidFormat = errors.New("invalid data format")

// APIError is the only error shape surfaced for failed backend calls.
// StatusCode 0 means the request never produced an HTTP response (DNS,
// connection reset, timeout, cancellation). Error() returns the message
// text alone - callers display it and never inspect the transport failure.
type APIError struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// newConnectionError wraps a network-level failure. These surface with the
// generic fallback text: the front-end never distinguished a dead network
// from a rejected request.
func newConnectionError(err error) *APIError {
	return &APIError{
		StatusCode: 0,
		Message:    FallbackMessage,
		cause:      err,
	}
}

// newInternalError wraps a failure in the client itself (request building,
// payload encoding).
func newInternalError(err error) *APIError {
	return &APIError{
		StatusCode: 0,
		Message:    FallbackMessage,
		cause:      fmt.Errorf("internal error: %w", err),
	}
}

// newAPIError extracts the backend's message from a non-2xx response.
// A 4xx validation message and a 5xx outage read the same way to the
// caller - only the text differs.
func newAPIError(res *http.Response) *APIError {
	var serverErr struct {
		Message string `json:"message"`
	}
	if res.Body != nil {
		_ = json.NewDecoder(res.Body).Decode(&serverErr)
	}

	message := serverErr.Message
	if message == "" {
		message = FallbackMessage
	}

	return &APIError{
		StatusCode: res.StatusCode,
		Message:    message,
		cause:      fmt.Errorf("backend returned status %d", res.StatusCode),
	}
}
