package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// The billing service reports failures in three shapes the client cares
// about: a 4xx with a server message (validation), a 404-style missing
// record message, and everything else (network failures, 5xx, garbage
// bodies). Callers branch with errors.As.

// ValidationError is a 4xx response carrying a field-level server message.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned for operations against a record the server no
// longer has, e.g. deleting an id that was already removed.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// TransportError is a network failure or a non-2xx response without a
// parseable server message.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("transport error: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyError maps a non-2xx response to the taxonomy above. The server's
// message, when parseable, is surfaced verbatim.
func classifyError(statusCode int, body []byte) error {
	var mr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &mr); err == nil {
		msg = mr.Message
		if msg == "" {
			msg = mr.Error
		}
	}

	switch {
	case statusCode == http.StatusNotFound && msg != "":
		return &NotFoundError{Message: msg}
	case statusCode >= 400 && statusCode < 500 && msg != "":
		return &ValidationError{StatusCode: statusCode, Message: msg}
	default:
		return &TransportError{StatusCode: statusCode}
	}
}
