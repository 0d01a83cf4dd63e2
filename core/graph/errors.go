package graph

import (
	"errors"
	"fmt"
)

// ErrTransport matches every error produced by the Graph client, whether the request
// never reached the API or the API answered with an error payload.
var ErrTransport = errors.New("graph transport error")

// Error is an error returned by the Graph API or the transport underneath it.
type Error struct {
	// StatusCode is the HTTP status of the response, 0 if none was received.
	StatusCode int `json:"-"`
	// Message is the human readable description.
	Message string `json:"message"`
	// Type is the Graph exception type (e.g., OAuthException).
	Type string `json:"type"`
	// Code is the Graph error code.
	Code int `json:"code"`
	// Subcode is the Graph error subcode.
	Subcode int `json:"error_subcode"`
	// TraceID is the fbtrace_id used by Facebook support.
	TraceID string `json:"fbtrace_id"`

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Type != "" && e.Code != 0:
		return fmt.Sprintf("%s (code %d): %s", e.Type, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("graph api status %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes every *Error match ErrTransport.
func (e *Error) Is(target error) bool {
	return target == ErrTransport
}

// newTransportError wraps a failure that happened before a response was decoded.
func newTransportError(msg string, cause error) *Error {
	return &Error{Message: fmt.Sprintf("%s: %v", msg, cause), cause: cause}
}
