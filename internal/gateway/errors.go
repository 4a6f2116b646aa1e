package gateway

import (
	"errors"
	"fmt"
)

// ServerError is returned when a backend answered with a non-2xx status.
type ServerError struct {
	Status  int
	Code    string
	Message string
	Body    []byte
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request with status %d", e.Status)
}

// NoResponseError is returned when the request went out but no reply came
// back (network failure, timeout or cancellation).
type NoResponseError struct {
	Method string
	URL    string
	Err    error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}

// RequestError is returned when the request could not be built or encoded.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error building request %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns the server-provided message when err carries one, otherwise fallback.
func Message(err error, fallback string) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	return fallback
}
