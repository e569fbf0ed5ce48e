package api

import (
	"fmt"
	"net/http"
)

// NetworkError reports a request that never produced a response: DNS,
// connection, timeout or cancellation.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error (%s %s): %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a response whose status is not 2xx, or a 2xx response
// whose body could not be decoded (Err is set in that case).
type ServerError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("failed to connect server, please try again later (%s %s: %d %s)",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServerError) Unwrap() error { return e.Err }
