package api

import (
	"fmt"
	"net/http"
)

// RequestError is returned for any response outside the 2xx range. Message
// carries the server-supplied message when the body contained one; callers
// own the user-facing presentation and must not swallow it.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("request failed: %d %s", e.Status, http.StatusText(e.Status))
}

// Unauthorized reports whether the backend rejected the credentials.
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// ConnectivityError is returned when no response was obtained at all. It is
// never treated as an authentication failure.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return "connectivity failure: " + e.Err.Error()
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
