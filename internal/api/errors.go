package api

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes returned by the client. Use errors.Is to classify.
var (
	// ErrNetwork marks requests that could not complete (transport failure,
	// cancellation, timeout).
	ErrNetwork = errors.New("network error")
	// ErrHTTP marks non-2xx responses. The concrete error is *HTTPError.
	ErrHTTP = errors.New("http error")
	// ErrMalformedResponse marks bodies that are not the expected JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError is a non-2xx response from the backend.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Unwrap lets errors.Is(err, ErrHTTP) match.
func (e *HTTPError) Unwrap() error { return ErrHTTP }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
