package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMalformedBody is returned when a response body does not have the shape
// the dashboard relies on.
var ErrMalformedBody = errors.New("malformed response body")

// StatusError describes a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s returned %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// IsStatus reports whether err is a StatusError, i.e. the backend answered
// but refused.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
