package api

import (
	"errors"
	"fmt"
)

// ErrNetwork indicates that the server could not be reached or the
// response could not be read. The outcome of the request is unknown.
var ErrNetwork = errors.New("network error")

// RejectedError is returned when the server answered with a non-2xx status.
type RejectedError struct {
	Message    string
	StatusCode int
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rejected by server (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("rejected by server (status %d): %s", e.StatusCode, e.Message)
}

// IsRejected reports whether err is a rejection with the given status code.
func IsRejected(err error, statusCode int) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected) && rejected.StatusCode == statusCode
}
