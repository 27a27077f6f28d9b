package travelapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a RequestFailure caused by an HTTP 404.
var ErrNotFound = errors.New("travelapi: not found")

// RequestFailure is returned for any network error, non-2xx status, or
// undecodable response body.
type RequestFailure struct {
	Op         string
	Method     string
	URL        string
	StatusCode int // 0 when the request never got a response
	Body       string
	Err        error
}

func (e *RequestFailure) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("travelapi: %s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("travelapi: %s %s %s: status %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("travelapi: %s %s %s: external api returned status %d", e.Op, e.Method, e.URL, e.StatusCode)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

func (e *RequestFailure) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a RequestFailure for a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRequestFailure unwraps err into a RequestFailure.
func IsRequestFailure(err error) (*RequestFailure, bool) {
	var rf *RequestFailure
	ok := errors.As(err, &rf)
	return rf, ok
}
