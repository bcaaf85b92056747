package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Result is everything a call produced: the decoded payload on success, the
// raw body otherwise, and the status line the service answered with.
type Result[T any] struct {
	Data       *T
	ErrorBody  []byte
	StatusCode int
	Header     http.Header
}

func (r *Result[T]) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// MapResultToError returns nil for a 2xx result and a sentinel error joined with
// the service's error body for anything else.
func MapResultToError[T any](result *Result[T]) error {
	if result == nil {
		return errors.New("result is nil")
	}
	if result.OK() {
		return nil
	}

	var mappedErr error
	switch result.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		mappedErr = ErrUnauthorized
	case http.StatusNotFound:
		mappedErr = ErrNotFound
	default:
		mappedErr = fmt.Errorf("%w: %d", ErrUnexpectedStatus, result.StatusCode)
	}

	if len(result.ErrorBody) == 0 {
		return mappedErr
	}
	return errors.Join(mappedErr, fmt.Errorf("response body: %s", result.ErrorBody))
}
