package api

import (
	"errors"
	"fmt"
)

// Kind tells apart a request the backend rejected from one that never completed
type Kind string

const (
	KindHTTP    Kind = "http"
	KindNetwork Kind = "network"
)

var (
	// ErrHTTP matches any *RequestError for a non-2xx response
	ErrHTTP = errors.New("http error")
	// ErrNetwork matches any *RequestError for a request without a response
	ErrNetwork = errors.New("network error")
	// ErrInvalidResponse is returned when a 2xx body cannot be decoded or fails its schema
	ErrInvalidResponse = errors.New("invalid response")
)

// RequestError is the single error type callers see for failed requests.
// Kind and Message carry the distinction between HTTP and network failures.
type RequestError struct {
	Kind    Kind
	Method  string
	URL     string
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrNetwork:
		return e.Kind == KindNetwork
	}
	return false
}

// NotFound reports whether the backend answered 404
func (e *RequestError) NotFound() bool {
	return e.Kind == KindHTTP && e.Status == 404
}

func httpError(method, url string, status int, msg string) *RequestError {
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &RequestError{
		Kind:    KindHTTP,
		Method:  method,
		URL:     url,
		Status:  status,
		Message: msg,
	}
}

func networkError(method, url string, err error) *RequestError {
	return &RequestError{
		Kind:    KindNetwork,
		Method:  method,
		URL:     url,
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}
