package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures so operators can tell a transport
// outage from a response-shape change.
type ErrorKind string

const (
	ErrKindNetwork       ErrorKind = "network"
	ErrKindHTTPStatus    ErrorKind = "http_status"
	ErrKindParse         ErrorKind = "parse"
	ErrKindSchema        ErrorKind = "schema"
	ErrKindEmptyResponse ErrorKind = "empty_response"
)

// ProviderError is returned by Provider implementations for every failed
// call. StatusCode is set only for ErrKindHTTPStatus.
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm: %s (http %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm: %s: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// AsProviderError unwraps err into a *ProviderError when there is one in the
// chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
