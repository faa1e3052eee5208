package services

import "fmt"

// ErrorKind classifies failures from the external map provider.
type ErrorKind string

const (
	KindNetwork           ErrorKind = "network"
	KindAuth              ErrorKind = "auth"
	KindQuota             ErrorKind = "quota"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindTimeout           ErrorKind = "timeout"
	KindNoRoute           ErrorKind = "no_route"
)

// ApiError is the classified failure returned by the places and directions
// clients. Only those clients and their immediate callers ever see it; the
// public search and route operations degrade instead of propagating.
type ApiError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func newApiError(kind ErrorKind, message string, err error) *ApiError {
	return &ApiError{Kind: kind, Message: message, Err: err}
}
