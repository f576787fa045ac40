package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a report run can end with.
// The kind decides the one-line message the CLI prints before exiting.
type ErrorKind int

const (
	// KindUnknown is the zero value and is never produced on purpose.
	KindUnknown ErrorKind = iota

	// KindTimeout indicates the request did not complete within the configured timeout.
	KindTimeout

	// KindConnectionFailed indicates a transport failure (DNS, refused, reset, TLS).
	KindConnectionFailed

	// KindAuthFailed indicates the cluster rejected the credentials.
	// HTTP equivalent: 401 Unauthorized
	KindAuthFailed

	// KindClientError indicates any 4xx response other than 401.
	KindClientError

	// KindServerError indicates a 5xx response.
	KindServerError

	// KindInvalidResponse indicates a response that could not be interpreted:
	// a non-JSON success body or an unexpected final status (1xx/3xx).
	KindInvalidResponse

	// KindUnknownEnum indicates an enumerated value with no display mapping.
	KindUnknownEnum

	// KindMissingField indicates a required field was absent from an API document.
	KindMissingField

	// KindCanceled indicates the request was abandoned by the caller: a sibling
	// fetch failed or the run was interrupted.
	KindCanceled
)

// Sentinel errors, one per kind. An *Error matches the sentinel of its kind
// with errors.Is, so callers can branch without a type assertion.
var (
	ErrTimeout          = errors.New("request timed out")
	ErrConnectionFailed = errors.New("connection failed")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrClientError      = errors.New("client error")
	ErrServerError      = errors.New("server error")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrUnknownEnum      = errors.New("unknown enumerated value")
	ErrMissingField     = errors.New("missing required field")
	ErrCanceled         = errors.New("request canceled")
)

var kindSentinels = map[ErrorKind]error{
	KindTimeout:          ErrTimeout,
	KindConnectionFailed: ErrConnectionFailed,
	KindAuthFailed:       ErrAuthFailed,
	KindClientError:      ErrClientError,
	KindServerError:      ErrServerError,
	KindInvalidResponse:  ErrInvalidResponse,
	KindUnknownEnum:      ErrUnknownEnum,
	KindMissingField:     ErrMissingField,
	KindCanceled:         ErrCanceled,
}

var kindNames = map[ErrorKind]string{
	KindUnknown:          "Unknown",
	KindTimeout:          "Timeout",
	KindConnectionFailed: "ConnectionFailed",
	KindAuthFailed:       "AuthFailed",
	KindClientError:      "ClientError",
	KindServerError:      "ServerError",
	KindInvalidResponse:  "InvalidResponse",
	KindUnknownEnum:      "UnknownEnum",
	KindMissingField:     "MissingField",
	KindCanceled:         "Canceled",
}

// String returns the kind name, e.g. "AuthFailed".
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the classified failure returned by the API client and the normalizer.
type Error struct {
	// Kind is the failure classification.
	Kind ErrorKind

	// Resource is the API resource being fetched (e.g. "cluster"), empty for normalizer errors.
	Resource string

	// StatusCode is the HTTP status for ClientError, ServerError and AuthFailed.
	StatusCode int

	// Field names the missing field for MissingField.
	Field string

	// Value holds the offending value for UnknownEnum.
	Value string

	// Message is an optional server-supplied explanation.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindTimeout:
		msg = "request timed out"
	case KindConnectionFailed:
		msg = "connection failed"
	case KindAuthFailed:
		msg = "authentication failed (HTTP 401)"
	case KindClientError:
		msg = fmt.Sprintf("client error (HTTP %d)", e.StatusCode)
	case KindServerError:
		msg = fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
	case KindInvalidResponse:
		msg = "invalid response"
		if e.StatusCode != 0 {
			msg = fmt.Sprintf("invalid response (HTTP %d)", e.StatusCode)
		}
	case KindUnknownEnum:
		msg = fmt.Sprintf("unknown value %q", e.Value)
		if e.Field != "" {
			msg = fmt.Sprintf("unknown %s value %q", e.Field, e.Value)
		}
	case KindMissingField:
		msg = fmt.Sprintf("missing required field %q", e.Field)
	case KindCanceled:
		msg = "request canceled"
	default:
		msg = "unclassified error"
	}

	if e.Resource != "" {
		msg = fmt.Sprintf("%s: %s", e.Resource, msg)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// NewMissingFieldError returns a MissingField error for the named field.
func NewMissingFieldError(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

// NewUnknownEnumError returns an UnknownEnum error for value found in field.
func NewUnknownEnumError(field, value string) *Error {
	return &Error{Kind: KindUnknownEnum, Field: field, Value: value}
}
