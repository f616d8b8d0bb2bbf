// Package transport performs the raw request/response exchange with the
// node's RPC endpoint.
package transport

import (
	"context"
	"fmt"
)

// Transport sends one encoded request envelope and returns the raw response
// bytes. Implementations must be safe for concurrent use; each call is
// independent and no call depends on ordering relative to another.
type Transport interface {
	// Send posts the request body and returns the response body. Failures
	// are reported as *Error.
	Send(ctx context.Context, body []byte) ([]byte, error)

	// Close releases any pooled connections.
	Close() error
}

// ErrorKind classifies a transport failure.
type ErrorKind int

const (
	// ConnectionFailed covers refused, reset and unreachable connections.
	ConnectionFailed ErrorKind = iota + 1
	// Timeout indicates the per-call deadline elapsed.
	Timeout
	// HTTPStatus indicates the node answered with a non-2xx status.
	HTTPStatus
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "connection failed"
	case Timeout:
		return "timeout"
	case HTTPStatus:
		return "http status"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure.
type Error struct {
	Kind ErrorKind

	// Status is the HTTP status code, set when Kind is HTTPStatus.
	Status int

	// Body is the response body of a non-2xx answer. Bitcoin-family daemons
	// return RPC errors with status 500 and a valid error envelope, so the
	// body is preserved for the caller to inspect.
	Body []byte

	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case HTTPStatus:
		return fmt.Sprintf("transport: http status %d", e.Status)
	default:
		if e.err != nil {
			return fmt.Sprintf("transport: %s: %v", e.Kind, e.err)
		}
		return fmt.Sprintf("transport: %s", e.Kind)
	}
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is implements errors.Is comparison by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Transient reports whether the failure is worth retrying: connection
// failures, timeouts and 5xx statuses are; 4xx statuses are permanent.
func (e *Error) Transient() bool {
	switch e.Kind {
	case ConnectionFailed, Timeout:
		return true
	case HTTPStatus:
		return e.Status >= 500
	default:
		return false
	}
}
