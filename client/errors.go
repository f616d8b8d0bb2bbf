package client

import "fmt"

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	// InvalidCall is caller-side misuse: unknown method or params that do
	// not match the method's schema. Detected before any network I/O.
	InvalidCall ErrorKind = iota + 1
	// TransportFailed is a transport-level failure that survived the retry
	// policy (or was classified permanent). The underlying *transport.Error
	// is available via errors.As.
	TransportFailed
	// CodecFailed is a malformed or mismatched response envelope. Indicates
	// protocol desync; never retried.
	CodecFailed
	// Remote is the node's explicit rejection of the call. Code and Message
	// carry the daemon's error verbatim.
	Remote
	// ResultDecodeFailed means the node's result did not match the expected
	// shape; signals a registry/version mismatch between client and node.
	ResultDecodeFailed
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCall:
		return "invalid call"
	case TransportFailed:
		return "transport failed"
	case CodecFailed:
		return "codec failed"
	case Remote:
		return "remote error"
	case ResultDecodeFailed:
		return "result decode failed"
	default:
		return "unknown"
	}
}

// Error is the typed failure of one call. A call is all-or-nothing: no
// partial results accompany an Error.
type Error struct {
	Kind   ErrorKind
	Method string

	// Code and Message are set when Kind is Remote.
	Code    int
	Message string

	// Attempts is the number of transport attempts performed, when any
	// dispatch happened.
	Attempts int

	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case Remote:
		return fmt.Sprintf("%s: remote error %d: %s", e.Method, e.Code, e.Message)
	default:
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Method, e.Kind, e.err)
		}
		return fmt.Sprintf("%s: %s", e.Method, e.Kind)
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
