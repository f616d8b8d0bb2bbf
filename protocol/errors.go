package protocol

import "fmt"

// Standard JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Daemon RPC error codes, as defined by the bitcoin-family error table
// verusd inherits.
const (
	CodeMisc                    = -1
	CodeType                    = -3
	CodeWallet                  = -4
	CodeInvalidAddressOrKey     = -5
	CodeWalletInsufficientFunds = -6
	CodeOutOfMemory             = -7
	CodeInvalidParameter        = -8
	CodeClientNotConnected      = -9
	CodeClientInInitialDownload = -10
	CodeWalletUnlockNeeded      = -13
	CodeDatabase                = -20
	CodeDeserialization         = -22
	CodeVerifyError             = -25
	CodeVerifyRejected          = -26
	CodeVerifyAlreadyInChain    = -27
	CodeInWarmup                = -28
)

// RPCError is the error object of a JSON-RPC response envelope. It is the
// node's own rejection of a call; this package carries it verbatim and never
// interprets the code.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Is implements errors.Is comparison by error code.
func (e *RPCError) Is(target error) bool {
	t, ok := target.(*RPCError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewMethodNotFound creates a method not found error (-32601).
func NewMethodNotFound(msg string) *RPCError {
	return &RPCError{Code: CodeMethodNotFound, Message: msg}
}

// NewInvalidParams creates an invalid params error (-32602).
func NewInvalidParams(msg string) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: msg}
}

// NewInternalError creates an internal error (-32603).
func NewInternalError(msg string) *RPCError {
	return &RPCError{Code: CodeInternalError, Message: msg}
}

// NewParseError creates a parse error (-32700).
func NewParseError(msg string) *RPCError {
	return &RPCError{Code: CodeParseError, Message: msg}
}

// CodecErrorKind distinguishes the ways a response envelope can fail to
// decode.
type CodecErrorKind int

const (
	// CodecMalformed indicates the payload is not valid JSON or violates the
	// result/error exclusivity invariant.
	CodecMalformed CodecErrorKind = iota + 1
	// CodecIDMismatch indicates the response id does not match the id of the
	// originating request.
	CodecIDMismatch
)

func (k CodecErrorKind) String() string {
	switch k {
	case CodecMalformed:
		return "malformed"
	case CodecIDMismatch:
		return "id mismatch"
	default:
		return "unknown"
	}
}

// CodecError is returned when a response envelope cannot be decoded. It
// indicates protocol desync rather than a transient failure and is never
// retried.
type CodecError struct {
	Kind CodecErrorKind
	msg  string
	err  error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("codec: %s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("codec: %s", e.Kind)
}

// Unwrap returns the underlying error, if any.
func (e *CodecError) Unwrap() error {
	return e.err
}

// Is implements errors.Is comparison by kind.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newMalformed(msg string, err error) *CodecError {
	return &CodecError{Kind: CodecMalformed, msg: msg, err: err}
}

func newIDMismatch(msg string) *CodecError {
	return &CodecError{Kind: CodecIDMismatch, msg: msg}
}
