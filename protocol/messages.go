package protocol

import (
	"encoding/json"
	"strconv"
)

// Version is the JSON-RPC version string emitted on requests. Bitcoin-family
// daemons (including verusd) speak the 1.0 dialect: positional params, integer
// ids, and both "result" and "error" keys present on every response.
const Version = "1.0"

// Request represents a JSON-RPC request envelope.
type Request struct {
	JSONRPC string            `json:"jsonrpc,omitempty"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest creates a request envelope with the given numeric id. The id is
// supplied by the caller; this package never generates ids.
func NewRequest(id int64, method string, params []json.RawMessage) *Request {
	if params == nil {
		params = []json.RawMessage{}
	}
	return &Request{
		JSONRPC: Version,
		ID:      json.RawMessage(strconv.FormatInt(id, 10)),
		Method:  method,
		Params:  params,
	}
}

// Response represents a JSON-RPC response envelope.
type Response struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// HasError reports whether the envelope carries a non-null error member.
func (r *Response) HasError() bool {
	return r.Error != nil
}

// HasResult reports whether the envelope carries a non-null result member.
func (r *Response) HasResult() bool {
	return len(r.Result) > 0 && string(r.Result) != "null"
}

// NewResponse creates a successful response envelope echoing the given id.
func NewResponse(id json.RawMessage, result json.RawMessage) *Response {
	return &Response{ID: id, Result: result}
}

// NewErrorResponse creates an error response envelope echoing the given id.
func NewErrorResponse(id json.RawMessage, err *RPCError) *Response {
	return &Response{ID: id, Error: err}
}
