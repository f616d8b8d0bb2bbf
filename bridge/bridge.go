// Package bridge exposes a verusd node to untrusted clients over HTTP and
// WebSocket. It forwards only allowlisted methods, normalizes known client
// quirks, and relays the node's errors verbatim.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/veruslabs/verusrpc/client"
	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/protocol"
	"github.com/veruslabs/verusrpc/registry"
)

// Caller dispatches a validated call to the node. *client.Client satisfies it.
type Caller interface {
	CallRaw(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
}

// Handler answers one JSON-RPC request on behalf of a client. It owns the
// allowlist decision and the error mapping; transport concerns stay in Server.
type Handler struct {
	caller Caller
	call   middleware.CallFunc
}

// NewHandler creates a handler forwarding to the given caller. Middleware
// wraps the forwarding path in order.
func NewHandler(caller Caller, mw ...middleware.Middleware) *Handler {
	h := &Handler{caller: caller}
	h.call = middleware.Chain(mw...)(h.forward)
	return h
}

// Handle answers a decoded request. The returned response is always non-nil;
// failures become error envelopes echoing the request id.
func (h *Handler) Handle(ctx context.Context, req *protocol.Request) *protocol.Response {
	if req.Method == "" {
		return protocol.NewErrorResponse(req.ID,
			protocol.NewInvalidParams("Invalid method parameter"))
	}
	if _, err := registry.Lookup(req.Method); err != nil {
		return protocol.NewErrorResponse(req.ID,
			protocol.NewMethodNotFound("Method not found"))
	}

	req.Params = normalizeParams(req.Method, req.Params)

	resp, err := h.call(ctx, req)
	if err != nil {
		return protocol.NewErrorResponse(req.ID, mapError(err))
	}
	return resp
}

// forward validates against the registry and relays the call to the node.
func (h *Handler) forward(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	result, err := h.caller.CallRaw(ctx, req.Method, req.Params)
	if err != nil {
		return nil, err
	}
	return protocol.NewResponse(req.ID, result), nil
}

// mapError turns a forwarding failure into the error envelope clients see.
// The node's own rejections pass through verbatim; everything else collapses
// to a generic code so internals never leak.
func mapError(err error) *protocol.RPCError {
	var cerr *client.Error
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case client.Remote:
			return &protocol.RPCError{Code: cerr.Code, Message: cerr.Message}
		case client.InvalidCall:
			var uerr *registry.UnknownMethodError
			if errors.As(err, &uerr) {
				return protocol.NewMethodNotFound("Method not found")
			}
			return protocol.NewInvalidParams("Invalid params parameter")
		}
	}

	var rpcErr *protocol.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return protocol.NewInternalError("Internal error")
}

// normalizeParams papers over known client quirks before validation. Some
// wallet frontends send getblock a numeric height where the node wants a
// string; the node accepts the stringified form for both heights and hashes.
func normalizeParams(method string, params []json.RawMessage) []json.RawMessage {
	if method != "getblock" || len(params) == 0 {
		return params
	}
	var height int64
	if err := json.Unmarshal(params[0], &height); err != nil {
		return params
	}
	out := make([]json.RawMessage, len(params))
	copy(out, params)
	out[0] = json.RawMessage(strconv.Quote(strconv.FormatInt(height, 10)))
	return out
}
