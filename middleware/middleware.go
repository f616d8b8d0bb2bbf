// Package middleware provides interceptors for RPC calls.
//
// A Middleware wraps a CallFunc, the function that carries a request
// envelope to the node and returns the response envelope. The client engine
// and the bridge both accept middleware chains, so the same logging,
// telemetry and rate limiting apply on either side.
package middleware

import (
	"context"

	"github.com/veruslabs/verusrpc/protocol"
)

// CallFunc carries one request envelope and returns the response envelope.
type CallFunc func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// Middleware wraps a call with additional behavior.
type Middleware func(next CallFunc) CallFunc

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final call.
func Chain(middlewares ...Middleware) Middleware {
	return func(final CallFunc) CallFunc {
		// Apply middleware in reverse order so they execute in order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// MiddlewareChain provides a fluent API for building middleware chains.
type MiddlewareChain struct {
	middlewares []Middleware
}

// Use creates a new middleware chain starting with the given middleware.
func Use(middlewares ...Middleware) *MiddlewareChain {
	return &MiddlewareChain{
		middlewares: middlewares,
	}
}

// Append adds middleware to the chain and returns the updated chain.
func (c *MiddlewareChain) Append(middlewares ...Middleware) *MiddlewareChain {
	c.middlewares = append(c.middlewares, middlewares...)
	return c
}

// Then applies the middleware chain to a call function.
func (c *MiddlewareChain) Then(call CallFunc) CallFunc {
	return Chain(c.middlewares...)(call)
}

// DefaultStack returns the recommended production middleware stack:
// panic recovery and logging.
func DefaultStack(logger Logger) []Middleware {
	return []Middleware{
		Recover(),
		Logging(logger),
	}
}
