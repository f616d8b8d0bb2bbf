// Package verusrpc is a typed JSON-RPC client and bridge for verusd nodes.
//
// The client turns Go method calls into authenticated, schema-checked RPC
// calls with retry and backoff; the bridge re-exposes a node to untrusted
// clients over HTTP and WebSocket, forwarding only allowlisted methods.
//
// Basic usage:
//
//	c := verusrpc.Dial(verusrpc.NodeConfig{
//	    Host:     "127.0.0.1",
//	    Port:     27486,
//	    Username: "user",
//	    Password: "pass",
//	})
//	defer c.Close()
//
//	height, err := c.GetBlockCount(ctx)
//
// Running a bridge in front of the node:
//
//	handler := verusrpc.NewBridgeHandler(c, verusrpc.DefaultMiddleware(logger)...)
//	err := verusrpc.ServeBridge(ctx, "127.0.0.1:8000", handler)
package verusrpc

import (
	"context"
	"time"

	"github.com/veruslabs/verusrpc/bridge"
	"github.com/veruslabs/verusrpc/client"
	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/transport"
)

// Re-export core types for convenience

// NodeConfig identifies and authenticates against a node.
type NodeConfig = transport.Config

// Client is the typed RPC client.
type Client = client.Client

// ClientOption configures a Client.
type ClientOption = client.Option

// Error is the typed failure of one call.
type Error = client.Error

// ErrorKind classifies a failed call.
type ErrorKind = client.ErrorKind

// Error kinds.
const (
	InvalidCall        = client.InvalidCall
	TransportFailed    = client.TransportFailed
	CodecFailed        = client.CodecFailed
	Remote             = client.Remote
	ResultDecodeFailed = client.ResultDecodeFailed
)

// Dial creates a client for the node described by cfg.
func Dial(cfg NodeConfig, opts ...ClientOption) *Client {
	return client.New(transport.NewHTTP(cfg), opts...)
}

// Client options re-exported for convenience.
var (
	WithTimeout     = client.WithTimeout
	WithMaxAttempts = client.WithMaxAttempts
	WithBackoff     = client.WithBackoff
	WithMiddleware  = client.WithMiddleware
)

// Middleware types
type Middleware = middleware.Middleware
type CallFunc = middleware.CallFunc
type Logger = middleware.Logger
type LogField = middleware.Field
type RateLimitOption = middleware.RateLimitOption

// Middleware constructors re-exported for convenience.
var (
	Chain                = middleware.Chain
	Recover              = middleware.Recover
	Logging              = middleware.Logging
	RateLimit            = middleware.RateLimit
	RateLimitByMethod    = middleware.RateLimitByMethod
	RateLimitByClient    = middleware.RateLimitByClient
	WithRateLimitKeyFunc = middleware.WithRateLimitKeyFunc
	WithRateLimitLogger  = middleware.WithRateLimitLogger
)

// Timeout returns middleware that enforces a per-call deadline.
func Timeout(d time.Duration) Middleware {
	return middleware.Timeout(d)
}

// DefaultMiddleware returns the recommended production middleware stack.
func DefaultMiddleware(logger Logger) []Middleware {
	return middleware.DefaultStack(logger)
}

// LogF creates a new log field with the given key and value.
func LogF(key string, value any) LogField {
	return middleware.F(key, value)
}

// Bridge types

// BridgeHandler answers JSON-RPC requests on behalf of untrusted clients.
type BridgeHandler = bridge.Handler

// BridgeServer serves a bridge over HTTP and WebSocket.
type BridgeServer = bridge.Server

// BridgeOption configures a BridgeServer.
type BridgeOption = bridge.ServerOption

// NewBridgeHandler creates a bridge handler forwarding through the client.
func NewBridgeHandler(c *Client, mw ...Middleware) *BridgeHandler {
	return bridge.NewHandler(c, mw...)
}

// ServeBridge runs a bridge server on addr until ctx is canceled.
func ServeBridge(ctx context.Context, addr string, handler *BridgeHandler, opts ...BridgeOption) error {
	return bridge.NewServer(addr, handler, opts...).Serve(ctx)
}
