// Package client implements the RPC call engine: it turns a typed method
// invocation into an authenticated request to the node and the raw response
// back into a typed result or a typed error.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/protocol"
	"github.com/veruslabs/verusrpc/registry"
	"github.com/veruslabs/verusrpc/transport"
)

// Client is an RPC client bound to one node. It is safe for concurrent use;
// in-flight calls share nothing but the read-only method registry and the
// request-id counter.
type Client struct {
	transport transport.Transport
	opts      clientOptions
	call      middleware.CallFunc

	requestID atomic.Int64
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	timeout     time.Duration
	maxAttempts int
	backoffBase time.Duration
	backoffMax  time.Duration
	middlewares []middleware.Middleware
}

// WithTimeout bounds each call end to end, across all retry attempts.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithMaxAttempts sets the total number of transport attempts per call,
// including the first. Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(o *clientOptions) {
		if n < 1 {
			n = 1
		}
		o.maxAttempts = n
	}
}

// WithBackoff sets the base delay before the first retry and the cap the
// exponential backoff grows toward.
func WithBackoff(base, max time.Duration) Option {
	return func(o *clientOptions) {
		o.backoffBase = base
		o.backoffMax = max
	}
}

// WithMiddleware wraps the dispatch path with the given middleware, applied
// in order around transport send, decode and retry.
func WithMiddleware(mw ...middleware.Middleware) Option {
	return func(o *clientOptions) {
		o.middlewares = append(o.middlewares, mw...)
	}
}

// New creates a client over the given transport.
func New(t transport.Transport, opts ...Option) *Client {
	options := clientOptions{
		timeout:     30 * time.Second,
		maxAttempts: 3,
		backoffBase: 250 * time.Millisecond,
		backoffMax:  5 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	c := &Client{
		transport: t,
		opts:      options,
	}
	c.call = middleware.Chain(options.middlewares...)(c.dispatch)

	return c
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Call invokes a registered node method with positional params and returns
// the raw result. Params are marshaled in order; json.RawMessage values pass
// through untouched.
//
// The method is validated against the registry before any network I/O.
// Failures are reported as *Error.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	raws, err := encodeParams(params)
	if err != nil {
		return nil, &Error{Kind: InvalidCall, Method: method, err: err}
	}
	return c.CallRaw(ctx, method, raws)
}

// CallRaw is Call with pre-encoded positional params.
func (c *Client) CallRaw(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	desc, err := registry.Lookup(method)
	if err != nil {
		return nil, &Error{Kind: InvalidCall, Method: method, err: err}
	}
	if err := desc.Validate(params); err != nil {
		return nil, &Error{Kind: InvalidCall, Method: method, err: err}
	}

	id := c.requestID.Add(1)
	req := protocol.NewRequest(id, method, params)

	if c.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	resp, err := c.call(ctx, req)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			return nil, cerr
		}
		return nil, &Error{Kind: TransportFailed, Method: method, err: err}
	}

	if resp.HasError() {
		return nil, &Error{
			Kind:    Remote,
			Method:  method,
			Code:    resp.Error.Code,
			Message: resp.Error.Message,
			err:     resp.Error,
		}
	}

	return resp.Result, nil
}

// CallInto invokes a node method and decodes the result into T.
func CallInto[T any](ctx context.Context, c *Client, method string, params ...any) (T, error) {
	var out T
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Kind: ResultDecodeFailed, Method: method, err: err}
	}
	return out, nil
}

// callState tracks one call's progress through dispatch. Terminal states are
// succeeded and failed; a call never re-enters dispatch after decoding.
type callState int

const (
	stateDispatching callState = iota
	stateRetryWait
	stateDecoding
	stateSucceeded
	stateFailed
)

// dispatch drives the per-call state machine:
// Dispatching -> (RetryWait -> Dispatching)* -> Decoding, then Succeeded or
// Failed.
// Transient transport failures are retried with exponential backoff up to
// the configured attempt count; everything else fails the call immediately.
func (c *Client) dispatch(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	id, err := strconv.ParseInt(string(req.ID), 10, 64)
	if err != nil {
		return nil, &Error{Kind: CodecFailed, Method: req.Method, err: err}
	}

	body, err := protocol.EncodeRequest(req)
	if err != nil {
		return nil, &Error{Kind: CodecFailed, Method: req.Method, err: err}
	}

	var (
		state   = stateDispatching
		attempt int
		raw     []byte
		resp    *protocol.Response
		failure error
		kind    = TransportFailed
	)

	for {
		switch state {
		case stateDispatching:
			attempt++
			b, serr := c.transport.Send(ctx, body)
			if serr == nil {
				raw = b
				state = stateDecoding
				break
			}

			var terr *transport.Error
			if !errors.As(serr, &terr) {
				failure = serr
				state = stateFailed
				break
			}

			// Daemons in the bitcoin family answer RPC errors with HTTP
			// 500 and a valid error envelope; surface those instead of
			// retrying the status.
			if terr.Kind == transport.HTTPStatus && len(terr.Body) > 0 {
				if r, derr := protocol.DecodeResponse(terr.Body, id); derr == nil && r.HasError() {
					resp = r
					state = stateSucceeded
					break
				}
			}

			failure = terr
			if terr.Transient() && attempt < c.opts.maxAttempts {
				state = stateRetryWait
			} else {
				state = stateFailed
			}

		case stateRetryWait:
			if werr := sleep(ctx, c.backoff(attempt)); werr != nil {
				failure = werr
				state = stateFailed
			} else {
				state = stateDispatching
			}

		case stateDecoding:
			r, derr := protocol.DecodeResponse(raw, id)
			if derr != nil {
				failure = derr
				kind = CodecFailed
				state = stateFailed
			} else {
				resp = r
				state = stateSucceeded
			}

		case stateSucceeded:
			return resp, nil

		case stateFailed:
			return nil, &Error{Kind: kind, Method: req.Method, Attempts: attempt, err: failure}
		}
	}
}

// backoff returns the delay before the next attempt: base doubled per
// completed attempt, capped at the configured maximum.
func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.backoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= c.opts.backoffMax {
			return c.opts.backoffMax
		}
	}
	if c.opts.backoffMax > 0 && d > c.opts.backoffMax {
		d = c.opts.backoffMax
	}
	return d
}

// sleep waits for d or until ctx is done, whichever comes first. An
// abandoned call never leaves a timer running.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// encodeParams marshals positional params in order.
func encodeParams(params []any) ([]json.RawMessage, error) {
	if len(params) == 0 {
		return nil, nil
	}
	out := make([]json.RawMessage, len(params))
	for i, p := range params {
		if raw, ok := p.(json.RawMessage); ok {
			out[i] = raw
			continue
		}
		data, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}
