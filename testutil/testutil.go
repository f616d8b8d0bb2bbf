// Package testutil provides test doubles for code built on this module: a
// scripted in-memory transport for driving the client without a network, and
// an httptest-backed mock node that speaks the daemon's JSON-RPC dialect.
//
// Example usage:
//
//	func TestMyCode(t *testing.T) {
//	    tr := testutil.NewScriptedTransport()
//	    tr.QueueResult(`12345`)
//
//	    c := client.New(tr)
//	    defer c.Close()
//
//	    height, err := c.GetBlockCount(context.Background())
//	    ...
//	}
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/veruslabs/verusrpc/protocol"
)

// step is one scripted transport exchange. Exactly one field is set.
type step struct {
	raw    []byte // verbatim response body
	result []byte // raw result, wrapped in a success envelope echoing the id
	rpcErr []byte // marshaled RPC error, wrapped in an error envelope
	err    error  // transport-level failure
}

// ScriptedTransport is a transport.Transport that replays queued responses in
// order and records every request body it was given. Safe for concurrent use.
type ScriptedTransport struct {
	mu     sync.Mutex
	steps  []step
	sent   [][]byte
	closed bool
}

// NewScriptedTransport creates an empty scripted transport. Sending with no
// queued step fails the exchange.
func NewScriptedTransport() *ScriptedTransport {
	return &ScriptedTransport{}
}

// QueueResponse queues a raw response body for the next send.
func (s *ScriptedTransport) QueueResponse(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{raw: []byte(body)})
}

// QueueResult queues a success envelope carrying the given raw JSON result.
// The envelope echoes the id of the request it answers.
func (s *ScriptedTransport) QueueResult(result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{result: []byte(result)})
}

// QueueError queues an error envelope with the given code and message.
func (s *ScriptedTransport) QueueError(code int, message string) {
	body, _ := json.Marshal(map[string]any{"code": code, "message": message})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{rpcErr: body})
}

// QueueFailure queues a transport-level failure for the next send.
func (s *ScriptedTransport) QueueFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{err: err})
}

// Send replays the next queued step. Envelope steps echo the request id so
// scripted responses always pass the client's id check.
func (s *ScriptedTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(body))
	copy(cp, body)
	s.sent = append(s.sent, cp)

	if len(s.steps) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	next := s.steps[0]
	s.steps = s.steps[1:]

	if next.err != nil {
		return nil, next.err
	}
	return renderStep(next, body)
}

// Close marks the transport closed.
func (s *ScriptedTransport) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *ScriptedTransport) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Sent returns copies of all request bodies sent so far.
func (s *ScriptedTransport) Sent() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

// SentRequests decodes all sent bodies as request envelopes.
func (s *ScriptedTransport) SentRequests() ([]*protocol.Request, error) {
	bodies := s.Sent()
	out := make([]*protocol.Request, 0, len(bodies))
	for _, b := range bodies {
		var req protocol.Request
		if err := json.Unmarshal(b, &req); err != nil {
			return nil, err
		}
		out = append(out, &req)
	}
	return out, nil
}

// renderStep turns a queued step into a response body. Envelope steps echo
// the id of the request being answered.
func renderStep(st step, reqBody []byte) ([]byte, error) {
	if st.raw != nil {
		return st.raw, nil
	}

	var req protocol.Request
	if err := json.Unmarshal(reqBody, &req); err != nil {
		return nil, fmt.Errorf("scripted transport: bad request body: %w", err)
	}

	if st.result != nil {
		return []byte(fmt.Sprintf(`{"result":%s,"error":null,"id":%s}`, st.result, req.ID)), nil
	}
	return []byte(fmt.Sprintf(`{"result":null,"error":%s,"id":%s}`, st.rpcErr, req.ID)), nil
}

// MethodHandler produces the raw result or RPC error for one mock node call.
type MethodHandler func(params []json.RawMessage) (json.RawMessage, *protocol.RPCError)

// MockNode is an httptest server that speaks the daemon's dialect: HTTP POST,
// basic auth, envelopes with both result and error keys, RPC errors carried
// on HTTP 500.
type MockNode struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]MethodHandler
	calls    []*protocol.Request

	username string
	password string
}

// NewMockNode starts a mock node accepting the given credentials. Callers own
// shutdown via Close.
func NewMockNode(username, password string) *MockNode {
	n := &MockNode{
		handlers: make(map[string]MethodHandler),
		username: username,
		password: password,
	}
	n.Server = httptest.NewServer(http.HandlerFunc(n.serve))
	return n
}

// Close shuts the underlying server down.
func (n *MockNode) Close() {
	n.Server.Close()
}

// URL returns the node's base URL.
func (n *MockNode) URL() string {
	return n.Server.URL
}

// Handle registers a handler for a method.
func (n *MockNode) Handle(method string, h MethodHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = h
}

// HandleResult registers a fixed raw result for a method.
func (n *MockNode) HandleResult(method, result string) {
	n.Handle(method, func([]json.RawMessage) (json.RawMessage, *protocol.RPCError) {
		return json.RawMessage(result), nil
	})
}

// HandleError registers a fixed RPC error for a method.
func (n *MockNode) HandleError(method string, code int, message string) {
	n.Handle(method, func([]json.RawMessage) (json.RawMessage, *protocol.RPCError) {
		return nil, &protocol.RPCError{Code: code, Message: message}
	})
}

// Calls returns the requests received so far.
func (n *MockNode) Calls() []*protocol.Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*protocol.Request, len(n.calls))
	copy(out, n.calls)
	return out
}

func (n *MockNode) serve(w http.ResponseWriter, r *http.Request) {
	if n.username != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != n.username || pass != n.password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req protocol.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeEnvelope(w, http.StatusInternalServerError, json.RawMessage(`null`),
			protocol.NewParseError(err.Error()), json.RawMessage(`null`))
		return
	}

	n.mu.Lock()
	n.calls = append(n.calls, &req)
	h, ok := n.handlers[req.Method]
	n.mu.Unlock()

	if !ok {
		writeEnvelope(w, http.StatusInternalServerError, nil,
			protocol.NewMethodNotFound("Method not found"), req.ID)
		return
	}

	result, rpcErr := h(req.Params)
	if rpcErr != nil {
		writeEnvelope(w, http.StatusInternalServerError, nil, rpcErr, req.ID)
		return
	}
	writeEnvelope(w, http.StatusOK, result, nil, req.ID)
}

func writeEnvelope(w http.ResponseWriter, status int, result json.RawMessage, rpcErr *protocol.RPCError, id json.RawMessage) {
	resp := map[string]any{
		"result": result,
		"error":  rpcErr,
		"id":     id,
	}
	body, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
