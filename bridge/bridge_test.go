package bridge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/veruslabs/verusrpc/client"
	"github.com/veruslabs/verusrpc/protocol"
	"github.com/veruslabs/verusrpc/testutil"
)

func newTestHandler(tr *testutil.ScriptedTransport) *Handler {
	return NewHandler(client.New(tr))
}

func request(method string, params ...string) *protocol.Request {
	raws := make([]json.RawMessage, len(params))
	for i, p := range params {
		raws[i] = json.RawMessage(p)
	}
	return &protocol.Request{
		JSONRPC: protocol.Version,
		ID:      json.RawMessage(`1`),
		Method:  method,
		Params:  raws,
	}
}

func TestHandler(t *testing.T) {
	t.Run("forwards allowlisted calls and relays the result", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()
		tr.QueueResult(`12345`)

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request("getblockcount"))

		if resp.HasError() {
			t.Fatalf("error = %+v", resp.Error)
		}
		if string(resp.Result) != "12345" {
			t.Errorf("result = %s", resp.Result)
		}
		if string(resp.ID) != "1" {
			t.Errorf("id = %s", resp.ID)
		}
	})

	t.Run("unknown method is rejected without reaching the node", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request("dumpprivkey", `"RAddr"`))

		if !resp.HasError() {
			t.Fatal("expected error")
		}
		if resp.Error.Code != protocol.CodeMethodNotFound {
			t.Errorf("code = %d", resp.Error.Code)
		}
		if resp.Error.Message != "Method not found" {
			t.Errorf("message = %q", resp.Error.Message)
		}
		if len(tr.Sent()) != 0 {
			t.Error("expected no node traffic")
		}
	})

	t.Run("missing method field is an invalid params error", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request(""))

		if !resp.HasError() || resp.Error.Code != protocol.CodeInvalidParams {
			t.Fatalf("error = %+v", resp.Error)
		}
		if resp.Error.Message != "Invalid method parameter" {
			t.Errorf("message = %q", resp.Error.Message)
		}
	})

	t.Run("schema violations map to invalid params", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request("getblockhash", `"not-a-number"`))

		if !resp.HasError() || resp.Error.Code != protocol.CodeInvalidParams {
			t.Fatalf("error = %+v", resp.Error)
		}
		if resp.Error.Message != "Invalid params parameter" {
			t.Errorf("message = %q", resp.Error.Message)
		}
		if len(tr.Sent()) != 0 {
			t.Error("expected no node traffic")
		}
	})

	t.Run("node rejections pass through verbatim", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()
		tr.QueueError(-5, "Block not found")

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request("getblock", `"00aa"`))

		if !resp.HasError() {
			t.Fatal("expected error")
		}
		if resp.Error.Code != -5 || resp.Error.Message != "Block not found" {
			t.Errorf("error = %+v", resp.Error)
		}
	})

	t.Run("transport failures collapse to internal error", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()

		h := NewHandler(client.New(tr, client.WithMaxAttempts(1)))
		resp := h.Handle(context.Background(), request("getblockcount"))

		if !resp.HasError() || resp.Error.Code != protocol.CodeInternalError {
			t.Fatalf("error = %+v", resp.Error)
		}
		if resp.Error.Message != "Internal error" {
			t.Errorf("message = %q", resp.Error.Message)
		}
	})

	t.Run("getblock numeric height is stringified", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()
		tr.QueueResult(`{"height":2500000}`)

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(), request("getblock", `2500000`))

		if resp.HasError() {
			t.Fatalf("error = %+v", resp.Error)
		}

		reqs, err := tr.SentRequests()
		if err != nil {
			t.Fatalf("SentRequests: %v", err)
		}
		if got := string(reqs[0].Params[0]); got != `"2500000"` {
			t.Errorf("param = %s", got)
		}
	})

	t.Run("getblock hash param is untouched", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()
		tr.QueueResult(`{}`)

		h := newTestHandler(tr)
		h.Handle(context.Background(), request("getblock", `"00aa"`, `true`))

		reqs, err := tr.SentRequests()
		if err != nil {
			t.Fatalf("SentRequests: %v", err)
		}
		if got := string(reqs[0].Params[0]); got != `"00aa"` {
			t.Errorf("param = %s", got)
		}
	})

	t.Run("consent flag is enforced for funds-moving methods", func(t *testing.T) {
		tr := testutil.NewScriptedTransport()

		h := newTestHandler(tr)
		resp := h.Handle(context.Background(),
			request("sendcurrency", `"alice@"`, `[]`, `1`, `0.0001`, `false`))

		if !resp.HasError() || resp.Error.Code != protocol.CodeInvalidParams {
			t.Fatalf("error = %+v", resp.Error)
		}
		if len(tr.Sent()) != 0 {
			t.Error("expected no node traffic")
		}
	})
}
