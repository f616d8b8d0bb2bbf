package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEncodeRequest(t *testing.T) {
	t.Run("encodes envelope with positional params", func(t *testing.T) {
		req := NewRequest(42, "getblock", []json.RawMessage{
			json.RawMessage(`"000000abc"`),
			json.RawMessage(`true`),
		})

		data, err := EncodeRequest(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON produced: %v", err)
		}

		if string(decoded["jsonrpc"]) != `"1.0"` {
			t.Errorf("jsonrpc = %s, want \"1.0\"", decoded["jsonrpc"])
		}
		if string(decoded["id"]) != "42" {
			t.Errorf("id = %s, want 42", decoded["id"])
		}
		if string(decoded["method"]) != `"getblock"` {
			t.Errorf("method = %s, want \"getblock\"", decoded["method"])
		}
		if string(decoded["params"]) != `["000000abc",true]` {
			t.Errorf("params = %s", decoded["params"])
		}
	})

	t.Run("empty params encode as empty array", func(t *testing.T) {
		data, err := EncodeRequest(NewRequest(1, "getblockcount", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON produced: %v", err)
		}
		if string(decoded["params"]) != `[]` {
			t.Errorf("params = %s, want []", decoded["params"])
		}
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Run("round-trips a result envelope", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"result":12345,"error":null,"id":7}`), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.HasResult() {
			t.Fatal("expected result to be present")
		}
		if resp.HasError() {
			t.Fatal("expected no error member")
		}
		if string(resp.Result) != "12345" {
			t.Errorf("result = %s, want 12345", resp.Result)
		}
	})

	t.Run("carries the error member verbatim", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"result":null,"error":{"code":-32601,"message":"Method not found"},"id":3}`), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.HasError() {
			t.Fatal("expected error member")
		}
		if resp.Error.Code != CodeMethodNotFound {
			t.Errorf("code = %d, want %d", resp.Error.Code, CodeMethodNotFound)
		}
		if resp.Error.Message != "Method not found" {
			t.Errorf("message = %q", resp.Error.Message)
		}
	})

	t.Run("rejects invalid JSON as malformed", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`{"result":`), 1)
		assertCodecKind(t, err, CodecMalformed)
	})

	t.Run("rejects result and error both present", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`{"result":1,"error":{"code":-1,"message":"x"},"id":1}`), 1)
		assertCodecKind(t, err, CodecMalformed)
	})

	t.Run("rejects mismatched id", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`{"result":1,"error":null,"id":2}`), 1)
		assertCodecKind(t, err, CodecIDMismatch)
	})

	t.Run("rejects null id", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`{"result":1,"error":null,"id":null}`), 1)
		assertCodecKind(t, err, CodecIDMismatch)
	})

	t.Run("rejects string id", func(t *testing.T) {
		_, err := DecodeResponse([]byte(`{"result":1,"error":null,"id":"1"}`), 1)
		assertCodecKind(t, err, CodecIDMismatch)
	})

	t.Run("null result with null error is a null result", func(t *testing.T) {
		resp, err := DecodeResponse([]byte(`{"result":null,"error":null,"id":5}`), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.HasResult() || resp.HasError() {
			t.Error("expected neither member to be present")
		}
	})
}

func TestRPCError(t *testing.T) {
	t.Run("errors.Is matches by code", func(t *testing.T) {
		err := &RPCError{Code: CodeInWarmup, Message: "Loading block index..."}
		if !errors.Is(err, &RPCError{Code: CodeInWarmup}) {
			t.Error("expected match by code")
		}
		if errors.Is(err, &RPCError{Code: CodeMisc}) {
			t.Error("unexpected match for different code")
		}
	})
}

func assertCodecKind(t *testing.T, err error, want CodecErrorKind) {
	t.Helper()
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CodecError, got %v", err)
	}
	if ce.Kind != want {
		t.Fatalf("kind = %s, want %s", ce.Kind, want)
	}
}
