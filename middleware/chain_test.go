package middleware

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/veruslabs/verusrpc/protocol"
)

func okCall(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return protocol.NewResponse(req.ID, json.RawMessage(`1`)), nil
}

func TestChain(t *testing.T) {
	t.Run("executes middleware in order", func(t *testing.T) {
		var order []string
		tag := func(name string) Middleware {
			return func(next CallFunc) CallFunc {
				return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		call := Chain(tag("first"), tag("second"), tag("third"))(okCall)
		_, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(order) != len(want) {
			t.Fatalf("order = %v", order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
			}
		}
	})

	t.Run("empty chain passes through", func(t *testing.T) {
		call := Chain()(okCall)
		resp, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Result) != "1" {
			t.Errorf("result = %s", resp.Result)
		}
	})

	t.Run("fluent chain appends", func(t *testing.T) {
		var count int
		inc := func(next CallFunc) CallFunc {
			return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
				count++
				return next(ctx, req)
			}
		}

		call := Use(inc).Append(inc, inc).Then(okCall)
		if _, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 3 {
			t.Errorf("count = %d, want 3", count)
		}
	})
}

func TestRecover(t *testing.T) {
	t.Run("converts panic to internal error", func(t *testing.T) {
		call := Recover()(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			panic("boom")
		})

		_, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil))
		rpcErr, ok := err.(*protocol.RPCError)
		if !ok {
			t.Fatalf("expected *protocol.RPCError, got %v", err)
		}
		if rpcErr.Code != protocol.CodeInternalError {
			t.Errorf("code = %d", rpcErr.Code)
		}
	})
}

func TestTimeout(t *testing.T) {
	t.Run("cancels slow call", func(t *testing.T) {
		call := Timeout(10)(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		_, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil))
		if err != context.DeadlineExceeded {
			t.Errorf("err = %v, want deadline exceeded", err)
		}
	})
}
