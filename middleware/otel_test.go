package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/veruslabs/verusrpc/protocol"
)

func TestOTelMiddleware(t *testing.T) {
	t.Run("creates client span for call", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		mw := OTel(WithTracerProvider(tp))
		call := mw(okCall)

		_, err := call(context.Background(), protocol.NewRequest(1, "getblockcount", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Name != "rpc.getblockcount" {
			t.Errorf("span name = %q", spans[0].Name)
		}
	})

	t.Run("records error on failure", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		mw := OTel(WithTracerProvider(tp))
		call := mw(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return nil, errors.New("dial failed")
		})

		_, err := call(context.Background(), protocol.NewRequest(1, "getinfo", nil))
		if err == nil {
			t.Fatal("expected error")
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if len(spans[0].Events) == 0 {
			t.Error("expected error event on span")
		}
	})

	t.Run("marks node rejection on span", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		mw := OTel(WithTracerProvider(tp))
		call := mw(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return protocol.NewErrorResponse(req.ID, protocol.NewMethodNotFound("Method not found")), nil
		})

		_, err := call(context.Background(), protocol.NewRequest(1, "bogus", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
	})

	t.Run("skips configured methods", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		defer tp.Shutdown(context.Background())

		mw := OTel(WithTracerProvider(tp), WithOTelSkipMethods("help"))
		call := mw(okCall)

		_, _ = call(context.Background(), protocol.NewRequest(1, "help", []json.RawMessage{}))

		if len(exporter.GetSpans()) != 0 {
			t.Error("expected no spans for skipped method")
		}
	})

	t.Run("records metrics", func(t *testing.T) {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer mp.Shutdown(context.Background())

		mw := OTel(WithMeterProvider(mp))
		call := mw(okCall)

		_, err := call(context.Background(), protocol.NewRequest(1, "getblockcount", nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
