package middleware

import (
	"context"
	"time"

	"github.com/veruslabs/verusrpc/protocol"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs call details.
// Successful calls are logged at info level, failures at error level.
func Logging(logger Logger) Middleware {
	return func(next CallFunc) CallFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			fields := []Field{
				F("method", req.Method),
				F("id", string(req.ID)),
				F("duration", time.Since(start)),
			}
			if client := protocol.GetRequestMeta(ctx, "remote_addr"); client != "" {
				fields = append(fields, F("client", client))
			}

			switch {
			case err != nil:
				logger.Error("call failed", append(fields, F("error", err.Error()))...)
			case resp != nil && resp.HasError():
				logger.Warn("call rejected by node",
					append(fields, F("code", resp.Error.Code), F("message", resp.Error.Message))...)
			default:
				logger.Info("call completed", fields...)
			}

			return resp, err
		}
	}
}

// NopLogger is a logger that discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
