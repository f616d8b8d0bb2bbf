// Command verusbridged runs the RPC bridge: a hardened HTTP/WebSocket front
// for a verusd node that forwards only allowlisted, schema-checked calls.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/veruslabs/verusrpc/bridge"
	"github.com/veruslabs/verusrpc/client"
	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/transport"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("bridge exited", middleware.F("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *Config, logger *zapLogger) error {
	tr := transport.NewHTTP(transport.Config{
		Host:     cfg.NodeHost,
		Port:     cfg.NodePort,
		TLS:      cfg.NodeTLS,
		Username: cfg.NodeUser,
		Password: cfg.NodePassword,
		Timeout:  cfg.NodeTimeout,
	})

	c := client.New(tr,
		client.WithTimeout(cfg.CallTimeout),
		client.WithMaxAttempts(cfg.MaxAttempts),
	)
	defer c.Close()

	mw := []middleware.Middleware{
		middleware.Recover(),
		middleware.Logging(logger),
	}
	if cfg.RateLimit > 0 {
		mw = append(mw, middleware.RateLimitByClient(cfg.RateLimit, cfg.RateBurst))
	}

	handler := bridge.NewHandler(c, mw...)

	opts := []bridge.ServerOption{
		bridge.WithLogger(logger),
		bridge.WithShutdown(bridge.ShutdownConfig{
			Timeout: cfg.ShutdownTimeout,
			OnDrainStart: func() {
				logger.Info("draining connections")
			},
		}),
	}
	if cfg.CORS {
		opts = append(opts, bridge.WithDefaultCORS())
	}

	srv := bridge.NewServer(cfg.ListenAddr, handler, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting bridge",
		middleware.F("listen", cfg.ListenAddr),
		middleware.F("node", cfg.NodeHost),
	)

	if err := srv.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("bridge stopped")
	return nil
}
