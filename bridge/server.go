package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/protocol"
)

// Server serves the bridge over HTTP. Endpoints:
//
//	POST /        JSON-RPC call
//	GET  /health  liveness and drain state
//	GET  /ws      WebSocket upgrade, same dialect per message
type Server struct {
	addr         string
	handler      *Handler
	logger       middleware.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration
	corsConfig   *CORSConfig
	shutdown     *ShutdownManager

	mu         sync.RWMutex
	listenAddr string
	server     *http.Server

	ws *wsHub
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithReadTimeout sets the read timeout for HTTP requests.
func WithReadTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.readTimeout = d
	}
}

// WithWriteTimeout sets the write timeout for HTTP responses.
func WithWriteTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.writeTimeout = d
	}
}

// WithLogger sets the server's logger.
func WithLogger(l middleware.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// WithShutdown sets the shutdown configuration.
func WithShutdown(cfg ShutdownConfig) ServerOption {
	return func(s *Server) {
		s.shutdown = NewShutdownManager(cfg)
	}
}

// NewServer creates a bridge server on addr forwarding through handler.
func NewServer(addr string, handler *Handler, opts ...ServerOption) *Server {
	s := &Server{
		addr:         addr,
		handler:      handler,
		logger:       middleware.NopLogger{},
		readTimeout:  30 * time.Second,
		writeTimeout: 30 * time.Second,
		shutdown:     NewShutdownManager(DefaultShutdownConfig()),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.ws = newWSHub(s.handler, s.logger)
	return s
}

// Addr returns the configured address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAddr returns the actual address the server is listening on.
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listenAddr
}

// Serve accepts connections until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.mu.Lock()
	s.listenAddr = listener.Addr().String()
	s.server = &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}
	s.mu.Unlock()

	s.logger.Info("bridge listening", middleware.F("addr", s.listenAddr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		if err := s.shutdown.Shutdown(context.Background()); err != nil {
			s.logger.Warn("drain incomplete",
				middleware.F("in_flight", s.shutdown.InFlightRequests()))
		}
		s.ws.closeAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// routes builds the endpoint mux, CORS-wrapped when configured.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.ws.handleUpgrade)
	mux.HandleFunc("/", s.handleRPC)

	if s.corsConfig != nil {
		return CORSHandler(*s.corsConfig, mux)
	}
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ok"
	code := http.StatusOK
	if s.shutdown.IsDraining() {
		status = "draining"
		code = http.StatusServiceUnavailable
	}
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// handleRPC answers one JSON-RPC call over HTTP POST. Error envelopes ride
// HTTP 500, matching the daemon's own dialect.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !s.shutdown.TrackRequest() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	defer s.shutdown.CompleteRequest()

	w.Header().Set("Content-Type", "application/json")

	// Callers send single call envelopes; anything near a megabyte is abuse.
	body := http.MaxBytesReader(w, r.Body, 1<<20)

	var req protocol.Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		resp := protocol.NewErrorResponse(json.RawMessage(`null`),
			protocol.NewParseError("Parse error"))
		writeResponse(w, resp)
		return
	}

	ctx := protocol.ContextWithRequestMeta(r.Context(),
		protocol.RequestMeta{"remote_addr": r.RemoteAddr})

	resp := s.handler.Handle(ctx, &req)
	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp *protocol.Response) {
	if resp.HasError() {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// WithCORS configures CORS for the server.
func WithCORS(config CORSConfig) ServerOption {
	return func(s *Server) {
		s.corsConfig = &config
	}
}

// WithDefaultCORS enables CORS with default permissive settings.
func WithDefaultCORS() ServerOption {
	config := DefaultCORSConfig()
	return func(s *Server) {
		s.corsConfig = &config
	}
}
