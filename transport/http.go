package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Config holds the connection parameters for a node. It is immutable after
// construction; the values come from an external config loader.
type Config struct {
	Host     string
	Port     int
	TLS      bool
	Username string
	Password string

	// Timeout bounds each call end to end, including connection setup and
	// reading the response body. Zero means no transport-imposed deadline.
	Timeout time.Duration
}

// URL returns the RPC endpoint derived from the config.
func (c Config) URL() string {
	scheme := "http"
	if c.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d/", scheme, c.Host, c.Port)
}

// HTTP is a Transport over a pooled HTTP connection to the node. Every
// request carries HTTP basic auth; the daemon keeps no session state.
type HTTP struct {
	url      string
	username string
	password string
	timeout  time.Duration
	client   *http.Client
}

// HTTPOption configures the HTTP transport.
type HTTPOption func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client. The caller keeps
// ownership of the client's transport settings.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = client
	}
}

// WithURL overrides the endpoint URL derived from the config. Useful for
// pointing at a test server.
func WithURL(url string) HTTPOption {
	return func(h *HTTP) {
		h.url = url
	}
}

// NewHTTP creates an HTTP transport for the configured node. Connections are
// opened lazily on first use and reused across calls.
func NewHTTP(cfg Config, opts ...HTTPOption) *HTTP {
	h := &HTTP{
		url:      cfg.URL(),
		username: cfg.Username,
		password: cfg.Password,
		timeout:  cfg.Timeout,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        16,
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Send posts the encoded request envelope and returns the raw response body.
func (h *HTTP) Send(ctx context.Context, body []byte) ([]byte, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ConnectionFailed, err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(h.username, h.password)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: HTTPStatus, Status: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

// Close releases idle pooled connections.
func (h *HTTP) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// classify maps a low-level network error to the transport taxonomy.
func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: Timeout, err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: Timeout, err: err}
	}
	return &Error{Kind: ConnectionFailed, err: err}
}
