package bridge

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/veruslabs/verusrpc/middleware"
	"github.com/veruslabs/verusrpc/protocol"
)

// wsHub serves the same JSON-RPC dialect over WebSocket: one request per text
// message, one response back, ids echoed per message.
type wsHub struct {
	handler  *Handler
	logger   middleware.Logger
	upgrader websocket.Upgrader

	readTimeout  time.Duration
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[string]*wsClient
}

// wsClient is a single WebSocket connection. Writes are serialized; gorilla
// connections do not allow concurrent writers.
type wsClient struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func newWSHub(handler *Handler, logger middleware.Logger) *wsHub {
	return &wsHub{
		handler: handler,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		readTimeout:  60 * time.Second,
		writeTimeout: 10 * time.Second,
		clients:      make(map[string]*wsClient),
	}
}

func (h *wsHub) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &wsClient{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	h.clients[client.id] = client
	h.mu.Unlock()

	h.logger.Debug("websocket connected",
		middleware.F("conn_id", client.id),
		middleware.F("client", r.RemoteAddr))

	defer func() {
		h.mu.Lock()
		delete(h.clients, client.id)
		h.mu.Unlock()
		_ = conn.Close()
		h.logger.Debug("websocket disconnected", middleware.F("conn_id", client.id))
	}()

	ctx := protocol.ContextWithRequestMeta(r.Context(), protocol.RequestMeta{
		"remote_addr": r.RemoteAddr,
		"conn_id":     client.id,
	})

	for {
		if h.readTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(h.readTimeout))
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			// Close errors are the normal end of a connection.
			return
		}

		var req protocol.Request
		if err := json.Unmarshal(message, &req); err != nil {
			resp := protocol.NewErrorResponse(json.RawMessage(`null`),
				protocol.NewParseError("Parse error"))
			_ = client.writeJSON(h.writeTimeout, resp)
			continue
		}

		resp := h.handler.Handle(ctx, &req)
		if err := client.writeJSON(h.writeTimeout, resp); err != nil {
			return
		}
	}
}

// closeAll sends close frames to every connected client.
func (h *wsHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		client.close()
	}
}

func (c *wsClient) writeJSON(timeout time.Duration, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if timeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	}
	return c.conn.WriteJSON(v)
}

func (c *wsClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = c.conn.Close()
}
