package campaign

import (
	"net/http"

	"golang.org/x/net/websocket"

	"github.com/radianhq/outreach/pkg/logging"
)

// ProgressHandler streams campaign progress events to the operator UI over
// WebSocket.
type ProgressHandler struct {
	broadcaster *Broadcaster
	logger      *logging.Logger
}

// NewProgressHandler creates a progress feed handler.
func NewProgressHandler(b *Broadcaster, logger *logging.Logger) *ProgressHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ProgressHandler{
		broadcaster: b,
		logger:      logger,
	}
}

// HandleWebSocket upgrades to WebSocket and forwards events until the
// client disconnects.
func (h *ProgressHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *ProgressHandler) serveWS(conn *websocket.Conn, r *http.Request) {
	events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(events)

	h.logger.Info("progress feed: connection opened", "remote", r.RemoteAddr)

	done := r.Context().Done()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := websocket.JSON.Send(conn, ev); err != nil {
				h.logger.Debug("progress feed: connection closed", "error", err)
				return
			}
		}
	}
}
