package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "teamsynchub/internal/infrastructure/websocket"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
	"teamsynchub/pkg/response"
)

type WebSocketHandler struct {
	controller *usecase.StateController
	wsManager  *ws.Manager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(controller *usecase.StateController, wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		controller: controller,
		wsManager:  wsManager,
	}
}

// HandleWebSocket subscribes the connection to the change feed. Clients
// may connect before signing in so they also see the ready event.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	if h.wsManager == nil {
		return response.Error(c, errors.InvalidState("change feed is not running"))
	}

	var userID string
	if sess := h.controller.Snapshot().Session; sess != nil {
		userID = sess.User.ID
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed: %v", err)
		return nil
	}

	client := ws.NewClient(userID, conn)
	if !h.wsManager.Add(client) {
		conn.Close()
		return nil
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
