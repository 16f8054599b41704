package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"teamsynchub/internal/infrastructure/websocket"
	"teamsynchub/internal/usecase"
)

type HealthHandler struct {
	controller *usecase.StateController
	wsManager  *websocket.Manager
}

func NewHealthHandler(controller *usecase.StateController, wsManager *websocket.Manager) *HealthHandler {
	return &HealthHandler{
		controller: controller,
		wsManager:  wsManager,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	body := map[string]interface{}{
		"status": "Server is running",
		"phase":  h.controller.Phase(),
		"time":   time.Now().Format(time.RFC3339),
	}
	if h.wsManager != nil {
		body["subscribers"] = h.wsManager.ClientCount()
	}
	return c.JSON(http.StatusOK, body)
}
