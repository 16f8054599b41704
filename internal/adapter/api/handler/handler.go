package handler

import (
	"teamsynchub/internal/infrastructure/websocket"
	"teamsynchub/internal/usecase"
)

var (
	sessionHandler   *SessionHandler
	profileHandler   *ProfileHandler
	viewHandler      *ViewHandler
	chatHandler      *ChatHandler
	salesHandler     *SalesHandler
	shipmentHandler  *ShipmentHandler
	healthHandler    *HealthHandler
	webSocketHandler *WebSocketHandler
)

func Setup(controller *usecase.StateController, wsManager *websocket.Manager) {
	sessionHandler = NewSessionHandler(controller)
	profileHandler = NewProfileHandler(controller)
	viewHandler = NewViewHandler(controller)
	chatHandler = NewChatHandler(controller)
	salesHandler = NewSalesHandler(controller)
	shipmentHandler = NewShipmentHandler(controller)
	healthHandler = NewHealthHandler(controller, wsManager)
	webSocketHandler = NewWebSocketHandler(controller, wsManager)
}

func GetSessionHandler() *SessionHandler {
	return sessionHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetViewHandler() *ViewHandler {
	return viewHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetSalesHandler() *SalesHandler {
	return salesHandler
}

func GetShipmentHandler() *ShipmentHandler {
	return shipmentHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
