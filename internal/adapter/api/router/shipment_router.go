package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
	"teamsynchub/internal/adapter/api/middleware"
)

func SetupShipmentRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	shipmentHandler := handler.GetShipmentHandler()

	shipments := e.Group("/v1/shipments")
	shipments.Use(sessionMiddleware.RequireReady)

	shipments.GET("", shipmentHandler.GetView)
	shipments.POST("", shipmentHandler.Create)
	shipments.PUT("/filter", shipmentHandler.SetFilter)
	shipments.POST("/sort", shipmentHandler.ToggleSort)
	shipments.DELETE("/edit", shipmentHandler.CancelEdit)
	shipments.PATCH("/:id", shipmentHandler.Update)
	shipments.PUT("/:id/status", shipmentHandler.SetStatus)
	shipments.PUT("/:id/edit", shipmentHandler.Edit)
	shipments.DELETE("/:id", shipmentHandler.Delete)
}
