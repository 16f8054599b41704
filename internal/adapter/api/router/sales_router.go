package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
	"teamsynchub/internal/adapter/api/middleware"
)

func SetupSalesRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	salesHandler := handler.GetSalesHandler()

	sales := e.Group("/v1/sales")
	sales.Use(sessionMiddleware.RequireReady)

	sales.GET("", salesHandler.GetBoard)
	sales.POST("", salesHandler.Create)
	sales.DELETE("/open", salesHandler.Close)
	sales.PATCH("/:id", salesHandler.Update)
	sales.PUT("/:id/status", salesHandler.SetStatus)
	sales.PUT("/:id/open", salesHandler.Open)
	sales.DELETE("/:id", salesHandler.Delete)
}
