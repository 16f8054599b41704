package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
	"teamsynchub/internal/adapter/api/middleware"
)

func SetupViewRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	viewHandler := handler.GetViewHandler()

	view := e.Group("/v1/view")
	view.Use(sessionMiddleware.RequireReady)

	view.PUT("", viewHandler.SetView)
	view.POST("/back", viewHandler.Back)
}
