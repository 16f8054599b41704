package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
)

func SetupSessionRouter(e *echo.Echo) {
	sessionHandler := handler.GetSessionHandler()

	session := e.Group("/v1/session")
	session.POST("/login", sessionHandler.Login)
	session.POST("/signup", sessionHandler.SignUp)
	session.POST("/reload", sessionHandler.Reload)
	session.DELETE("", sessionHandler.Logout)

	e.GET("/v1/state", sessionHandler.GetState)
}
