package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/middleware"
	"teamsynchub/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, limiter *ratelimit.RateLimiter) {
	SetupSessionRouter(e)
	SetupProfileRouter(e, sessionMiddleware)
	SetupViewRouter(e, sessionMiddleware)
	SetupChatRouter(e, sessionMiddleware, limiter)
	SetupSalesRouter(e, sessionMiddleware)
	SetupShipmentRouter(e, sessionMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
