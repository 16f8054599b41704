package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
	"teamsynchub/internal/adapter/api/middleware"
	"teamsynchub/internal/infrastructure/ratelimit"
)

func SetupChatRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, limiter *ratelimit.RateLimiter) {
	chatHandler := handler.GetChatHandler()

	topics := e.Group("/v1/topics")
	topics.Use(sessionMiddleware.RequireReady)

	topics.POST("", chatHandler.CreateTopic)
	topics.PUT("/selected", chatHandler.SelectTopic)
	topics.POST("/:id/messages", chatHandler.SendMessage, middleware.RateLimit(limiter, ratelimit.ActionSendMessage))
	topics.POST("/:id/summary", chatHandler.Summarize, middleware.RateLimit(limiter, ratelimit.ActionSummarize))
}
