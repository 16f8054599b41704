package router

import (
	"github.com/labstack/echo/v4"

	"teamsynchub/internal/adapter/api/handler"
	"teamsynchub/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profile := e.Group("/v1/profile")
	profile.Use(sessionMiddleware.RequireReady)

	profile.PATCH("", profileHandler.UpdateProfile)
	profile.POST("/avatar", profileHandler.UploadAvatar)
	profile.GET("/sales", profileHandler.GetAssignedSalesRecords)
}
