package router

import (
	"gamedex/internal/adapter/api/handler"
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users/me")
	users.Use(authMiddleware.Authenticate)

	users.PATCH("/profile", userHandler.UpdateProfile)
	users.PUT("/preferences", userHandler.UpdatePreferences)

	users.PUT("/profile-image", userHandler.SetProfileImage)
	users.GET("/profile-image", userHandler.GetProfileImage)
	users.DELETE("/profile-image", userHandler.DeleteProfileImage)
}
