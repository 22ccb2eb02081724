package router

import (
	"gamedex/internal/adapter/api/handler"
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// OAuth popup flow; the callback URL is registered with the provider
	e.GET("/api/auth/discord", authHandler.DiscordRedirect)
	e.GET("/api/auth/callback/discord", authHandler.DiscordCallback)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
