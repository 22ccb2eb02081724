package router

import (
	"gamedex/internal/adapter/api/handler"
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPreferenceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	preferenceHandler := handler.GetPreferenceHandler()

	prefs := e.Group("/v1/preferences")
	prefs.Use(authMiddleware.Authenticate)

	prefs.GET("/theme", preferenceHandler.GetTheme)
	prefs.PUT("/theme", preferenceHandler.SetTheme)
	prefs.GET("/locale", preferenceHandler.GetLocale)
	prefs.PUT("/locale", preferenceHandler.SetLocale)
	prefs.GET("/search-history", preferenceHandler.GetSearchHistory)
	prefs.DELETE("/search-history", preferenceHandler.ClearSearchHistory)
}
