package router

import (
	"gamedex/internal/adapter/api/handler"
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLibraryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	libraryHandler := handler.GetLibraryHandler()

	library := e.Group("/v1/library")
	library.Use(authMiddleware.Authenticate)

	library.GET("/favorites", libraryHandler.ListFavorites)
	library.POST("/favorites/toggle", libraryHandler.ToggleFavorite)
	library.GET("/favorites/:id/status", libraryHandler.FavoriteStatus)

	library.GET("/history", libraryHandler.ListHistory)
	library.POST("/history", libraryHandler.RecordView)
	library.DELETE("/history", libraryHandler.ClearHistory)
}
