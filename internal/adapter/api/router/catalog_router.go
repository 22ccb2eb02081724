package router

import (
	"gamedex/internal/adapter/api/handler"
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupCatalogRouter initializes the browsing routes. Everything is public;
// search and recommendations pick up the uid when a token is present.
func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	catalogHandler := handler.GetCatalogHandler()

	games := e.Group("/v1/games")
	games.Use(authMiddleware.OptionalAuthenticate)

	games.GET("/popular", catalogHandler.Popular)
	games.GET("/recent", catalogHandler.RecentlyReleased)
	games.GET("/coming-soon", catalogHandler.ComingSoon)
	games.GET("/random", catalogHandler.Random)
	games.GET("/surprise", catalogHandler.Surprise)
	games.GET("/recommended", catalogHandler.Recommended)
	games.GET("/search", catalogHandler.Search)
	games.GET("/global-search", catalogHandler.GlobalSearch)
	games.GET("/genre/:id", catalogHandler.ByGenre)
	games.GET("/platform/:id", catalogHandler.ByPlatform)

	games.GET("/:id", catalogHandler.GetGame)
	games.GET("/:id/similar", catalogHandler.Similar)
	games.GET("/:id/screenshots", catalogHandler.Screenshots)
	games.GET("/:id/artworks", catalogHandler.Artworks)
	games.GET("/:id/videos", catalogHandler.Videos)
	games.GET("/:id/age-ratings", catalogHandler.AgeRatings)
	games.GET("/:id/release-dates", catalogHandler.ReleaseDates)
	games.GET("/:id/time-to-beat", catalogHandler.TimeToBeat)
	games.GET("/:id/language-supports", catalogHandler.LanguageSupports)

	e.GET("/v1/covers/:id", catalogHandler.Cover)
	e.GET("/v1/genres", catalogHandler.Genres)
	e.GET("/v1/platforms", catalogHandler.Platforms)
	e.GET("/v1/platform-families", catalogHandler.PlatformFamilies)
	e.GET("/v1/themes", catalogHandler.Themes)
	e.GET("/v1/game-modes", catalogHandler.GameModes)
	e.GET("/v1/player-perspectives", catalogHandler.PlayerPerspectives)
	e.GET("/v1/companies", catalogHandler.Companies)
}
