package router

import (
	"gamedex/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupFeedRouter(e *echo.Echo) {
	feedHandler := handler.GetFeedHandler()

	e.GET("/ws/feed", feedHandler.Subscribe)
	e.POST("/v1/feed/motion", feedHandler.ReportMotion)
}
