package router

import (
	"gamedex/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupProxyRouter initializes the raw catalog proxy used by web clients.
func SetupProxyRouter(e *echo.Echo) {
	proxyHandler := handler.GetProxyHandler()
	e.POST("/api/igdb/:resource", proxyHandler.Forward)
}
