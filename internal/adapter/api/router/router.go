package router

import (
	"gamedex/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupCatalogRouter(e, authMiddleware)
	SetupLibraryRouter(e, authMiddleware)
	SetupPreferenceRouter(e, authMiddleware)
	SetupProxyRouter(e)
	SetupFeedRouter(e)
	SetupHealthRouter(e)
}
