package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"gamedex/internal/infrastructure/igdb"
	"gamedex/pkg/errors"
	"gamedex/pkg/logger"
	"gamedex/pkg/response"
)

// allowedResources are the catalog sub-resources the app actually queries.
// Anything else is rejected before it reaches the upstream.
var allowedResources = map[string]bool{
	"games":                true,
	"genres":               true,
	"platforms":            true,
	"platform_families":    true,
	"themes":               true,
	"game_modes":           true,
	"player_perspectives":  true,
	"companies":            true,
	"age_ratings":          true,
	"release_dates":        true,
	"game_time_to_beat":    true,
	"language_supports":    true,
	"search":               true,
	"covers":               true,
	"screenshots":          true,
	"artworks":             true,
	"game_videos":          true,
}

// ProxyHandler forwards raw catalog queries for web clients that cannot call
// the catalog service directly because of cross-origin restrictions.
type ProxyHandler struct {
	client *igdb.Client
}

var proxyHandler *ProxyHandler

func SetupProxyHandler(client *igdb.Client) {
	proxyHandler = &ProxyHandler{client: client}
}

func GetProxyHandler() *ProxyHandler {
	return proxyHandler
}

// Forward relays the body verbatim and returns the upstream status and JSON
// unchanged, credentials injected on the way out.
func (h *ProxyHandler) Forward(c echo.Context) error {
	resource := c.Param("resource")
	if !allowedResources[resource] {
		return response.Error(c, errors.NotFound("Catalog resource", nil))
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
	}

	logger.Debug("Proxying to catalog: %s", resource)

	status, payload, err := h.client.Forward(c.Request().Context(), resource, body)
	if err != nil {
		logger.Error("Proxy error for %s: %v", resource, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSONBlob(status, payload)
}
