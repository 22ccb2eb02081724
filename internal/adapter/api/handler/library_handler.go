package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gamedex/internal/domain/entity"
	"gamedex/internal/usecase"
	"gamedex/pkg/errors"
	"gamedex/pkg/response"
)

// LibraryHandler serves the per-user game library: favorites and the
// recently-viewed history.
type LibraryHandler struct {
	favoritesUseCase *usecase.FavoritesUseCase
	historyUseCase   *usecase.HistoryUseCase
}

func NewLibraryHandler(
	favoritesUseCase *usecase.FavoritesUseCase,
	historyUseCase *usecase.HistoryUseCase,
) *LibraryHandler {
	return &LibraryHandler{
		favoritesUseCase: favoritesUseCase,
		historyUseCase:   historyUseCase,
	}
}

type gameRequest struct {
	Game entity.Game `json:"game" validate:"required"`
}

func (h *LibraryHandler) ListFavorites(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	games, err := h.favoritesUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

// ToggleFavorite adds the game when absent and removes it when present. The
// response says which way it went.
func (h *LibraryHandler) ToggleFavorite(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Game.ID <= 0 {
		return response.Error(c, errors.BadRequest("Game ID is required", nil))
	}

	added, err := h.favoritesUseCase.Toggle(c.Request().Context(), uid, req.Game)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"game_id":  req.Game.ID,
		"favorite": added,
	})
}

func (h *LibraryHandler) FavoriteStatus(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || gameID <= 0 {
		return response.Error(c, errors.BadRequest("Invalid game ID", err))
	}

	favorite, err := h.favoritesUseCase.IsFavorite(c.Request().Context(), uid, gameID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"game_id":  gameID,
		"favorite": favorite,
	})
}

func (h *LibraryHandler) ListHistory(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	entries, err := h.historyUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

// RecordView moves the game to the front of the history, trimming the tail
// past the retention cap.
func (h *LibraryHandler) RecordView(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Game.ID <= 0 {
		return response.Error(c, errors.BadRequest("Game ID is required", nil))
	}

	if err := h.historyUseCase.Add(c.Request().Context(), uid, req.Game); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "View recorded",
	})
}

func (h *LibraryHandler) ClearHistory(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	if err := h.historyUseCase.Clear(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "History cleared",
	})
}
