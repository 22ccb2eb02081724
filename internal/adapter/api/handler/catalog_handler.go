package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gamedex/internal/usecase"
	"gamedex/pkg/errors"
	"gamedex/pkg/logger"
	"gamedex/pkg/response"
	"gamedex/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase    *usecase.CatalogUseCase
	discoverUseCase   *usecase.DiscoverUseCase
	preferenceUseCase *usecase.PreferenceUseCase
}

func NewCatalogHandler(
	catalogUseCase *usecase.CatalogUseCase,
	discoverUseCase *usecase.DiscoverUseCase,
	preferenceUseCase *usecase.PreferenceUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase:    catalogUseCase,
		discoverUseCase:   discoverUseCase,
		preferenceUseCase: preferenceUseCase,
	}
}

func gameIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid game ID", err)
	}
	return id, nil
}

func (h *CatalogHandler) Popular(c echo.Context) error {
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.Popular(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) RecentlyReleased(c echo.Context) error {
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.RecentlyReleased(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) ComingSoon(c echo.Context) error {
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.ComingSoon(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) ByGenre(c echo.Context) error {
	genreID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || genreID <= 0 {
		return response.Error(c, errors.BadRequest("Invalid genre ID", err))
	}
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.ByGenre(c.Request().Context(), genreID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) ByPlatform(c echo.Context) error {
	platformID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || platformID <= 0 {
		return response.Error(c, errors.BadRequest("Invalid platform ID", err))
	}
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.ByPlatform(c.Request().Context(), platformID, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

// Search looks up games by name. When the caller is signed in the term is
// recorded to their recent searches, best effort.
func (h *CatalogHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return response.Error(c, errors.BadRequest("Search term is required", nil))
	}
	limit := utils.GetLimitParam(c, 20, 50)

	games, err := h.catalogUseCase.Search(c.Request().Context(), term, limit)
	if err != nil {
		return response.Error(c, err)
	}

	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		if err := h.preferenceUseCase.AddSearchTerm(c.Request().Context(), uid, term); err != nil {
			logger.Warn("Failed to record search term for %s: %v", uid, err)
		}
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) GlobalSearch(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return response.Error(c, errors.BadRequest("Search term is required", nil))
	}

	results, err := h.catalogUseCase.GlobalSearch(c.Request().Context(), term)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *CatalogHandler) GetGame(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	game, err := h.catalogUseCase.Game(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *CatalogHandler) Similar(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.catalogUseCase.Similar(c.Request().Context(), id, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *CatalogHandler) Screenshots(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	images, err := h.catalogUseCase.Screenshots(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, images)
}

func (h *CatalogHandler) Artworks(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	images, err := h.catalogUseCase.Artworks(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, images)
}

func (h *CatalogHandler) Videos(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	videos, err := h.catalogUseCase.Videos(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, videos)
}

func (h *CatalogHandler) AgeRatings(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	ratings, err := h.catalogUseCase.AgeRatings(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ratings)
}

func (h *CatalogHandler) ReleaseDates(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	dates, err := h.catalogUseCase.ReleaseDates(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dates)
}

func (h *CatalogHandler) TimeToBeat(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	ttb, err := h.catalogUseCase.TimeToBeat(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ttb)
}

func (h *CatalogHandler) LanguageSupports(c echo.Context) error {
	id, err := gameIDParam(c)
	if err != nil {
		return response.Error(c, err)
	}

	supports, err := h.catalogUseCase.LanguageSupports(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, supports)
}

func (h *CatalogHandler) Cover(c echo.Context) error {
	coverID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || coverID <= 0 {
		return response.Error(c, errors.BadRequest("Invalid cover ID", err))
	}

	cover, err := h.catalogUseCase.Cover(c.Request().Context(), coverID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cover)
}

func (h *CatalogHandler) Genres(c echo.Context) error {
	genres, err := h.catalogUseCase.Genres(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, genres)
}

func (h *CatalogHandler) Platforms(c echo.Context) error {
	platforms, err := h.catalogUseCase.Platforms(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, platforms)
}

func (h *CatalogHandler) PlatformFamilies(c echo.Context) error {
	families, err := h.catalogUseCase.PlatformFamilies(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, families)
}

func (h *CatalogHandler) Themes(c echo.Context) error {
	themes, err := h.catalogUseCase.Themes(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, themes)
}

func (h *CatalogHandler) GameModes(c echo.Context) error {
	modes, err := h.catalogUseCase.GameModes(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, modes)
}

func (h *CatalogHandler) PlayerPerspectives(c echo.Context) error {
	perspectives, err := h.catalogUseCase.PlayerPerspectives(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, perspectives)
}

func (h *CatalogHandler) Companies(c echo.Context) error {
	limit := utils.GetLimitParam(c, 20, 100)

	companies, err := h.catalogUseCase.Companies(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, companies)
}

func (h *CatalogHandler) Random(c echo.Context) error {
	limit := utils.GetLimitParam(c, 10, 50)

	games, err := h.discoverUseCase.RandomGames(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

// Recommended returns one row of random games per favorite genre of the
// signed-in user. Anonymous callers get an empty result rather than an error.
func (h *CatalogHandler) Recommended(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return response.Success(c, []usecase.GenreRow{})
	}
	perGenre := utils.GetLimitParam(c, 10, 30)

	rows, err := h.discoverUseCase.RecommendedForUser(c.Request().Context(), uid, perGenre)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rows)
}

// Surprise picks a single random game out of a fresh random batch.
func (h *CatalogHandler) Surprise(c echo.Context) error {
	games, err := h.discoverUseCase.RandomGames(c.Request().Context(), 10)
	if err != nil {
		return response.Error(c, err)
	}

	pick := h.discoverUseCase.SurprisePick(games)
	if pick == nil {
		return response.Error(c, errors.NotFound("No games available", nil))
	}

	return response.Success(c, pick)
}
