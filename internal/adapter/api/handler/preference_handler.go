package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gamedex/internal/usecase"
	"gamedex/pkg/response"
)

// PreferenceHandler serves per-device presentation settings: theme, locale
// and the recent-search list.
type PreferenceHandler struct {
	preferenceUseCase *usecase.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
	}
}

type setThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

type setLocaleRequest struct {
	Locale string `json:"locale" validate:"required"`
}

func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	theme, err := h.preferenceUseCase.Theme(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"theme": theme,
	})
}

func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.preferenceUseCase.SetTheme(c.Request().Context(), uid, req.Theme); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"theme": req.Theme,
	})
}

func (h *PreferenceHandler) GetLocale(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	locale, err := h.preferenceUseCase.Locale(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"locale": locale,
	})
}

func (h *PreferenceHandler) SetLocale(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req setLocaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.preferenceUseCase.SetLocale(c.Request().Context(), uid, req.Locale); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"locale": req.Locale,
	})
}

func (h *PreferenceHandler) GetSearchHistory(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	terms, err := h.preferenceUseCase.SearchHistory(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, terms)
}

func (h *PreferenceHandler) ClearSearchHistory(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	if err := h.preferenceUseCase.ClearSearchHistory(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Search history cleared",
	})
}
