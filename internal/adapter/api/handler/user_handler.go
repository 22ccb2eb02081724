package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gamedex/internal/usecase"
	"gamedex/pkg/errors"
	"gamedex/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3"`
}

type updatePreferencesRequest struct {
	FavoriteGenres []int64 `json:"favorite_genres" validate:"required,min=1"`
}

type profileImageRequest struct {
	Image string `json:"image" validate:"required"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName: req.Username,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile updated",
	})
}

// UpdatePreferences stores the onboarding genre picks and marks onboarding
// complete.
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UpdatePreferences(c.Request().Context(), uid, req.FavoriteGenres); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Preferences updated",
	})
}

// SetProfileImage stores the image on this device's preference store only.
// Profile images never reach the user document.
func (h *UserHandler) SetProfileImage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req profileImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.SetProfileImage(c.Request().Context(), uid, req.Image); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile image saved",
	})
}

func (h *UserHandler) GetProfileImage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	image, err := h.userUseCase.GetProfileImage(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	if image == "" {
		return response.Error(c, errors.NotFound("Profile image", nil))
	}

	return response.Success(c, map[string]string{
		"image": image,
	})
}

func (h *UserHandler) DeleteProfileImage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	if err := h.userUseCase.DeleteProfileImage(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile image removed",
	})
}
