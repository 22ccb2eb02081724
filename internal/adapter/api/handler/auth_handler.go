package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"gamedex/internal/usecase"
	"gamedex/pkg/logger"
	"gamedex/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// No token on purpose: the client signs in explicitly after registering.
	return response.Created(c, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	user, err := h.authUseCase.Me(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// DiscordRedirect starts the OAuth flow by sending the popup to the identity
// provider's authorization page.
func (h *AuthHandler) DiscordRedirect(c echo.Context) error {
	authURL, err := h.authUseCase.DiscordAuthURL()
	if err != nil {
		return response.Error(c, err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// DiscordCallback finishes the flow and answers with an HTML page that hands
// the custom token to the opening window via a cross-window message, then
// closes itself. Failures render the same shape with an error-typed message.
func (h *AuthHandler) DiscordCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.String(http.StatusBadRequest, "No code provided")
	}

	result, err := h.authUseCase.DiscordCallback(c.Request().Context(), code, c.QueryParam("state"))
	if err != nil {
		logger.Error("Discord callback failed: %v", err)
		return c.HTML(http.StatusInternalServerError, discordErrorPage("Failed to complete Discord authentication"))
	}

	userData, err := json.Marshal(map[string]interface{}{
		"id":       result.User.ID,
		"username": result.User.Username,
		"email":    result.User.Email,
		"avatar":   result.User.Avatar,
	})
	if err != nil {
		return c.HTML(http.StatusInternalServerError, discordErrorPage("Failed to create authentication token"))
	}

	return c.HTML(http.StatusOK, discordSuccessPage(result.CustomToken, string(userData)))
}

func discordSuccessPage(customToken, userData string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <title>Discord Login</title>
</head>
<body>
  <script>
    window.opener.postMessage({
      type: 'discord-auth',
      customToken: %s,
      userData: %s
    }, '*');
    window.close();
  </script>
  <p>Authentication successful. You can close this window.</p>
</body>
</html>`, jsString(customToken), userData)
}

func discordErrorPage(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <title>Discord Login Error</title>
</head>
<body>
  <script>
    window.opener.postMessage({
      type: 'discord-auth-error',
      error: %s
    }, '*');
    window.close();
  </script>
  <p>Authentication failed. You can close this window.</p>
</body>
</html>`, jsString(message))
}

// jsString renders a value as a JavaScript string literal.
func jsString(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(encoded)
}
