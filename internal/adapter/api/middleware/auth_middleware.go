package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

func (m *AuthMiddleware) uidFromRequest(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return token.UID, nil
}

// Authenticate requires a valid session token and stores the uid in the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := m.uidFromRequest(c)
		if err != nil {
			return err
		}

		c.Set("uid", uid)
		return next(c)
	}
}

// OptionalAuthenticate resolves the uid when a token is present but lets
// anonymous requests through. Catalog endpoints personalize when they can.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "" {
			if uid, err := m.uidFromRequest(c); err == nil {
				c.Set("uid", uid)
			}
		}
		return next(c)
	}
}
