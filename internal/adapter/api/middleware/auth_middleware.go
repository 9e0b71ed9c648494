package middleware

import (
	"strings"

	"vehiql/internal/infrastructure/identity"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	verifier identity.Verifier
}

func NewAuthMiddleware(verifier identity.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Authenticate requires a valid bearer token and puts the subject id into
// the echo context under "uid".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		uid, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set("uid", uid)
		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a token is
// present but never rejects; absence or an invalid token means anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			uid, err := m.verifier.Verify(c.Request().Context(), token)
			if err != nil {
				logger.Debug("Ignoring invalid token on optional-auth route: %v", err)
			} else {
				c.Set("uid", uid)
			}
		}
		return next(c)
	}
}

// UserID returns the authenticated subject id, or "" for anonymous callers.
func UserID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}
