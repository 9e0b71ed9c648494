package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vehiql/internal/infrastructure/identity"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func uidEchoHandler(c echo.Context) error {
	return response.Success(c, map[string]string{"uid": UserID(c)})
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(identity.NewDevJWTVerifier(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(uidEchoHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(identity.NewDevJWTVerifier(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(uidEchoHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateSetsSubject(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(identity.NewDevJWTVerifier(testSecret))

	token, err := identity.MintDevToken(testSecret, "ext-42", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = m.Authenticate(uidEchoHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ext-42")
}

func TestOptionalAuthenticateAllowsAnonymous(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(identity.NewDevJWTVerifier(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.OptionalAuthenticate(uidEchoHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthenticateTreatsBadTokenAsAnonymous(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(identity.NewDevJWTVerifier(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-or-bogus")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.OptionalAuthenticate(uidEchoHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", UserID(c))
}
