package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"drivefleet/internal/domain/entity"
	"drivefleet/internal/domain/service"
	mockSvc "drivefleet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sellers", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("ValidateToken", "valid.jwt.token").
		Return(&service.Claims{UserID: userID, Role: string(entity.RoleAdmin)}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer valid.jwt.token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, string(entity.RoleAdmin), c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwdw==")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("ValidateToken", "expired.jwt.token").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer expired.jwt.token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, string(entity.RoleAdmin))

		err := m.RequireRole(string(entity.RoleAdmin))(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(ContextKeyRole, string(entity.RoleCustomer))

		err := m.RequireRole(string(entity.RoleAdmin))(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		err := m.RequireRole(string(entity.RoleAdmin))(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
