package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Delvoid/ecom-admin/pkg/utils"
)

const testSecret = "test-secret"

func runWithAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var extractedUserID string
	handler := RequireAuth(testSecret)(func(c echo.Context) error {
		extractedUserID = utils.ExtractUserID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, extractedUserID
}

func TestRequireAuthMissingToken(t *testing.T) {
	rec, _ := runWithAuth(t, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	rec, _ := runWithAuth(t, "Basic abc123")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuthInvalidSignature(t *testing.T) {
	token, err := utils.CreateJWTToken("user-1", "test", "wrong-secret")
	require.NoError(t, err)

	rec, _ := runWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := utils.CreateJWTToken("user-1", "test", testSecret)
	require.NoError(t, err)

	rec, userID := runWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
}
