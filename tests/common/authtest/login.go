//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apptest "campuscoffee/tests/common/httptest"
)

// LoginUser authenticates via the login endpoint and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	loginReq := map[string]string{
		"email":    email,
		"password": password,
	}

	w := apptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", loginReq, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	cookie := apptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "access_token cookie not set")
	require.NotEmpty(t, cookie.Value)

	return cookie.Value
}

// LoginUserWithCookies returns the full cookie jar from a login response.
func LoginUserWithCookies(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	loginReq := map[string]string{
		"email":    email,
		"password": password,
	}

	w := apptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", loginReq, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	return apptest.ExtractCookies(w)
}

func LogoutUser(t *testing.T, router *gin.Engine, accessToken string) {
	t.Helper()

	w := apptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, accessToken)
	require.Equal(t, http.StatusNoContent, w.Code, "logout failed: %s", w.Body.String())
}
