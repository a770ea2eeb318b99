//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"campuscoffee/internal/domain/user"
	"campuscoffee/internal/handler/dto/request"
	"campuscoffee/internal/handler/dto/response"
	"campuscoffee/internal/usecase/queries"
	"campuscoffee/tests/common/authtest"
	"campuscoffee/tests/common/dbtest"
	"campuscoffee/tests/common/httptest"
	"campuscoffee/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) seedUser(email, role string) {
	t := s.T()
	_, err := dbtest.CreateTestUser(t.Context(), s.DB, email, role)
	require.NoError(t, err)
}

func (s *AuthSuite) TestRegister() {
	s.Run("new account can register and then log in", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "fresh@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "registration should succeed: %s", w.Body.String())

		var registered response.RegisterResponse
		httptest.DecodeResponseBody(t, w.Body, &registered)
		require.NotEmpty(t, registered.UserID)

		token := authtest.LoginUser(t, s.Router, "fresh@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("registering an existing email conflicts", func() {
		t := s.T()

		s.seedUser("taken@example.com", string(user.RoleMember))

		reqBody := request.RegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("short password is rejected at binding", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "short@example.com",
			Password: "short",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "member@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "member@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "member@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			s.seedUser("member@example.com", string(user.RoleMember))
			s.seedUser("inactive@example.com", string(user.RoleMember))
			_, err := s.DB.Exec(t.Context(),
				"UPDATE users SET is_active = FALSE WHERE email = 'inactive@example.com'")
			require.NoError(t, err)

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, "unexpected status: %s", w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(),
					"SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at should be stamped on login")
			}
		})
	}
}

func (s *AuthSuite) TestRefresh() {
	s.Run("refresh token from the login cookie rotates the pair", func() {
		t := s.T()

		s.seedUser("member@example.com", string(user.RoleMember))
		cookies := authtest.LoginUserWithCookies(t, s.Router, "member@example.com", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, "refresh should succeed: %s", w.Body.String())

		var refreshed response.RefreshResponse
		httptest.DecodeResponseBody(t, w.Body, &refreshed)
		require.NotEmpty(t, refreshed.AccessToken)
		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("refresh token in the body works without cookies", func() {
		t := s.T()

		s.seedUser("member@example.com", string(user.RoleMember))
		cookies := authtest.LoginUserWithCookies(t, s.Router, "member@example.com", dbtest.TestPassword)

		var refreshToken string
		for _, c := range cookies {
			if c.Name == "refresh_token" {
				refreshToken = c.Value
			}
		}
		require.NotEmpty(t, refreshToken)

		reqBody := request.RefreshRequest{RefreshToken: refreshToken}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("missing token is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token is unauthorized", func() {
		t := s.T()

		reqBody := request.RefreshRequest{RefreshToken: "not-a-jwt"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("logout clears the session cookies", func() {
		t := s.T()

		s.seedUser("member@example.com", string(user.RoleMember))
		token := authtest.LoginUser(t, s.Router, "member@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("logout requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()

		s.seedUser("member@example.com", string(user.RoleMember))
		token := authtest.LoginUser(t, s.Router, "member@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var me queries.AuthorizedUserView
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "member@example.com", me.Email)
		require.Equal(t, string(user.RoleMember), me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("expired token is rejected", func() {
		t := s.T()

		s.seedUser("member@example.com", string(user.RoleMember))
		var userID string
		err := s.DB.QueryRow(t.Context(),
			"SELECT id FROM users WHERE email = 'member@example.com'").Scan(&userID)
		require.NoError(t, err)

		helper := authtest.NewJWTHelper(s.Config)
		expired := helper.CreateExpiredToken(t, mustParseUUID(t, userID), string(user.RoleMember))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unauthenticated request is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
