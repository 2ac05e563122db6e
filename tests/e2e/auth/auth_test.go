//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"booking-crm/internal/domain/user"
	"booking-crm/internal/handler/dto/request"
	"booking-crm/internal/usecase/queries"
	"booking-crm/tests/common/authtest"
	"booking-crm/tests/common/dbtest"
	"booking-crm/tests/common/httptest"
	"booking-crm/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestLogin - Login API tests
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Valid credentials set token cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "admin@example.se", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.se", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		accessCookie := httptest.ExtractCookie(w, "access_token")
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, accessCookie)
		require.NotNil(t, refreshCookie)
		require.True(t, accessCookie.HttpOnly)
		require.True(t, refreshCookie.HttpOnly)

		// last_login is stamped on successful login
		var lastLogin any
		err := s.DB.QueryRow(t.Context(),
			"SELECT last_login FROM users WHERE email = 'admin@example.se'").Scan(&lastLogin)
		require.NoError(t, err)
		require.NotNil(t, lastLogin)
	})

	s.Run("Error case: Credential and state failures", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "aktiv@example.se", string(user.RoleSales))
		dbtest.CreateTestUser(t, s.DB, "inaktiv@example.se", string(user.RoleSales))
		_, err := s.DB.Exec(t.Context(),
			"UPDATE users SET is_active = false WHERE email = 'inaktiv@example.se'")
		require.NoError(t, err)

		tests := []struct {
			name           string
			email          string
			password       string
			expectedStatus int
		}{
			{"unknown user", "finnsinte@example.se", "password123", http.StatusUnauthorized},
			{"wrong password", "aktiv@example.se", "felaktigt1", http.StatusUnauthorized},
			{"inactive user", "inaktiv@example.se", "password123", http.StatusForbidden},
			{"blank email", "", "password123", http.StatusBadRequest},
			{"blank password", "aktiv@example.se", "", http.StatusBadRequest},
		}
		for _, tt := range tests {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.name)
		}
	})
}

// =============================================================================
// TestRefresh - Token refresh API tests
// =============================================================================

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: Refresh cookie rotates both tokens", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "admin@example.se", string(user.RoleAdmin))

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.se", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code)
		cookies := httptest.ExtractCookies(lw)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		newAccess := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, newAccess)
		require.NotEmpty(t, newAccess.Value)
	})

	s.Run("Error case: Missing and invalid refresh tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "no token at all")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "inte-en-riktig-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "garbage token")
	})
}

// =============================================================================
// TestLogout - Logout API tests
// =============================================================================

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the token cookies", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.se", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Negative(t, cleared.MaxAge)
	})

	s.Run("Auth test: Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestMe - Current user API tests
// =============================================================================

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Returns the logged-in user without secrets", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "saljare@example.se", string(user.RoleSales))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotContains(t, w.Body.String(), "password")

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "saljare@example.se", me.Email)
		require.Equal(t, "sales", me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("Error case: Expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "utgangen@example.se", string(user.RoleSales))
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, userID, user.RoleSales)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test: Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
