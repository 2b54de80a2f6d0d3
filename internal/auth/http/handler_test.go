package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/auth/http/dto"
	httpMocks "github.com/cargoconnect/api/internal/auth/http/mocks"
)

// setupTestHandler creates a test auth handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*AuthHandler, *httpMocks.MockAuthUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockAuthUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewAuthHandler(mockUseCase, logger)

	return handler, mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testPair() *authDomain.TokenPair {
	return &authDomain.TokenPair{
		AccessToken:  "signed-access-token",
		RefreshToken: "plain-refresh-token",
		ExpiresAt:    time.Now().UTC().Add(2 * time.Hour),
		Role:         authDomain.RoleUser,
		UserID:       7,
		Name:         "Acme Logistics",
	}
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		pair := testPair()

		mockUseCase.On("Login", mock.Anything, &authDomain.LoginInput{
			Email:    "ivan@example.com",
			Password: "Secret-Password1",
		}).Return(pair, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "ivan@example.com",
			Password: "Secret-Password1",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenPairResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed-access-token", response.AccessToken)
		assert.Equal(t, "plain-refresh-token", response.RefreshToken)
		assert.Equal(t, "User", response.Role)
		assert.Equal(t, int64(7), response.UserID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("*domain.LoginInput")).
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "ivan@example.com",
			Password: "wrong",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MissingEmail", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Password: "Secret-Password1",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_SelfRegister", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		clientID := int64(42)

		created := &authDomain.User{
			ID:       7,
			Email:    "new@example.com",
			Role:     authDomain.RoleUser,
			ClientID: &clientID,
		}

		mockUseCase.On(
			"Register", mock.Anything, (*authDomain.Principal)(nil),
			mock.MatchedBy(func(input *authDomain.RegisterInput) bool {
				return input.Email == "new@example.com" && input.Role == authDomain.RoleUser
			}),
		).Return(created, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "Secret-Password1",
			Role:     "User",
			ClientID: &clientID,
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(7), response.ID)
		assert.Equal(t, "User", response.Role)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_AdminActorForwarded", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		admin := &authDomain.Principal{UserID: 3, Role: authDomain.RoleAdmin}

		mockUseCase.On(
			"Register", mock.Anything, admin, mock.AnythingOfType("*domain.RegisterInput"),
		).Return(&authDomain.User{ID: 8, Role: authDomain.RoleModerator}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "mod@example.com",
			Password: "Secret-Password1",
			Role:     "Moderator",
		})
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), admin))

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_WeakPassword", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "short",
			Role:     "User",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "Secret-Password1",
			Role:     "Superuser",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_RefreshHandler(t *testing.T) {
	t.Run("Success_RotatePair", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		pair := testPair()

		mockUseCase.On("Refresh", mock.Anything, "expired-access-token", "plain-refresh-token").
			Return(pair, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/refresh", dto.RefreshRequest{
			AccessToken:  "expired-access-token",
			RefreshToken: "plain-refresh-token",
		})

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_RefreshTokenMismatch", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Refresh", mock.Anything, "expired-access-token", "spent-refresh-token").
			Return(nil, authDomain.ErrRefreshTokenMismatch).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/refresh", dto.RefreshRequest{
			AccessToken:  "expired-access-token",
			RefreshToken: "spent-refresh-token",
		})

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_AccessTokenStillValid", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Refresh", mock.Anything, "live-access-token", "plain-refresh-token").
			Return(nil, authDomain.ErrTokenNotExpired).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/refresh", dto.RefreshRequest{
			AccessToken:  "live-access-token",
			RefreshToken: "plain-refresh-token",
		})

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingRefreshToken", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/refresh", dto.RefreshRequest{
			AccessToken: "expired-access-token",
		})

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_LogoutHandler(t *testing.T) {
	t.Run("Success_Logout", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		principal := &authDomain.Principal{UserID: 7, Role: authDomain.RoleUser}

		mockUseCase.On("Logout", mock.Anything, int64(7)).Return(nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/logout", nil)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_Unauthenticated", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/logout", nil)

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_MeHandler(t *testing.T) {
	t.Run("Success_Me", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		clientID := int64(42)
		principal := &authDomain.Principal{UserID: 7, Role: authDomain.RoleUser}
		current := &authDomain.Principal{
			UserID:   7,
			Email:    "ivan@example.com",
			Name:     "Acme Logistics",
			Role:     authDomain.RoleUser,
			ClientID: &clientID,
		}

		mockUseCase.On("Me", mock.Anything, int64(7)).Return(current, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/auth/me", nil)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.PrincipalResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Acme Logistics", response.Name)
		assert.Equal(t, int64(42), *response.ClientID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_Unauthenticated", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/auth/me", nil)

		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
