//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/handler/api"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase"
	"resort-booking/tests/common/httptest"
	usecasemock "resort-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) testUser() *user.User {
	return user.Reconstruct(s.userID, "alice", "alice@example.com", "hash", user.RoleGuest, time.Now())
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret-password",
	}

	s.Run("success: returns 201 Created with the new user", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "secret-password").
			Return(s.testUser(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("alice", response.Username)
		s.Equal("guest", response.Role)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "username too short", mutate: func(m map[string]any) { m["username"] = "ab" }},
			{name: "invalid email", mutate: func(m map[string]any) { m["email"] = "not-an-email" }},
			{name: "password too short", mutate: func(m map[string]any) { m["password"] = "short" }},
			{name: "missing username", mutate: func(m map[string]any) { delete(m, "username") }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := map[string]any{}
				for k, v := range reqBody {
					body[k] = v
				}
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate user", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicateUser).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Registration failed")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"username": "alice", "password": "secret-password"}

	s.Run("success: returns 200 OK with token and user", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "alice", "secret-password").
			Return("test-jwt-token", s.testUser(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal("alice@example.com", response.User.Email)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			loginError     error
			expectedStatus int
		}{
			{name: "invalid credentials", loginError: usecase.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
			{name: "internal server error", loginError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), "alice", "secret-password").
					Return("", nil, tc.loginError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Login failed")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user info", func() {
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(s.testUser(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID.String(), response.ID)
	})

	s.Run("error: 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when user no longer exists", func() {
		s.mockAuth.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to load user")
	})
}
