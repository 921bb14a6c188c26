package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/services"
	"accubooks/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	authService     *service_mocks.MockAuthServiceInterface
	passwordService *service_mocks.MockPasswordServiceInterface
	handler         *AuthHandler
	e               *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService, s.passwordService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	expectedUser := &models.User{
		ID:        uuid.New(),
		Email:     "test@example.com",
		CreatedAt: time.Now(),
	}

	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(expectedUser, nil)

	c, rec := s.postJSON("/api/auth/signup", map[string]string{
		"email":    "test@example.com",
		"password": "SecurePassword123",
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)
	s.Equal("User registered successfully", response.Message)
}

func (s *AuthHandlerSuite) TestRegister_EmailTaken() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrUserAlreadyExists)

	c, rec := s.postJSON("/api/auth/signup", map[string]string{
		"email":    "duplicate@example.com",
		"password": "SecurePassword123",
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_006")
}

func (s *AuthHandlerSuite) TestRegister_InvalidEmail() {
	c, _ := s.postJSON("/api/auth/signup", map[string]string{
		"email":    "not-an-email",
		"password": "SecurePassword123",
	})

	// Validation failures bubble up to the global error handler
	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	tokens := &dto.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tokens, nil)

	c, rec := s.postJSON("/api/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "SecurePassword123",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "accessToken")
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials)

	c, rec := s.postJSON("/api/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerSuite) TestLogin_LockedAccount() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAccountLocked)

	c, rec := s.postJSON("/api/auth/login", map[string]string{
		"email":    "locked@example.com",
		"password": "SecurePassword123",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *AuthHandlerSuite) TestRefreshToken_Invalid() {
	s.authService.EXPECT().
		RefreshTokens("stale-token", gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidRefreshToken)

	c, rec := s.postJSON("/api/auth/refresh", map[string]string{
		"refreshToken": "stale-token",
	})

	s.NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_004")
}

func (s *AuthHandlerSuite) TestLogout_Success() {
	s.authService.EXPECT().
		Logout("sometoken", gomock.Any(), gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Logout successful")
}

func (s *AuthHandlerSuite) TestLogout_ServiceErrorStillSucceeds() {
	// Blacklist failures never surface to the caller
	s.authService.EXPECT().
		Logout("sometoken", gomock.Any(), gomock.Any()).
		Return(errors.New("store unavailable"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Logout successful")
}

func (s *AuthHandlerSuite) TestLogout_MissingHeader() {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Logout(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthHandlerSuite) updatePasswordContext(userID uuid.UUID, body map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, "/api/auth/password", bytes.NewBuffer(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func (s *AuthHandlerSuite) TestUpdatePassword_Success() {
	userID := uuid.New()

	s.passwordService.EXPECT().
		UpdatePassword(userID, "OldPassword123", "NewPassword456").
		Return(nil)

	c, rec := s.updatePasswordContext(userID, map[string]string{
		"currentPassword": "OldPassword123",
		"newPassword":     "NewPassword456",
	})

	s.NoError(s.handler.UpdatePassword(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Password updated successfully")
}

func (s *AuthHandlerSuite) TestUpdatePassword_WrongCurrentPassword() {
	userID := uuid.New()

	s.passwordService.EXPECT().
		UpdatePassword(userID, "WrongPassword1", "NewPassword456").
		Return(services.ErrCurrentPasswordWrong)

	c, rec := s.updatePasswordContext(userID, map[string]string{
		"currentPassword": "WrongPassword1",
		"newPassword":     "NewPassword456",
	})

	s.NoError(s.handler.UpdatePassword(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerSuite) TestUpdatePassword_SamePassword() {
	userID := uuid.New()

	s.passwordService.EXPECT().
		UpdatePassword(userID, "SamePassword123", "SamePassword123").
		Return(services.ErrSamePassword)

	c, rec := s.updatePasswordContext(userID, map[string]string{
		"currentPassword": "SamePassword123",
		"newPassword":     "SamePassword123",
	})

	s.NoError(s.handler.UpdatePassword(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *AuthHandlerSuite) TestUpdatePassword_ShortNewPassword() {
	// Rejected by request validation, never reaches the service
	c, _ := s.updatePasswordContext(uuid.New(), map[string]string{
		"currentPassword": "OldPassword123",
		"newPassword":     "short",
	})

	s.Error(s.handler.UpdatePassword(c))
}

func (s *AuthHandlerSuite) TestUpdatePassword_Unauthenticated() {
	raw, _ := json.Marshal(map[string]string{
		"currentPassword": "OldPassword123",
		"newPassword":     "NewPassword456",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/password", bytes.NewBuffer(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.UpdatePassword(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthHandlerSuite) TestGoogleAuthURL_Success() {
	s.authService.EXPECT().
		GoogleAuthURL("state123").
		Return("https://accounts.google.com/o/oauth2/auth?state=state123", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google?state=state123", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GoogleAuthURL(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "accounts.google.com")
}

func (s *AuthHandlerSuite) TestGoogleAuthURL_NotConfigured() {
	s.authService.EXPECT().
		GoogleAuthURL(gomock.Any()).
		Return("", services.ErrOAuthNotConfigured)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/google", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GoogleAuthURL(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_007")
}
