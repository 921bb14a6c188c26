package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"accubooks/internal/config"
	"accubooks/internal/dto"
	"accubooks/internal/models"
	"accubooks/internal/repositories"
	"accubooks/internal/repositories/repository_mocks"
	"accubooks/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	userRepo             *repository_mocks.MockUserRepositoryInterface
	refreshTokenRepo     *repository_mocks.MockRefreshTokenRepositoryInterface
	blacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	passwordService      *service_mocks.MockPasswordServiceInterface
	tokenService         *service_mocks.MockTokenServiceInterface
	metrics              *service_mocks.MockMetricsRecorderInterface
	authService          AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.refreshTokenRepo = repository_mocks.NewMockRefreshTokenRepositoryInterface(s.ctrl)
	s.blacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.passwordService = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter("authentication_event", gomock.Any()).AnyTimes()
	s.authService = NewAuthService(
		s.userRepo,
		s.refreshTokenRepo,
		s.blacklistedTokenRepo,
		s.passwordService,
		s.tokenService,
		&config.OAuthConfig{},
		s.metrics,
		slog.Default(),
	)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := &dto.RegisterRequest{Email: "new@example.com", Password: "strongpass1"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)
	s.passwordService.EXPECT().HashPassword(req.Password).Return("hashed", nil)
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		s.Equal(req.Email, u.Email)
		s.Equal("hashed", u.PasswordHash)
		u.ID = uuid.New()
		return nil
	})

	user, err := s.authService.Register(req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Equal(req.Email, user.Email)
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	req := &dto.RegisterRequest{Email: "taken@example.com", Password: "strongpass1"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(&models.User{Email: req.Email}, nil)

	user, err := s.authService.Register(req, "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrUserAlreadyExists)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash"}
	req := &dto.LoginRequest{Email: user.Email, Password: "correct"}
	expiresAt := time.Now().Add(15 * time.Minute)

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword("correct", "hash").Return(true)
	s.userRepo.EXPECT().UpdateFailedLoginAttempts(user).Return(nil)
	s.tokenService.EXPECT().GenerateAccessToken(user).Return("access", expiresAt, nil)
	s.tokenService.EXPECT().GenerateRefreshToken(user.ID).Return("refresh", expiresAt.Add(24*time.Hour), nil)
	s.refreshTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.RefreshToken) error {
		s.Equal(user.ID, t.UserID)
		s.NotEqual("refresh", t.TokenHash) // stored hashed, never raw
		return nil
	})

	tokens, err := s.authService.Login(req, "127.0.0.1", "test-agent")

	s.NoError(err)
	s.Equal("access", tokens.AccessToken)
	s.Equal("refresh", tokens.RefreshToken)
	s.Equal("Bearer", tokens.TokenType)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	s.userRepo.EXPECT().GetByEmail(req.Email).Return(nil, repositories.ErrUserNotFound)

	tokens, err := s.authService.Login(req, "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordIncrementsAttempts() {
	user := &models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash"}
	req := &dto.LoginRequest{Email: user.Email, Password: "wrong"}

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.passwordService.EXPECT().ComparePassword("wrong", "hash").Return(false)
	s.userRepo.EXPECT().UpdateFailedLoginAttempts(user).Return(nil)

	tokens, err := s.authService.Login(req, "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(tokens)
	s.Equal(1, user.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_LockedAccount() {
	lockedAt := time.Now()
	user := &models.User{ID: uuid.New(), Email: "locked@example.com", LockedAt: &lockedAt}
	req := &dto.LoginRequest{Email: user.Email, Password: "whatever"}

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	tokens, err := s.authService.Login(req, "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrAccountLocked)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	s.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("invalid"))

	tokens, err := s.authService.RefreshTokens("bad", "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrInvalidRefreshToken)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RevokedStoredToken() {
	userID := uuid.New()
	claims := &models.CustomClaims{UserID: userID.String()}
	revokedAt := time.Now()
	stored := &models.RefreshToken{
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	s.tokenService.EXPECT().ValidateRefreshToken("old").Return(claims, nil)
	s.refreshTokenRepo.EXPECT().GetByTokenHash(gomock.Any()).Return(stored, nil)

	tokens, err := s.authService.RefreshTokens("old", "127.0.0.1", "test-agent")

	s.ErrorIs(err, ErrInvalidRefreshToken)
	s.Nil(tokens)
}

func (s *AuthServiceTestSuite) TestLogout_BlacklistsTokenAndRevokesRefreshTokens() {
	userID := uuid.New()
	claims := &models.CustomClaims{UserID: userID.String()}
	claims.ID = "jti-123"
	expiry := time.Now().Add(10 * time.Minute)

	s.tokenService.EXPECT().ValidateAccessToken("token").Return(claims, nil)
	s.tokenService.EXPECT().GetTokenExpiry("token").Return(expiry, nil)
	s.blacklistedTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.BlacklistedToken) error {
		s.Equal("jti-123", t.JTI)
		s.Equal(userID, t.UserID)
		return nil
	})
	s.refreshTokenRepo.EXPECT().RevokeAllForUser(userID).Return(nil)

	s.NoError(s.authService.Logout("token", "127.0.0.1", "test-agent"))
}

func (s *AuthServiceTestSuite) TestLogout_ExpiredTokenStillBlacklisted() {
	s.tokenService.EXPECT().ValidateAccessToken("expired").Return(nil, ErrExpiredToken)
	s.tokenService.EXPECT().GetJTI("expired").Return("jti-old", nil)
	s.blacklistedTokenRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.BlacklistedToken) error {
		s.Equal("jti-old", t.JTI)
		return nil
	})

	s.NoError(s.authService.Logout("expired", "127.0.0.1", "test-agent"))
}

func (s *AuthServiceTestSuite) TestGoogleAuthURL_NotConfigured() {
	url, err := s.authService.GoogleAuthURL("state123")

	s.ErrorIs(err, ErrOAuthNotConfigured)
	s.Empty(url)
}

func (s *AuthServiceTestSuite) TestGoogleAuthURL_Configured() {
	configured := NewAuthService(
		s.userRepo,
		s.refreshTokenRepo,
		s.blacklistedTokenRepo,
		s.passwordService,
		s.tokenService,
		&config.OAuthConfig{
			GoogleClientID:     "client-id",
			GoogleClientSecret: "secret",
			GoogleRedirectURL:  "https://app.example.com/callback",
		},
		s.metrics,
		slog.Default(),
	)

	url, err := configured.GoogleAuthURL("state123")

	s.NoError(err)
	s.Contains(url, "accounts.google.com")
	s.Contains(url, "state=state123")
	s.Contains(url, "client-id")
}
