package services

import (
	"context"
	"time"

	"accubooks/internal/dto"
	"accubooks/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
	GoogleAuthURL(state string) (string, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	ListCategories(userID uuid.UUID, kind string) ([]models.Category, error)
	GetCategory(id, userID uuid.UUID) (*models.Category, error)
	UpdateCategory(id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id, userID uuid.UUID) error
}

// IncomeServiceInterface defines income entry management operations
type IncomeServiceInterface interface {
	CreateEntry(userID uuid.UUID, req *dto.CreateIncomeRequest) (*models.Income, error)
	ListEntries(userID uuid.UUID) ([]models.Income, error)
	GetEntry(id, userID uuid.UUID) (*models.Income, error)
	UpdateEntry(id, userID uuid.UUID, req *dto.UpdateIncomeRequest) (*models.Income, error)
	DeleteEntry(id, userID uuid.UUID) error
}

// PurchaseServiceInterface defines purchase entry management operations
type PurchaseServiceInterface interface {
	CreateEntry(userID uuid.UUID, req *dto.CreatePurchaseRequest) (*models.Purchase, error)
	ListEntries(userID uuid.UUID) ([]models.Purchase, error)
	GetEntry(id, userID uuid.UUID) (*models.Purchase, error)
	UpdateEntry(id, userID uuid.UUID, req *dto.UpdatePurchaseRequest) (*models.Purchase, error)
	DeleteEntry(id, userID uuid.UUID) error
}

// ReportingServiceInterface defines the pure aggregation functions behind the
// analytics endpoints. Implementations must not touch storage.
type ReportingServiceInterface interface {
	ComputeSummary(income []models.Income, purchases []models.Purchase) *models.FinancialSummary
	ComputeCategoryBreakdown(income []models.Income, purchases []models.Purchase) *models.CategoryBreakdown
	ComputeMonthlyTrends(income []models.Income, purchases []models.Purchase) []models.MonthlyTrend
}

// AnalyticsServiceInterface fetches a user's entries and runs the reports
type AnalyticsServiceInterface interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.FinancialSummary, error)
	GetCategoryBreakdown(ctx context.Context, userID uuid.UUID) (*models.CategoryBreakdown, error)
	GetMonthlyTrends(ctx context.Context, userID uuid.UUID) ([]models.MonthlyTrend, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
