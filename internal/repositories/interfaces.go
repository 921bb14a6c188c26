package repositories

import (
	"time"

	"accubooks/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id, userID uuid.UUID) (*models.Category, error)
	ListByUser(userID uuid.UUID) ([]models.Category, error)
	ListByUserAndKind(userID uuid.UUID, kind string) ([]models.Category, error)
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Category, error)
	Delete(id, userID uuid.UUID) error
}

// IncomeRepositoryInterface defines the contract for income entry repository operations
type IncomeRepositoryInterface interface {
	Create(entry *models.Income) error
	GetByID(id, userID uuid.UUID) (*models.Income, error)
	ListByUser(userID uuid.UUID) ([]models.Income, error)
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Income, error)
	Delete(id, userID uuid.UUID) error
}

// PurchaseRepositoryInterface defines the contract for purchase entry repository operations
type PurchaseRepositoryInterface interface {
	Create(entry *models.Purchase) error
	GetByID(id, userID uuid.UUID) (*models.Purchase, error)
	ListByUser(userID uuid.UUID) ([]models.Purchase, error)
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Purchase, error)
	Delete(id, userID uuid.UUID) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByID(id uuid.UUID) (*models.RefreshToken, error)
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
