package services

import (
	"errors"
	"fmt"

	"accubooks/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	BCryptCost = 12

	MinPasswordLength = 8
	MaxPasswordLength = 72 // Bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty        = errors.New("password cannot be empty")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong      = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must be different from current password")
)

// PasswordService handles password hashing and validation
type PasswordService struct {
	cost     int
	userRepo repositories.UserRepositoryInterface
}

// NewPasswordService creates a new password service with default settings
func NewPasswordService(userRepo repositories.UserRepositoryInterface) PasswordServiceInterface {
	return &PasswordService{
		cost:     BCryptCost,
		userRepo: userRepo,
	}
}

// ValidatePassword checks if a password meets the length requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword compares a plain password with a hashed password
// Returns true if they match, false otherwise
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	// bcrypt.CompareHashAndPassword is constant-time
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// UpdatePassword allows a user to change their own password
func (ps *PasswordService) UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if userID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if currentPassword == "" {
		return errors.New("current password is required")
	}

	if newPassword == "" {
		return errors.New("new password is required")
	}

	if currentPassword == newPassword {
		return ErrSamePassword
	}

	if err := ps.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := ps.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return repositories.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !ps.ComparePassword(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordWrong
	}

	hashedPassword, err := ps.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := ps.userRepo.UpdatePasswordHash(user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
