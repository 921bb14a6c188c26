package database

import (
	"fmt"
	"testing"

	"accubooks/internal/config"
	"accubooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name, kind string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestIncome(t *testing.T, db *DB, userID uuid.UUID, categoryID *uuid.UUID, amount, date string) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	}

	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income entry: %v", err)
	}

	return income
}

func CreateTestPurchase(t *testing.T, db *DB, userID uuid.UUID, categoryID *uuid.UUID, name, amount, date string) *models.Purchase {
	t.Helper()

	purchase := &models.Purchase{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	}

	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("failed to create test purchase entry: %v", err)
	}

	return purchase
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"income",
		"purchases",
		"categories",
		"blacklisted_tokens",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
