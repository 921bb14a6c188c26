package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEntryDate(t *testing.T) {
	valid := []string{"2024-01-01", "2023-12-31", "2024-02-29"}
	for _, date := range valid {
		assert.True(t, IsValidEntryDate(date), "expected %s to be valid", date)
	}

	invalid := []string{"", "2024-1-1", "01/02/2024", "2024-13-01", "2023-02-29", "2024-01-01T00:00:00Z", "not-a-date"}
	for _, date := range invalid {
		assert.False(t, IsValidEntryDate(date), "expected %s to be invalid", date)
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey("2024-03-15"))
	assert.Equal(t, "2023-12", MonthKey("2023-12-01"))
	assert.Equal(t, "2024-03", MonthKey("2024-03"))
	assert.Equal(t, "2024", MonthKey("2024"))
}

func TestToday(t *testing.T) {
	assert.True(t, IsValidEntryDate(Today()))
}

func TestIncomeValidate(t *testing.T) {
	entry := &Income{
		UserID: uuid.New(),
		Amount: decimal.RequireFromString("100.00"),
		Date:   "2024-03-01",
	}
	assert.NoError(t, entry.Validate())

	entry.Amount = decimal.RequireFromString("-1.00")
	assert.ErrorIs(t, entry.Validate(), ErrNegativeAmount)

	entry.Amount = decimal.Zero
	assert.NoError(t, entry.Validate())

	entry.Date = "03/01/2024"
	assert.ErrorIs(t, entry.Validate(), ErrInvalidDate)

	entry.Date = "2024-03-01"
	entry.UserID = uuid.Nil
	assert.ErrorIs(t, entry.Validate(), ErrMissingUser)
}

func TestPurchaseValidate(t *testing.T) {
	entry := &Purchase{
		UserID: uuid.New(),
		Name:   "Coffee",
		Amount: decimal.RequireFromString("4.50"),
		Date:   "2024-03-01",
	}
	assert.NoError(t, entry.Validate())

	entry.Name = ""
	assert.Error(t, entry.Validate())

	entry.Name = "Coffee"
	entry.Amount = decimal.RequireFromString("-4.50")
	assert.ErrorIs(t, entry.Validate(), ErrNegativeAmount)
}

func TestCategoryValidateAndKinds(t *testing.T) {
	category := &Category{
		UserID: uuid.New(),
		Name:   "Groceries",
		Kind:   CategoryKindPurchase,
	}
	assert.NoError(t, category.Validate())

	category.Kind = "expense"
	assert.ErrorIs(t, category.Validate(), ErrInvalidCategoryKind)

	category.Kind = CategoryKindIncome
	category.Name = ""
	assert.Error(t, category.Validate())

	assert.True(t, IsValidCategoryKind("income"))
	assert.True(t, IsValidCategoryKind("purchase"))
	assert.False(t, IsValidCategoryKind("Income"))
	assert.False(t, IsValidCategoryKind(""))
}

func TestUserLockout(t *testing.T) {
	user := &User{Email: "user@example.com"}

	for i := 0; i < MaxFailedLoginAttempts-1; i++ {
		user.IncrementFailedAttempts()
		assert.False(t, user.IsLocked())
	}

	user.IncrementFailedAttempts()
	assert.True(t, user.IsLocked())

	user.Unlock()
	assert.False(t, user.IsLocked())
	assert.Equal(t, 0, user.FailedLoginAttempts)
}
