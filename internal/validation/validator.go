package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("entry_date", validateEntryDate)
	_ = v.RegisterValidation("entry_amount", validateEntryAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCategoryKind validates that a category type is one of the allowed kinds
func validateCategoryKind(fl validator.FieldLevel) bool {
	kind := strings.ToLower(fl.Field().String())
	validKinds := map[string]bool{
		"income":   true,
		"purchase": true,
	}
	return validKinds[kind]
}

// validateHexColor validates a #rrggbb display color
func validateHexColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^#[0-9a-fA-F]{6}$`, color)
	return matched
}

// validateEntryDate validates an ISO YYYY-MM-DD calendar date
func validateEntryDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// validateEntryAmount validates that a decimal amount is not negative
func validateEntryAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !amount.IsNegative()
}
