package validation

import (
	"reflect"
	"strings"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
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

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_icon", validateCategoryIcon)
	_ = v.RegisterValidation("category_color", validateCategoryColor)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

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

// validateTransactionType validates that transaction type is credit or debit
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateCategoryIcon validates that the icon is one of the supported tokens
func validateCategoryIcon(fl validator.FieldLevel) bool {
	return models.IsValidCategoryIcon(fl.Field().String())
}

// validateCategoryColor validates that the color is one of the supported tokens
func validateCategoryColor(fl validator.FieldLevel) bool {
	return models.IsValidCategoryColor(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
