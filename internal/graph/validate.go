package graph

import (
	"errors"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/validation"

	"github.com/go-playground/validator/v10"
)

// validateInput runs the registered validation rules over a mutation input
// and maps field failures onto the domain error codes the services use, so
// GraphQL callers see the same taxonomy regardless of which layer rejects
// the value.
func validateInput(input interface{}) error {
	err := validation.GetValidator().GetValidate().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewWithMessage(apperrors.ValidationGeneral, "Invalid input")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "category_icon":
		return apperrors.New(apperrors.CategoryInvalidIcon)
	case "category_color":
		return apperrors.New(apperrors.CategoryInvalidColor)
	case "transaction_type":
		return apperrors.New(apperrors.TransactionInvalidType)
	case "gt", "positive_amount":
		return apperrors.New(apperrors.TransactionInvalidAmount)
	case "uuid":
		// A malformed category ID gets the same answer as a missing one
		return apperrors.New(apperrors.CategoryNotFound)
	case "required":
		return apperrors.NewWithMessage(apperrors.ValidationRequiredField, fe.Field()+" is required")
	default:
		return apperrors.NewWithMessage(apperrors.ValidationGeneral, "Invalid value for "+fe.Field())
	}
}
