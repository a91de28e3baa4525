package dto

import "time"

// Transaction Input DTOs

// CreateTransactionInput contains the fields for recording a transaction
type CreateTransactionInput struct {
	Type        string    `json:"type" validate:"required,transaction_type"`
	Description string    `json:"description" validate:"required,min=1,max=500"`
	Date        time.Time `json:"date" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	CategoryID  string    `json:"categoryId" validate:"required,uuid"`
}

// UpdateTransactionInput contains the optional fields for a partial
// transaction update. Nil pointers leave the stored value untouched.
type UpdateTransactionInput struct {
	Type        *string    `json:"type" validate:"omitempty,transaction_type"`
	Description *string    `json:"description" validate:"omitempty,min=1,max=500"`
	Date        *time.Time `json:"date"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0"`
	CategoryID  *string    `json:"categoryId" validate:"omitempty,uuid"`
}

// IsEmpty reports whether the update carries no fields at all.
func (i *UpdateTransactionInput) IsEmpty() bool {
	return i.Type == nil && i.Description == nil && i.Date == nil && i.Amount == nil && i.CategoryID == nil
}
