package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single dated monetary movement, typed as
// credit (income) or debit (expense)
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Partial updates come through as field maps; the service layer validates
	// the supplied fields before they reach the store
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// IsCredit returns true for income transactions
func (t *Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}

// IsDebit returns true for expense transactions
func (t *Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

// SignedAmount returns the amount negated for debits, as it contributes
// to a balance
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}
