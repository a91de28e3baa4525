package repositories

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CategoryRepositoryInterface defines the contract for category repository
// operations. All lookups are owner-scoped: a category id paired with the
// wrong user id behaves exactly like a missing row.
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByIDAndUser(id, userID uuid.UUID) (*models.Category, error)
	GetByUser(userID uuid.UUID) ([]models.Category, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction
// repository operations, owner-scoped like categories.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetByUser(userID uuid.UUID) ([]models.Transaction, error)
	GetByCategory(categoryID, userID uuid.UUID) ([]models.Transaction, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	CountByCategory(categoryID uuid.UUID) (int64, error)
}
