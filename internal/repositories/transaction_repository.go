package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDAndUser retrieves a transaction by id scoped to its owner
func (r *transactionRepository) GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUser retrieves all transactions for a user ordered by transaction date descending
func (r *transactionRepository) GetByUser(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// GetByCategory retrieves transactions for a user filtered to a category,
// ordered by transaction date descending
func (r *transactionRepository) GetByCategory(categoryID, userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("category_id = ? AND user_id = ?", categoryID, userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions by category: %w", err)
	}
	return transactions, nil
}

// UpdateFields applies a partial update to a transaction. Fields absent from
// the map are left untouched.
func (r *transactionRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by id
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountByCategory counts how many transactions reference a category
func (r *transactionRepository) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions by category: %w", err)
	}
	return count, nil
}
