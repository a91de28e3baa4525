package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	apperrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// CreateTransaction records a credit or debit against one of the user's categories
func (s *transactionService) CreateTransaction(userID uuid.UUID, input *dto.CreateTransactionInput) (*models.Transaction, error) {
	if !models.IsValidTransactionType(input.Type) {
		return nil, apperrors.New(apperrors.TransactionInvalidType)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewWithMessage(apperrors.ValidationRequiredField, "Transaction description is required")
	}

	// decimal.NewFromFloat panics on NaN and infinities
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, apperrors.New(apperrors.TransactionInvalidAmount)
	}
	amount := decimal.NewFromFloat(input.Amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.New(apperrors.TransactionInvalidAmount)
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, apperrors.New(apperrors.CategoryNotFound)
	}

	// The category must exist and belong to the same user
	category, err := s.categoryRepo.GetByIDAndUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.New(apperrors.CategoryNotFound)
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	transaction := &models.Transaction{
		Type:        input.Type,
		Description: description,
		Date:        input.Date,
		Amount:      amount,
		UserID:      userID,
		CategoryID:  category.ID,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"type", transaction.Type,
		"amount", transaction.Amount)

	return transaction, nil
}

// GetTransaction returns a transaction if it exists and belongs to the user.
// A transaction owned by another user is reported as not found.
func (s *transactionService) GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDAndUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.New(apperrors.TransactionNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions returns the user's transactions, most recent date first
func (s *transactionService) ListTransactions(userID uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListTransactionsByCategory returns the user's transactions in one category
func (s *transactionService) ListTransactionsByCategory(categoryID, userID uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByCategory(categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category transactions: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction applies a partial update, touching only the supplied fields
func (s *transactionService) UpdateTransaction(transactionID, userID uuid.UUID, input *dto.UpdateTransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetTransaction(transactionID, userID)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return transaction, nil
	}

	updates := make(map[string]interface{})
	if input.Type != nil {
		if !models.IsValidTransactionType(*input.Type) {
			return nil, apperrors.New(apperrors.TransactionInvalidType)
		}
		updates["type"] = *input.Type
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, apperrors.NewWithMessage(apperrors.ValidationRequiredField, "Transaction description is required")
		}
		updates["description"] = description
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Amount != nil {
		if math.IsNaN(*input.Amount) || math.IsInf(*input.Amount, 0) {
			return nil, apperrors.New(apperrors.TransactionInvalidAmount)
		}
		amount := decimal.NewFromFloat(*input.Amount)
		if amount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.New(apperrors.TransactionInvalidAmount)
		}
		updates["amount"] = amount
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			return nil, apperrors.New(apperrors.CategoryNotFound)
		}
		category, err := s.categoryRepo.GetByIDAndUser(categoryID, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.New(apperrors.CategoryNotFound)
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		updates["category_id"] = category.ID
	}

	if err := s.transactionRepo.UpdateFields(transaction.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.GetTransaction(transactionID, userID)
}

// DeleteTransaction removes one of the user's transactions
func (s *transactionService) DeleteTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.GetTransaction(transactionID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Delete(transaction.ID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.logger.Info("transaction deleted", "transaction_id", transaction.ID, "user_id", userID)

	return transaction, nil
}
