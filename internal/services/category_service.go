package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewCategoryService creates a category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// CreateCategory creates a category owned by the given user
func (s *categoryService) CreateCategory(userID uuid.UUID, input *dto.CreateCategoryInput) (*models.Category, error) {
	if !models.IsValidCategoryIcon(input.Icon) {
		return nil, apperrors.New(apperrors.CategoryInvalidIcon)
	}
	if !models.IsValidCategoryColor(input.Color) {
		return nil, apperrors.New(apperrors.CategoryInvalidColor)
	}

	category := &models.Category{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        input.Icon,
		Color:       input.Color,
		UserID:      userID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created", "category_id", category.ID, "user_id", userID)

	return category, nil
}

// GetCategory returns a category if it exists and belongs to the user.
// A category owned by another user is reported as not found.
func (s *categoryService) GetCategory(categoryID, userID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDAndUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.New(apperrors.CategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories returns the user's categories ordered by creation time
func (s *categoryService) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory applies a partial update, touching only the supplied fields
func (s *categoryService) UpdateCategory(categoryID, userID uuid.UUID, input *dto.UpdateCategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(categoryID, userID)
	if err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return category, nil
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Icon != nil {
		if !models.IsValidCategoryIcon(*input.Icon) {
			return nil, apperrors.New(apperrors.CategoryInvalidIcon)
		}
		updates["icon"] = *input.Icon
	}
	if input.Color != nil {
		if !models.IsValidCategoryColor(*input.Color) {
			return nil, apperrors.New(apperrors.CategoryInvalidColor)
		}
		updates["color"] = *input.Color
	}

	if err := s.categoryRepo.UpdateFields(category.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return s.GetCategory(categoryID, userID)
}

// DeleteCategory removes a category that has no linked transactions
func (s *categoryService) DeleteCategory(categoryID, userID uuid.UUID) (*models.Category, error) {
	category, err := s.GetCategory(categoryID, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.transactionRepo.CountByCategory(category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return nil, apperrors.New(apperrors.CategoryHasTransactions)
	}

	if err := s.categoryRepo.Delete(category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted", "category_id", category.ID, "user_id", userID)

	return category, nil
}
