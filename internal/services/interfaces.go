package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for registration and login
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines JWT generation and validation
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// PasswordServiceInterface defines password hashing and verification
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// CategoryServiceInterface defines category operations scoped to their owner
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, input *dto.CreateCategoryInput) (*models.Category, error)
	GetCategory(categoryID, userID uuid.UUID) (*models.Category, error)
	ListCategories(userID uuid.UUID) ([]models.Category, error)
	UpdateCategory(categoryID, userID uuid.UUID, input *dto.UpdateCategoryInput) (*models.Category, error)
	DeleteCategory(categoryID, userID uuid.UUID) (*models.Category, error)
}

// TransactionServiceInterface defines transaction operations scoped to their owner
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, input *dto.CreateTransactionInput) (*models.Transaction, error)
	GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID) ([]models.Transaction, error)
	ListTransactionsByCategory(categoryID, userID uuid.UUID) ([]models.Transaction, error)
	UpdateTransaction(transactionID, userID uuid.UUID, input *dto.UpdateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
