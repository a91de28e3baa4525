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

// authService implements AuthServiceInterface
type authService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	logger          *slog.Logger
}

// NewAuthService creates an auth service with password and token support
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Register creates a new user account with a hashed password
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.UserAlreadyExists)
	}

	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewWithMessage(apperrors.ValidationGeneral, err.Error())
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

// Login verifies credentials and issues an access token
func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.AuthInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", "email", email)
		return nil, apperrors.New(apperrors.AuthInvalidCredentials)
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GetProfile returns the user for an authenticated user ID
func (s *authService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.UserNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
