package services

import (
	"errors"
	"fmt"
	"regexp"

	"fintrack/internal/config"

	"golang.org/x/crypto/bcrypt"
)

const MaxPasswordLength = 72 // Bcrypt algorithm limitation

var (
	ErrPasswordEmpty    = errors.New("password cannot be empty")
	ErrPasswordTooLong  = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoLetter = errors.New("password must contain at least one letter")
	ErrPasswordNoNumber = errors.New("password must contain at least one number")

	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	numberRegex = regexp.MustCompile(`[0-9]`)
)

// PasswordService handles password hashing and validation
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a password service from security configuration
func NewPasswordService(securityConfig *config.SecurityConfig) PasswordServiceInterface {
	return &PasswordService{
		cost:      securityConfig.BCryptCost,
		minLength: securityConfig.PasswordMinLength,
	}
}

// ValidatePassword checks if a password meets the security requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < ps.minLength {
		return fmt.Errorf("password must be at least %d characters", ps.minLength)
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if !letterRegex.MatchString(password) {
		return ErrPasswordNoLetter
	}

	if !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword compares a plain password with a hashed password.
// Returns true if they match, false otherwise.
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
