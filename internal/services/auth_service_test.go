package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

type AuthServiceSuite struct {
	suite.Suite
	db      *database.DB
	service AuthServiceInterface
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	userRepo := repositories.NewUserRepository(s.db.DB)
	passwordService := NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4,
		PasswordMinLength: 8,
	})
	tokenService := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: 15 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})

	s.service = NewAuthService(userRepo, passwordService, tokenService, testLogger())
}

func (s *AuthServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuthServiceSuite) TestRegister() {
	user, err := s.service.Register(&dto.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	// Email is normalized to lowercase
	s.Equal("alice@example.com", user.Email)
	s.NotEqual("secret123", user.PasswordHash)
}

func (s *AuthServiceSuite) TestRegister_DuplicateEmail() {
	req := &dto.RegisterRequest{Email: "alice@example.com", Password: "secret123", Name: "Alice"}

	_, err := s.service.Register(req)
	s.Require().NoError(err)

	_, err = s.service.Register(req)
	s.True(apperrors.IsCode(err, apperrors.UserAlreadyExists))
}

func (s *AuthServiceSuite) TestRegister_WeakPassword() {
	_, err := s.service.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "short",
		Name:     "Alice",
	})
	s.True(apperrors.IsCode(err, apperrors.ValidationGeneral))
}

func (s *AuthServiceSuite) TestLogin() {
	_, err := s.service.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	s.Require().NoError(err)

	resp, err := s.service.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	s.NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.True(resp.ExpiresAt.After(time.Now()))
}

func (s *AuthServiceSuite) TestLogin_WrongPassword() {
	_, err := s.service.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	s.Require().NoError(err)

	_, err = s.service.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong-pass1"})
	s.True(apperrors.IsCode(err, apperrors.AuthInvalidCredentials))
}

func (s *AuthServiceSuite) TestLogin_UnknownEmail() {
	_, err := s.service.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	// Same error as a wrong password; the response must not reveal which accounts exist
	s.True(apperrors.IsCode(err, apperrors.AuthInvalidCredentials))
}

func (s *AuthServiceSuite) TestGetProfile() {
	user, err := s.service.Register(&dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	s.Require().NoError(err)

	profile, err := s.service.GetProfile(user.ID)
	s.NoError(err)
	s.Equal(user.Email, profile.Email)

	_, err = s.service.GetProfile(uuid.New())
	s.True(apperrors.IsCode(err, apperrors.UserNotFound))
}
