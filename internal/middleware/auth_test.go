package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareSuite struct {
	suite.Suite
	echo         *echo.Echo
	tokenService services.TokenServiceInterface
	user         *models.User
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupSuite() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.tokenService = services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: 15 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})
	s.user = &models.User{ID: uuid.New(), Email: "user@example.com", Name: "Test User"}
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *AuthMiddlewareSuite) invoke(authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seenUserID uuid.UUID
	handler := RequireAuth(s.tokenService)(func(c echo.Context) error {
		seenUserID, _ = c.Get(handlers.UserIDContextKey).(uuid.UUID)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return rec, seenUserID
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	rec, seenUserID := s.invoke("Bearer " + token)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.user.ID, seenUserID)
}

func (s *AuthMiddlewareSuite) TestMissingHeader() {
	rec, _ := s.invoke("")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestMalformedHeader() {
	rec, _ := s.invoke("Basic abc123")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestGarbageToken() {
	rec, _ := s.invoke("Bearer not.a.token")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestExpiredToken() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	jwtConfig := &config.JWTConfig{
		AccessTokenDuration: -time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	}
	token, _, err := services.NewTokenService(jwtConfig).GenerateAccessToken(s.user)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	expired := services.NewTokenService(jwtConfig)
	handler := RequireAuth(expired)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.errorCode(rec))
}
