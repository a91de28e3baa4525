package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(err, c)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, resp := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("USER_001", resp.Error.Code)
	s.Equal("route not found", resp.Error.Message)
	s.Equal("test-trace-id", resp.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	input := struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}{
		Email:    "not-an-email",
		Password: "short",
	}

	err := validation.GetValidator().GetValidate().Struct(input)
	s.Require().Error(err)

	rec, resp := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Len(resp.Error.Details, 2)
}

func (s *ErrorHandlerTestSuite) TestAppError() {
	rec, resp := s.handle(errors.New(errors.CategoryNotFound))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", resp.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestConflictAppError() {
	rec, resp := s.handle(errors.New(errors.CategoryHasTransactions))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CATEGORY_002", resp.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestUnknownErrorBecomesSystemError() {
	rec, resp := s.handle(fmt.Errorf("connection reset"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", resp.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))
	CustomHTTPErrorHandler(errors.New(errors.CategoryNotFound), c)

	s.Equal(http.StatusOK, rec.Code)
}
