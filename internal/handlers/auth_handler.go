package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if code := errors.CodeOf(err); code != errors.SystemInternalError {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.UserProfileResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		Message: "User registered successfully",
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if code := errors.CodeOf(err); code != errors.SystemInternalError {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}
