package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/dto"
	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/service"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// AuthHandler exposes login, logout and the current identity.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validate}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("username and password required", nil)
	}

	identity, token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": identityResponse(identity),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	if err := h.auth.Logout(c.Context(), principal.TokenID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("login required")
	}
	return c.JSON(fiber.Map{"data": identityResponse(&principal.Identity)})
}

func identityResponse(identity *domain.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:         identity.ID,
		Username:   identity.Username,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       identity.Role,
		Department: identity.Department,
		Tag:        identity.Tag,
	}
}
