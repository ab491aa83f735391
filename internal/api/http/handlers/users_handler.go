package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/dto"
	"github.com/grancoffee/helpdesk-service/internal/repository"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// UsersHandler exposes the static user directory.
type UsersHandler struct {
	directory repository.UserDirectory
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directory repository.UserDirectory) *UsersHandler {
	return &UsersHandler{directory: directory}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.directory.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserDetailResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.UserDetailResponse{
			ID:         user.ID,
			Name:       user.Name,
			Tag:        user.Tag,
			Email:      user.Email,
			Department: user.Department,
			Superior:   user.Superior,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /users/:name, exact display-name match only.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	user, err := h.directory.GetByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("user", map[string]any{"name": name})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UserDetailResponse{
		ID:         user.ID,
		Name:       user.Name,
		Tag:        user.Tag,
		Email:      user.Email,
		Department: user.Department,
		Superior:   user.Superior,
	}})
}
