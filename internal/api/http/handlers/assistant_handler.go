package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/dto"
	"github.com/grancoffee/helpdesk-service/internal/assistant"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// AssistantHandler exposes the scripted chat assistant.
type AssistantHandler struct {
	responder assistant.Responder
	validate  *validator.Validate
}

// NewAssistantHandler constructs handler.
func NewAssistantHandler(responder assistant.Responder, validate *validator.Validate) *AssistantHandler {
	return &AssistantHandler{responder: responder, validate: validate}
}

// Message handles POST /assistant/messages.
func (h *AssistantHandler) Message(c *fiber.Ctx) error {
	var req dto.AssistantMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("message required", nil)
	}

	reply, err := h.responder.Reply(c.Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AssistantReplyResponse{Reply: reply}})
}
