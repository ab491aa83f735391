package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grancoffee/helpdesk-service/internal/api/dto"
	"github.com/grancoffee/helpdesk-service/internal/service"
)

// KnowledgeHandler exposes knowledge base search.
type KnowledgeHandler struct {
	knowledge *service.KnowledgeService
}

// NewKnowledgeHandler constructs handler.
func NewKnowledgeHandler(knowledgeService *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledgeService}
}

// Search handles GET /knowledge.
func (h *KnowledgeHandler) Search(c *fiber.Ctx) error {
	articles, err := h.knowledge.Search(c.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, dto.ArticleResponse{
			ID:       article.ID,
			Title:    article.Title,
			Content:  article.Content,
			Keywords: article.Keywords,
			Category: article.Category,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
