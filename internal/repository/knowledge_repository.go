package repository

import (
	"context"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// KnowledgeRepository exposes the static article set.
type KnowledgeRepository interface {
	All(ctx context.Context) ([]domain.KnowledgeArticle, error)
}

type memoryKnowledgeRepository struct {
	articles []domain.KnowledgeArticle
}

// NewMemoryKnowledgeRepository returns the read-only article set.
func NewMemoryKnowledgeRepository(articles []domain.KnowledgeArticle) KnowledgeRepository {
	return &memoryKnowledgeRepository{articles: append([]domain.KnowledgeArticle(nil), articles...)}
}

func (r *memoryKnowledgeRepository) All(ctx context.Context) ([]domain.KnowledgeArticle, error) {
	return append([]domain.KnowledgeArticle(nil), r.articles...), nil
}
