package service

import (
	"context"
	"strings"

	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/repository"
)

// KnowledgeService answers free-text queries against the static article set.
// Results keep the set's insertion order; there is no relevance scoring.
type KnowledgeService struct {
	articles repository.KnowledgeRepository
}

// NewKnowledgeService constructs the service.
func NewKnowledgeService(articles repository.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{articles: articles}
}

// Search returns articles matching the query, optionally restricted to a
// category. An article matches when the query and any keyword contain each
// other, or the query is a substring of the title or content. Matching is
// case-insensitive; an empty query matches everything.
func (s *KnowledgeService) Search(ctx context.Context, query, category string) ([]domain.KnowledgeArticle, error) {
	articles, err := s.articles.All(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.KnowledgeArticle, 0, len(articles))
	for _, article := range articles {
		if category != "" && article.Category != category {
			continue
		}
		if articleMatches(article, term) {
			matched = append(matched, article)
		}
	}
	return matched, nil
}

func articleMatches(article domain.KnowledgeArticle, term string) bool {
	for _, keyword := range article.Keywords {
		lowered := strings.ToLower(keyword)
		if strings.Contains(lowered, term) || strings.Contains(term, lowered) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(article.Title), term) ||
		strings.Contains(strings.ToLower(article.Content), term)
}
