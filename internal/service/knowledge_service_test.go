package service

import (
	"context"
	"testing"

	"github.com/grancoffee/helpdesk-service/internal/repository"
	"github.com/grancoffee/helpdesk-service/internal/seed"
)

func newSeededKnowledgeService() *KnowledgeService {
	return NewKnowledgeService(repository.NewMemoryKnowledgeRepository(seed.KnowledgeArticles()))
}

func TestSearchMatchesByKeyword(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "impressora", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 article, got %d", len(results))
	}
	if results[0].Title != "Resolver problemas de impressora" {
		t.Fatalf("wrong article: %s", results[0].Title)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "  IMPRESSORA  ", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 article, got %d", len(results))
	}
}

func TestSearchMatchesWhenQueryContainsKeyword(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "meu computador não liga mais", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected the boot troubleshooting article to match")
	}
	if results[0].Title != "Como resolver problemas de computador que não liga" {
		t.Fatalf("wrong first article: %s", results[0].Title)
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "xyzzy sem correspondência", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %d", len(results))
	}
}

func TestSearchCategoryRestriction(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "", "Rede")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected network articles")
	}
	for _, article := range results {
		if article.Category != "Rede" {
			t.Fatalf("article outside category: %s (%s)", article.Title, article.Category)
		}
	}

	mismatched, err := svc.Search(context.Background(), "impressora", "Rede")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(mismatched) != 0 {
		t.Fatalf("category filter not applied before matching")
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	svc := newSeededKnowledgeService()

	results, err := svc.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != len(seed.KnowledgeArticles()) {
		t.Fatalf("expected every article, got %d", len(results))
	}
}
