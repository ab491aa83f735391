package domain

// KnowledgeArticle is a static, keyword-tagged help article. The article set
// is read-only and returned in insertion order.
type KnowledgeArticle struct {
	ID       string
	Title    string
	Content  string
	Keywords []string
	Category string
}
