package dto

// ArticleResponse is one knowledge base article.
type ArticleResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
}

// AssistantMessageRequest is the latest chat message.
type AssistantMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// AssistantReplyResponse is the scripted reply.
type AssistantReplyResponse struct {
	Reply string `json:"reply"`
}
