package domain

// Message roles, matching the wire format expected by the generator.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a conversation session's append-only log.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for the general chat endpoint.
type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply for a chat turn.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

// RecommendRequest is the payload for text-query product recommendation.
type RecommendRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Query     string `json:"query" binding:"required"`
}

// RecommendResponse is the recommendation endpoint output. Error is set and
// Products is empty when the relevance filter removed every candidate.
type RecommendResponse struct {
	SessionID          string    `json:"sessionId"`
	RecommendationText string    `json:"recommendationText"`
	Products           []Product `json:"products"`
	Error              string    `json:"error,omitempty"`
}

// ImageSearchResponse is shared by the image-search and product-match
// endpoints; the former returns up to 3 products, the latter exactly 1.
type ImageSearchResponse struct {
	SessionID        string    `json:"sessionId"`
	ImageDescription string    `json:"imageDescription"`
	MatchExplanation string    `json:"matchExplanation"`
	Products         []Product `json:"products"`
}
