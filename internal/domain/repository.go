package domain

import "context"

// ProductRepository defines read access to the immutable product catalog.
// Any backend satisfying "stable id -> product, iteration preserves
// insertion order" is conformant.
type ProductRepository interface {
	All() []Product
	ByID(id int) (Product, bool)
	ByCategory(category string) []Product
	Search(query string) []Product
	RandomProducts(count int) []Product
	Summary() string
}

// SessionStore defines the conversation store. GetOrCreate must be atomic
// per session id: an absent or unknown id yields a fresh session seeded with
// exactly one system message.
type SessionStore interface {
	GetOrCreate(sessionID string) (string, []Message)
	Append(sessionID string, msg Message)
	Messages(sessionID string) []Message
}

// Generator is the external text generation collaborator. Implementations
// own their transport failure handling; callers must tolerate arbitrary,
// malformed, or empty response text.
type Generator interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// ImageAnalyzer is the external vision collaborator producing a free-text
// description of an uploaded product image.
type ImageAnalyzer interface {
	AnalyzeProductImage(ctx context.Context, imagePath string) (string, error)
}
