package domain

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so products are shared freely across requests.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
	Tags     []string `json:"tags"`
	Price    float64  `json:"price"`
	Image    string   `json:"image"`
}

// ScoredProduct pairs a product with its relevance score against one
// description. Recomputed per request, never persisted.
type ScoredProduct struct {
	Product Product `json:"product"`
	Score   int     `json:"score"`
}

// MatchResult is the outcome of selecting a single best product for a
// description, including the human-readable justification block.
type MatchResult struct {
	Product     Product  `json:"product"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons,omitempty"`
	Explanation string   `json:"explanation"`
}
