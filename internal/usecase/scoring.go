package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/pocketai/backend/internal/domain"
)

// Scoring bonuses. All rules are additive; every rule that matches
// contributes, with no early exit.
const (
	categoryDetectedBonus = 20 // product category keyword-detected in description
	bookCategoryBonus     = 30 // description says "book" and product is a book
	bookKindBonus         = 20 // cookbook/programming mentioned in both
	fictionTypeBonus      = 15 // fiction/non-fiction mentioned and matches type
	exactNameBonus        = 15 // full product name appears in description
	nameWordBonus         = 3  // per name word (>3 chars) found in description
	categoryMentionBonus  = 10 // category string appears in description
	typeMentionBonus      = 8  // type string appears in description
	tagMentionBonus       = 5  // per tag found verbatim in description
	tagWordBonus          = 1  // per word (>3 chars) of a multi-word tag
	colorMatchBonus       = 3  // per color shared by description and product
	brandMatchBonus       = 10 // per brand shared by description and name

	// minMatchWordLen is the minimum length for individual word matches;
	// shorter words produce too many false positives.
	minMatchWordLen = 3
)

// knownBrands is the fixed brand token list for the brand bonus.
var knownBrands = []string{"canon", "nikon", "sony", "apple", "samsung", "google"}

// categoryKeywords maps each catalog category to the description keywords
// that detect it. Detection is substring-based with no tokenization; false
// positives on substrings are an accepted tradeoff. Kept as an ordered slice
// so the first detected category is deterministic.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"books", []string{"book", "novel", "reading", "literature", "textbook", "cookbook", "fiction", "non-fiction"}},
	{"electronics", []string{"smartphone", "phone", "laptop", "computer", "tablet", "electronic", "device", "gadget", "camera"}},
	{"home", []string{"kitchen", "home", "house", "furniture", "appliance", "decor"}},
	{"clothing", []string{"shirt", "pants", "dress", "jacket", "clothing", "wear", "fashion"}},
	{"fitness", []string{"fitness", "exercise", "workout", "gym", "training"}},
	{"accessories", []string{"accessory", "accessories", "bag", "watch", "jewelry"}},
	{"footwear", []string{"shoes", "sneakers", "boots", "footwear", "sandals"}},
	{"beauty", []string{"beauty", "skincare", "makeup", "cosmetics"}},
	{"toys", []string{"toy", "game", "gaming", "play"}},
	{"sports", []string{"sports", "athletic", "outdoor"}},
}

// ScorerConfig holds configuration for the relevance scorer
type ScorerConfig struct {
	EnableDebugLogging bool
}

// Scorer ranks catalog products against a free-text description using an
// additive heuristic rule set. Stateless and safe for concurrent use.
type Scorer struct {
	enableDebugLogging bool
}

// NewScorer creates a new relevance scorer
func NewScorer(config ScorerConfig) *Scorer {
	return &Scorer{enableDebugLogging: config.EnableDebugLogging}
}

// DetectCategories returns the categories whose keywords appear in the
// description, in the detector's fixed order.
func (s *Scorer) DetectCategories(description string) []string {
	descLower := strings.ToLower(description)

	var detected []string
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(descLower, keyword) {
				detected = append(detected, entry.category)
				break
			}
		}
	}

	if s.enableDebugLogging {
		log.Printf("[SCORE] Detected categories: %v", detected)
	}
	return detected
}

// ScoreProduct computes the non-negative relevance score of one product
// against a description. The description is case-folded once; all
// comparisons are case-insensitive substring tests.
func (s *Scorer) ScoreProduct(p domain.Product, description string, detectedCategories []string) int {
	descLower := strings.ToLower(description)
	nameLower := strings.ToLower(p.Name)
	score := 0

	if containsString(detectedCategories, p.Category) {
		score += categoryDetectedBonus
	}

	// Books get special handling: "book" in the description is a strong
	// signal, refined by the specific kind of book mentioned.
	if strings.Contains(descLower, "book") && p.Category == "books" {
		score += bookCategoryBonus
		if strings.Contains(descLower, "cookbook") && strings.Contains(nameLower, "cookbook") {
			score += bookKindBonus
		}
		if strings.Contains(descLower, "programming") && strings.Contains(nameLower, "programming") {
			score += bookKindBonus
		}
		if strings.Contains(descLower, "fiction") && strings.Contains(p.Type, "fiction") {
			score += fictionTypeBonus
		}
		if strings.Contains(descLower, "non-fiction") && strings.Contains(p.Type, "non-fiction") {
			score += fictionTypeBonus
		}
	}

	if strings.Contains(descLower, nameLower) {
		score += exactNameBonus
	} else {
		for _, word := range strings.Fields(nameLower) {
			if len(word) > minMatchWordLen && strings.Contains(descLower, word) {
				score += nameWordBonus
			}
		}
	}

	if strings.Contains(descLower, strings.ToLower(p.Category)) {
		score += categoryMentionBonus
	}
	if strings.Contains(descLower, strings.ToLower(p.Type)) {
		score += typeMentionBonus
	}

	for _, tag := range p.Tags {
		tagLower := strings.ToLower(tag)
		if strings.Contains(descLower, tagLower) {
			score += tagMentionBonus
		} else if len(tag) > minMatchWordLen {
			for _, word := range strings.Fields(tagLower) {
				if len(word) > minMatchWordLen && strings.Contains(descLower, word) {
					score += tagWordBonus
				}
			}
		}
	}

	for _, color := range commonColors {
		if strings.Contains(descLower, color) && productMentionsColor(p, color) {
			score += colorMatchBonus
		}
	}

	for _, brand := range knownBrands {
		if strings.Contains(descLower, brand) && strings.Contains(nameLower, brand) {
			score += brandMatchBonus
		}
	}

	return score
}

// RankProducts scores every product against the description and returns them
// sorted by descending score. The sort is stable: ties keep catalog order,
// so rankings are reproducible.
func (s *Scorer) RankProducts(products []domain.Product, description string) []domain.ScoredProduct {
	detected := s.DetectCategories(description)

	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.ScoredProduct{
			Product: p,
			Score:   s.ScoreProduct(p, description, detected),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if s.enableDebugLogging {
		for i := 0; i < len(scored) && i < 3; i++ {
			log.Printf("[SCORE] %s: %d", scored[i].Product.Name, scored[i].Score)
		}
	}
	return scored
}

// productMentionsColor reports whether a color appears in the product's name
// or any of its tags.
func productMentionsColor(p domain.Product, color string) bool {
	if strings.Contains(strings.ToLower(p.Name), color) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), color) {
			return true
		}
	}
	return false
}
