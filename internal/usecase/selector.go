package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketai/backend/internal/domain"
)

// defaultLowConfidenceThreshold is the score below which the best match is
// considered unreliable and the category override kicks in.
const defaultLowConfidenceThreshold = 5

// SelectorConfig holds configuration for the match selector
type SelectorConfig struct {
	LowConfidenceThreshold int
	EnableDebugLogging     bool
}

// Selector turns scored products into a single recommended product with a
// human-readable justification block.
type Selector struct {
	scorer                 *Scorer
	lowConfidenceThreshold int
	enableDebugLogging     bool
}

// NewSelector creates a new match selector on top of the given scorer
func NewSelector(scorer *Scorer, config SelectorConfig) *Selector {
	threshold := config.LowConfidenceThreshold
	if threshold <= 0 {
		threshold = defaultLowConfidenceThreshold
	}
	return &Selector{
		scorer:                 scorer,
		lowConfidenceThreshold: threshold,
		enableDebugLogging:     config.EnableDebugLogging,
	}
}

// BestMatch selects the single best product for the description. When the
// top score is below the confidence threshold and a category was detected in
// the description, the first catalog product of the first detected category
// is preferred over the scored winner.
func (s *Selector) BestMatch(products []domain.Product, description string) (*domain.MatchResult, error) {
	if len(products) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	ranked := s.scorer.RankProducts(products, description)
	detected := s.scorer.DetectCategories(description)

	best := ranked[0]
	if best.Score < s.lowConfidenceThreshold {
		if s.enableDebugLogging {
			log.Printf("[SELECT] No good match (score %d), trying category override", best.Score)
		}
		if override, ok := firstInCategories(products, detected); ok {
			best = domain.ScoredProduct{Product: override, Score: best.Score}
		}
	}

	reasons := s.matchReasons(best.Product, description, detected)
	result := &domain.MatchResult{
		Product:     best.Product,
		Score:       best.Score,
		Reasons:     reasons,
		Explanation: s.buildExplanation(best.Product, description, reasons),
	}
	return result, nil
}

// firstInCategories returns the first product belonging to the earliest
// listed category, scanning categories in detection order.
func firstInCategories(products []domain.Product, categories []string) (domain.Product, bool) {
	for _, category := range categories {
		for _, p := range products {
			if p.Category == category {
				return p, true
			}
		}
	}
	return domain.Product{}, false
}

// matchReasons collects the matching elements between product and
// description, in priority order: category, brand, colors, tags.
func (s *Selector) matchReasons(p domain.Product, description string, detectedCategories []string) []string {
	descLower := strings.ToLower(description)
	nameLower := strings.ToLower(p.Name)

	var reasons []string

	if strings.Contains(descLower, strings.ToLower(p.Category)) {
		reasons = append(reasons, fmt.Sprintf("Category match: %s", p.Category))
	} else if containsString(detectedCategories, p.Category) {
		reasons = append(reasons, fmt.Sprintf("Category match: %s (detected from keywords)", p.Category))
	}

	for _, brand := range knownBrands {
		if strings.Contains(descLower, brand) && strings.Contains(nameLower, brand) {
			reasons = append(reasons, fmt.Sprintf("Brand match: %s", capitalize(brand)))
		}
	}

	var colorMatches []string
	for _, color := range commonColors {
		if strings.Contains(descLower, color) && productMentionsColor(p, color) {
			colorMatches = append(colorMatches, capitalize(color))
		}
	}
	if len(colorMatches) > 0 {
		reasons = append(reasons, fmt.Sprintf("Color match: %s", strings.Join(colorMatches, ", ")))
	}

	var tagMatches []string
	for _, tag := range p.Tags {
		if strings.Contains(descLower, strings.ToLower(tag)) {
			tagMatches = append(tagMatches, tag)
		}
	}
	if len(tagMatches) > 0 {
		reasons = append(reasons, fmt.Sprintf("Feature matches: %s", strings.Join(tagMatches, ", ")))
	}

	return reasons
}

// buildExplanation produces the full recommendation block: name, price, id,
// match reasons, feature/color/use-case details and a single sentence
// relating the product to the described image.
func (s *Selector) buildExplanation(p domain.Product, description string, reasons []string) string {
	features := ProductFeatures(p)
	colors := ProductColors(p)
	useCases := ProductUseCases(p)

	var b strings.Builder
	fmt.Fprintf(&b, "Best Match: %s ($%.2f)\n\n", p.Name, p.Price)
	fmt.Fprintf(&b, "Product ID: %d\n\n", p.ID)
	fmt.Fprintf(&b, "Why This Product Matches:\n")
	fmt.Fprintf(&b, "This %s product aligns with the image description because:\n", capitalize(p.Category))

	if len(reasons) > 0 {
		for _, reason := range reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
	} else {
		fmt.Fprintf(&b, "- It belongs to the %s category which could fit the item shown\n", p.Category)
		fmt.Fprintf(&b, "- It has features like %s\n", strings.Join(truncate(features, 2), ", "))
		fmt.Fprintf(&b, "- It's available in colors including %s\n", strings.Join(colors, ", "))
	}

	fmt.Fprintf(&b, "\nProduct Details:\n")
	fmt.Fprintf(&b, "- %s - %s %s\n", p.Name, capitalize(p.Category), p.Type)
	fmt.Fprintf(&b, "- Key features: %s\n", strings.Join(features, ", "))
	fmt.Fprintf(&b, "- Available colors: %s\n", strings.Join(colors, ", "))
	fmt.Fprintf(&b, "- Ideal for: %s\n", strings.Join(useCases, ", "))
	fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(p.Tags, ", "))

	fmt.Fprintf(&b, "\nHow It Relates to the Image:\n")
	fmt.Fprintf(&b, "%s\n", relatesToImage(p, description, colors))

	return b.String()
}

// relatesToImage picks exactly one sentence connecting the product to the
// image description, from a fixed decision table keyed on description
// keywords and the product's category and type.
func relatesToImage(p domain.Product, description string, colors []string) string {
	descLower := strings.ToLower(description)
	nameLower := strings.ToLower(p.Name)

	switch {
	case strings.Contains(descLower, "book") && p.Category == "books":
		if strings.Contains(nameLower, "collection") || strings.Contains(nameLower, "set") {
			return "The image shows a stack of books, and this product is a collection of books that would be similar to what's shown in the image."
		}
		return fmt.Sprintf("The image shows books, and this %s book would be a valuable addition to the collection shown.", p.Type)
	case strings.Contains(descLower, "camera") && p.Category == "electronics" && strings.Contains(p.Type, "camera"):
		return "The image shows a camera, and this product is a camera with similar features to what's shown in the image."
	case strings.Contains(descLower, "electronics") && p.Category == "electronics":
		return "The image shows an electronic device, and this product provides modern technology features to meet similar needs."
	case strings.Contains(descLower, "clothing") && p.Category == "clothing":
		return "The image shows a clothing item, and this product offers comfortable, stylish options that match that category."
	case strings.Contains(descLower, "home") && p.Category == "home":
		return "The image shows a home item, and this product would complement such household needs."
	}

	var matchingColors []string
	for _, color := range colors {
		if strings.Contains(descLower, strings.ToLower(color)) {
			matchingColors = append(matchingColors, color)
		}
	}
	if len(matchingColors) > 0 {
		return fmt.Sprintf("The image shows an item with similar coloring (%s), matching this product's aesthetic.", strings.Join(matchingColors, ", "))
	}

	return fmt.Sprintf("Based on what's shown in the image, this %s product would complement the item's use case and provide additional value.", p.Category)
}
