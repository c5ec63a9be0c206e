package usecase

import (
	"strings"

	"github.com/pocketai/backend/internal/domain"
)

// maxExplanationItems caps feature and use-case lists so explanation text
// stays bounded.
const maxExplanationItems = 4

// commonColors is the fixed palette scanned for in tags, names and
// descriptions.
var commonColors = []string{
	"black", "white", "red", "blue", "green", "yellow", "purple", "pink",
	"orange", "brown", "gray", "silver", "gold",
}

// featureStoplist holds tags already covered by category-specific features,
// skipped to avoid duplicate or conflicting phrasing.
var featureStoplist = map[string]bool{
	"casual": true, "formal": true, "smart": true, "wireless": true,
}

// ProductFeatures derives a short feature list from a product's type, category
// and tags. Advisory only: feeds explanation text and prompt summaries, never
// the relevance score.
func ProductFeatures(p domain.Product) []string {
	features := []string{capitalize(p.Type)}

	switch p.Category {
	case "electronics":
		features = append(features, "Modern technology")
		if hasTag(p, "smart") {
			features = append(features, "Smart features")
		}
		if hasTag(p, "wireless") {
			features = append(features, "Wireless capability")
		}
	case "clothing":
		if hasTag(p, "casual") {
			features = append(features, "Casual style")
		}
		if hasTag(p, "formal") {
			features = append(features, "Formal style")
		}
		if hasTag(p, "breathable") {
			features = append(features, "Breathable fabric")
		}
	case "books":
		if hasTag(p, "fiction") {
			features = append(features, "Fiction content")
		}
		if hasTag(p, "non-fiction") {
			features = append(features, "Non-fiction content")
		}
		if hasTag(p, "education") {
			features = append(features, "Educational material")
		}
	}

	for _, tag := range p.Tags {
		if featureStoplist[tag] {
			continue
		}
		if !containsString(features, capitalize(tag)) {
			features = append(features, capitalize(tag))
		}
	}

	return truncate(features, maxExplanationItems)
}

// ProductColors extracts colors from a product's tags and name against the
// fixed palette, with category-specific defaults when none are found.
func ProductColors(p domain.Product) []string {
	var colors []string

	for _, tag := range p.Tags {
		if containsString(commonColors, strings.ToLower(tag)) {
			colors = append(colors, capitalize(tag))
		}
	}

	nameLower := strings.ToLower(p.Name)
	for _, color := range commonColors {
		if strings.Contains(nameLower, color) && !containsString(colors, capitalize(color)) {
			colors = append(colors, capitalize(color))
		}
	}

	if len(colors) == 0 {
		switch p.Category {
		case "electronics":
			colors = []string{"Black", "Silver"}
		case "books":
			colors = []string{"Multi-colored"}
		default:
			colors = []string{"Various"}
		}
	}

	return colors
}

// ProductUseCases derives typical use cases from a product's category and
// tags.
func ProductUseCases(p domain.Product) []string {
	var useCases []string

	switch p.Category {
	case "books":
		useCases = append(useCases, "Reading", "Learning", "Entertainment")
		if strings.Contains(p.Type, "education") || hasTag(p, "education") {
			useCases = append(useCases, "Study")
		}
		if strings.Contains(p.Type, "fiction") || hasTag(p, "fiction") {
			useCases = append(useCases, "Leisure reading")
		}
	case "electronics":
		useCases = append(useCases, "Technology use")
		if hasTag(p, "entertainment") {
			useCases = append(useCases, "Entertainment")
		}
	case "clothing":
		useCases = append(useCases, "Everyday wear")
		if hasTag(p, "formal") {
			useCases = append(useCases, "Professional settings")
		}
		if hasTag(p, "casual") {
			useCases = append(useCases, "Casual outings")
		}
	}

	for _, tag := range p.Tags {
		if tag == "casual" || tag == "formal" {
			continue
		}
		potential := capitalize(tag) + " activities"
		if !containsString(useCases, potential) {
			useCases = append(useCases, potential)
		}
	}

	return truncate(useCases, maxExplanationItems)
}

func hasTag(p domain.Product, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func truncate(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
