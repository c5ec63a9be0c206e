package usecase

import (
	"fmt"
	"strings"

	"github.com/pocketai/backend/internal/domain"
)

// recommendationSystemPrompt constrains the generator to catalog-only
// recommendations with extractable "Product ID: N" markers and per-product
// relevance scores.
const recommendationSystemPrompt = `You are Pocket AI, a product recommendation specialist for an e-commerce platform. Your task is to accurately match user requests to relevant products from our catalog and provide detailed, persuasive recommendations.

CRITICAL RULES:
1. You MUST ONLY recommend products that are in our catalog
2. You MUST use the EXACT product names from the catalog WITHOUT ANY CHANGES
3. DO NOT invent products or modify product names in any way
4. DO NOT paraphrase or abbreviate product names
5. When listing a product name, it must match the catalog EXACTLY character-for-character
6. NEVER suggest products that aren't in the catalog, even as alternatives
7. ONLY recommend products that are HIGHLY RELEVANT to the user's query - do not suggest loosely related products
8. If you can't find at least 2 highly relevant products, it's better to recommend just 1 perfect match than multiple mediocre matches
9. NEVER use phrases like "I couldn't find a product named X" - only recommend actual products
10. For each product, assign a relevance score from 1-100 based on how well it matches the query (include this in your reasoning)`

// imageMatchSystemPrompt sets the persona for matching catalog products
// against an image description.
const imageMatchSystemPrompt = `You are Pocket AI, a product matching specialist for an e-commerce platform. Your task is to find products in our catalog that match what's shown in a user's image.`

// fallbackRecommendSystemPrompt is used when image analysis is unavailable.
const fallbackRecommendSystemPrompt = `You are Pocket AI, a product recommendation specialist for an e-commerce platform.`

// recommendationPrompt builds the message sequence for a text-query
// recommendation against the serialized catalog.
func recommendationPrompt(query, catalogSummary string) []domain.Message {
	user := fmt.Sprintf(`I'm looking for: %q.

Here is our EXACT product catalog with IDs, names, and details:
%s

Based on my request, recommend ONLY products that are HIGHLY RELEVANT to what I'm looking for. ONLY recommend products that EXACTLY match names in the catalog above.

For each recommendation, structure your response like this:

## [EXACT PRODUCT NAME] ($PRICE)

### Perfect Match Because:
- [Relevance Score: X/100] - Explain why you assigned this score
- [First reason this product matches my query]
- [Second reason this product matches my query]
- [Third reason this product matches my query]

Product ID: [PRODUCT_ID]`, query, catalogSummary)

	return []domain.Message{
		{Role: domain.RoleSystem, Content: recommendationSystemPrompt},
		{Role: domain.RoleUser, Content: user},
	}
}

// imageMatchPrompt builds the message sequence asking the generator to pick
// 3 catalog products for an analyzed image.
func imageMatchPrompt(imageDescription, catalogSummary string) []domain.Message {
	user := fmt.Sprintf(`Based on this description of an image: %q

Here are the available products in our catalog:
%s

Find exactly 3 products from our catalog that best match what's shown in the image. For each product:
1. Clearly state the product ID number (e.g., "Product ID: 7")
2. Explain specifically why this product matches the image
3. Highlight the features that are similar to what's in the image

Format your response to clearly highlight the product IDs so they can be easily extracted. Be accurate and precise in your matching.`, imageDescription, catalogSummary)

	return []domain.Message{
		{Role: domain.RoleSystem, Content: imageMatchSystemPrompt},
		{Role: domain.RoleUser, Content: user},
	}
}

// fallbackMatchPrompt asks for diverse picks when the image could not be
// analyzed.
func fallbackMatchPrompt(catalogSummary string) []domain.Message {
	user := fmt.Sprintf(`A user has uploaded an image, but we can't analyze it directly. Let's recommend some diverse products that might be useful.

Here are the available products in our catalog:
%s

Please recommend 3 diverse products from different categories that a typical shopper might be interested in. For each product:
1. Clearly state the product ID number (e.g., "Product ID: 7")
2. Explain why this product would appeal to shoppers
3. Mention its key features and benefits

Format your response to clearly highlight the product IDs so they can be easily extracted.`, catalogSummary)

	return []domain.Message{
		{Role: domain.RoleSystem, Content: fallbackRecommendSystemPrompt},
		{Role: domain.RoleUser, Content: user},
	}
}

// EnhancedCatalogSummary serializes the catalog as multi-line blocks with
// derived Features/Available Colors/Use Cases, for prompts that benefit
// from richer product context.
func EnhancedCatalogSummary(products []domain.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		block := fmt.Sprintf("Product ID: %d - %s ($%.2f)\nCategory: %s\nType: %s\nDescription: %s - %s %s - %s\nFeatures: %s\nAvailable Colors: %s\nUse Cases: %s\n",
			p.ID, p.Name, p.Price,
			p.Category,
			p.Type,
			p.Name, p.Category, p.Type, strings.Join(p.Tags, ", "),
			strings.Join(ProductFeatures(p), ", "),
			strings.Join(ProductColors(p), ", "),
			strings.Join(ProductUseCases(p), ", "))
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}
