package usecase

import (
	"context"
	"log"

	"github.com/pocketai/backend/internal/domain"
)

// Degraded-mode texts returned when a collaborator fails mid-request.
const (
	chatFallbackReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

	limitedAnalysisDescription = "Image analysis is currently limited. We've selected some products based on popular categories."

	noRelevantMatchMessage = "No highly relevant product matches found for your query. Please try a different search term."
)

// RecommendationServiceConfig holds configuration for the recommendation
// service and its sub-components.
type RecommendationServiceConfig struct {
	LowConfidenceThreshold int
	MinRelevanceScore      int
	EnableDebugLogging     bool
}

// RecommendationService orchestrates the recommendation flows: text-query
// recommendation, image search, local best-match selection and general
// chat. All catalog computation is pure; the only shared mutable state is
// the session store.
type RecommendationService struct {
	repo      domain.ProductRepository
	sessions  domain.SessionStore
	generator domain.Generator
	analyzer  domain.ImageAnalyzer

	scorer    *Scorer
	selector  *Selector
	extractor *Extractor

	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service with its
// dependencies
func NewRecommendationService(
	repo domain.ProductRepository,
	sessions domain.SessionStore,
	generator domain.Generator,
	analyzer domain.ImageAnalyzer,
	config RecommendationServiceConfig,
) *RecommendationService {
	scorer := NewScorer(ScorerConfig{EnableDebugLogging: config.EnableDebugLogging})

	return &RecommendationService{
		repo:      repo,
		sessions:  sessions,
		generator: generator,
		analyzer:  analyzer,
		scorer:    scorer,
		selector: NewSelector(scorer, SelectorConfig{
			LowConfidenceThreshold: config.LowConfidenceThreshold,
			EnableDebugLogging:     config.EnableDebugLogging,
		}),
		extractor: NewExtractor(ExtractorConfig{
			MinRelevanceScore:  config.MinRelevanceScore,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Chat runs one conversation turn: append the user message, ask the
// generator with the full session history, append and return the reply.
// Generator failures degrade to a canned reply rather than an error.
func (s *RecommendationService) Chat(ctx context.Context, sessionID, message string) (*domain.ChatResponse, error) {
	if message == "" {
		return nil, domain.ErrInvalidRequest
	}

	sessionID, _ = s.sessions.GetOrCreate(sessionID)
	s.sessions.Append(sessionID, domain.Message{Role: domain.RoleUser, Content: message})

	reply, err := s.generator.Chat(ctx, s.sessions.Messages(sessionID))
	if err != nil || len(reply) < 10 {
		if err != nil {
			log.Printf("[RECOMMEND] Chat generation failed: %v", err)
		}
		reply = chatFallbackReply
	}
	s.sessions.Append(sessionID, domain.Message{Role: domain.RoleAssistant, Content: reply})

	return &domain.ChatResponse{SessionID: sessionID, Reply: reply}, nil
}

// RecommendByQuery asks the generator for catalog recommendations matching
// a text query, then independently re-extracts and validates the mentioned
// product ids and applies the relevance-score filter. An empty post-filter
// result is an expected outcome, reported via the Error field.
func (s *RecommendationService) RecommendByQuery(ctx context.Context, sessionID, query string) (*domain.RecommendResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}
	if len(s.repo.All()) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	sessionID, _ = s.sessions.GetOrCreate(sessionID)

	text, err := s.generator.Chat(ctx, recommendationPrompt(query, s.repo.Summary()))
	if err != nil {
		return nil, err
	}

	ids, err := s.extractor.ExtractProductIDs(text, s.repo, DefaultMaxExtractedIDs)
	if err != nil {
		return nil, err
	}
	ids = s.extractor.FilterByRelevance(ids, text)

	products := s.resolveProducts(ids)
	if len(products) == 0 {
		log.Printf("[RECOMMEND] No highly relevant product matches found for query %q", query)
		return &domain.RecommendResponse{
			SessionID:          sessionID,
			RecommendationText: text,
			Products:           []domain.Product{},
			Error:              noRelevantMatchMessage,
		}, nil
	}

	return &domain.RecommendResponse{
		SessionID:          sessionID,
		RecommendationText: text,
		Products:           products,
	}, nil
}

// ImageSearch analyzes an uploaded image and asks the generator to pick 3
// catalog products for it. Every collaborator failure degrades: a failed
// analysis uses the fallback prompt, unusable match text falls through to
// diversity sampling.
func (s *RecommendationService) ImageSearch(ctx context.Context, sessionID, imagePath string) (*domain.ImageSearchResponse, error) {
	if len(s.repo.All()) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	sessionID, _ = s.sessions.GetOrCreate(sessionID)

	description, analysisErr := s.analyzer.AnalyzeProductImage(ctx, imagePath)
	useVision := analysisErr == nil && description != ""
	if !useVision {
		log.Printf("[RECOMMEND] Image analysis unavailable: %v", analysisErr)
		description = limitedAnalysisDescription
	}

	// Image matching gets the enhanced catalog blocks: the extra
	// features/colors/use-case lines give the generator more surface to
	// match a visual description against.
	var prompt []domain.Message
	if useVision {
		prompt = imageMatchPrompt(description, EnhancedCatalogSummary(s.repo.All()))
	} else {
		prompt = fallbackMatchPrompt(s.repo.Summary())
	}

	explanation, err := s.generator.Chat(ctx, prompt)
	if err != nil {
		// Extraction degrades to diversity sampling on empty text.
		log.Printf("[RECOMMEND] Match generation failed: %v", err)
		explanation = ""
	}

	ids, err := s.extractor.ExtractProductIDs(explanation, s.repo, DefaultMaxExtractedIDs)
	if err != nil {
		return nil, err
	}

	products := s.resolveProducts(ids)
	if len(products) == 0 {
		products = s.repo.RandomProducts(DefaultMaxExtractedIDs)
	}

	return &domain.ImageSearchResponse{
		SessionID:        sessionID,
		ImageDescription: description,
		MatchExplanation: explanation,
		Products:         products,
	}, nil
}

// ProductMatch analyzes an uploaded image and selects the single best
// catalog product with the local heuristic scorer, independent of the
// generator's opinion.
func (s *RecommendationService) ProductMatch(ctx context.Context, sessionID, imagePath string) (*domain.ImageSearchResponse, error) {
	sessionID, _ = s.sessions.GetOrCreate(sessionID)

	description, err := s.analyzer.AnalyzeProductImage(ctx, imagePath)
	if err != nil || description == "" {
		log.Printf("[RECOMMEND] Image analysis unavailable: %v", err)
		description = limitedAnalysisDescription
	}

	match, err := s.selector.BestMatch(s.repo.All(), description)
	if err != nil {
		return nil, err
	}

	return &domain.ImageSearchResponse{
		SessionID:        sessionID,
		ImageDescription: description,
		MatchExplanation: match.Explanation,
		Products:         []domain.Product{match.Product},
	}, nil
}

// Scorer exposes the underlying relevance scorer for callers that need raw
// rankings.
func (s *RecommendationService) Scorer() *Scorer {
	return s.scorer
}

func (s *RecommendationService) resolveProducts(ids []int) []domain.Product {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.repo.ByID(id); ok {
			products = append(products, p)
		}
	}
	return products
}
