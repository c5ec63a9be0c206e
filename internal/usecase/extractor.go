package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/pocketai/backend/internal/domain"
)

// defaultMinRelevanceScore is the inclusive threshold below which a product
// with a recovered relevance score is discarded.
const defaultMinRelevanceScore = 70

// DefaultMaxExtractedIDs is the usual cap on ids recovered from one
// recommendation text.
const DefaultMaxExtractedIDs = 3

// Package-level compiled regex patterns for performance
var (
	productIDPattern      = regexp.MustCompile(`(?i)product\s+id:\s*(\d+)`)
	relevanceScorePattern = regexp.MustCompile(`(?i)relevance\s+score:\s*(\d+)\s*/\s*100`)
)

// ExtractorConfig holds configuration for the recommendation parser
type ExtractorConfig struct {
	MinRelevanceScore  int
	EnableDebugLogging bool
}

// Extractor mines product ids and relevance scores out of free-form
// generator output and reconciles them against the catalog. The input text
// is untrusted: it may contain zero, one or many purported ids, malformed
// scores, or hallucinated product names. Bad text never produces an error,
// only degraded results.
type Extractor struct {
	minRelevanceScore  int
	enableDebugLogging bool
}

// NewExtractor creates a new recommendation parser
func NewExtractor(config ExtractorConfig) *Extractor {
	minScore := config.MinRelevanceScore
	if minScore <= 0 {
		minScore = defaultMinRelevanceScore
	}
	return &Extractor{
		minRelevanceScore:  minScore,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ExtractProductIDs recovers up to maxCount unique, catalog-validated
// product ids from recommendation text. Passes, in strict priority order:
// the "Product ID: N" pattern, exact product names appearing verbatim, and
// finally diversity-first random sampling so a non-empty catalog never
// yields an empty result.
func (e *Extractor) ExtractProductIDs(text string, repo domain.ProductRepository, maxCount int) ([]int, error) {
	products := repo.All()
	if len(products) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if maxCount <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	var ids []int
	seen := make(map[int]bool)

	// Pass 1: "Product ID: N" mentions, first appearance order, invalid
	// ids silently dropped.
	for _, match := range productIDPattern.FindAllStringSubmatch(text, -1) {
		id, err := strconv.Atoi(match[1])
		if err != nil || seen[id] {
			continue
		}
		if _, ok := repo.ByID(id); !ok {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	// Pass 2: exact product names appearing verbatim in the text, in
	// catalog order.
	if len(ids) < maxCount {
		for _, p := range products {
			if seen[p.ID] {
				continue
			}
			if strings.Contains(text, p.Name) {
				seen[p.ID] = true
				ids = append(ids, p.ID)
				if len(ids) >= maxCount {
					break
				}
			}
		}
	}

	// Pass 3: nothing recognizable at all, fall back to diversity sampling.
	if len(ids) == 0 {
		if e.enableDebugLogging {
			log.Printf("[EXTRACT] No product ids found in text, using random products")
		}
		for _, p := range repo.RandomProducts(maxCount) {
			if !seen[p.ID] {
				seen[p.ID] = true
				ids = append(ids, p.ID)
			}
		}
	}

	// Defensive re-validation: drop anything the catalog cannot resolve.
	verified := ids[:0]
	for _, id := range ids {
		if _, ok := repo.ByID(id); ok {
			verified = append(verified, id)
		}
	}
	if len(verified) > maxCount {
		verified = verified[:maxCount]
	}
	return verified, nil
}

// RelevanceScores recovers the "Relevance Score: X/100" values embedded in
// the text and attributes each to a product id mention. A score pairs with
// the nearest preceding unconsumed id mention, or the nearest following one
// when no preceding mention exists; this handles both id-before-score and
// score-before-id layouts. Last assignment per id wins.
func (e *Extractor) RelevanceScores(text string) map[int]int {
	idMatches := productIDPattern.FindAllStringSubmatchIndex(text, -1)
	scoreMatches := relevanceScorePattern.FindAllStringSubmatchIndex(text, -1)
	if len(idMatches) == 0 || len(scoreMatches) == 0 {
		return nil
	}

	type mention struct {
		pos    int
		id     int
		paired bool
	}
	mentions := make([]mention, 0, len(idMatches))
	for _, m := range idMatches {
		id, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		mentions = append(mentions, mention{pos: m[0], id: id})
	}

	scores := make(map[int]int)
	for _, m := range scoreMatches {
		score, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		pos := m[0]

		best := -1
		for i := range mentions {
			if mentions[i].paired || mentions[i].pos >= pos {
				continue
			}
			if best == -1 || mentions[i].pos > mentions[best].pos {
				best = i
			}
		}
		if best == -1 {
			for i := range mentions {
				if mentions[i].paired || mentions[i].pos < pos {
					continue
				}
				if best == -1 || mentions[i].pos < mentions[best].pos {
					best = i
				}
			}
		}
		if best >= 0 {
			mentions[best].paired = true
			scores[mentions[best].id] = score
		}
	}
	return scores
}

// FilterByRelevance keeps only ids whose recovered relevance score meets the
// minimum. Ids with no recovered score pass through unconditionally. The
// filter never adds ids; it can reduce the result to empty, which callers
// must treat as "no sufficiently relevant products".
func (e *Extractor) FilterByRelevance(ids []int, text string) []int {
	scores := e.RelevanceScores(text)

	kept := make([]int, 0, len(ids))
	for _, id := range ids {
		score, scored := scores[id]
		if !scored || score >= e.minRelevanceScore {
			kept = append(kept, id)
			continue
		}
		if e.enableDebugLogging {
			log.Printf("[EXTRACT] Filtering out product %d due to low relevance score: %d", id, score)
		}
	}
	return kept
}
