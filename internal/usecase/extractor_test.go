package usecase

import (
	"errors"
	"testing"

	"github.com/pocketai/backend/internal/catalog"
	"github.com/pocketai/backend/internal/domain"
)

func testRepo() *catalog.Catalog {
	c := catalog.NewDefault()
	c.Seed(1)
	return c
}

func TestNewExtractor(t *testing.T) {
	t.Run("uses provided minimum score", func(t *testing.T) {
		e := NewExtractor(ExtractorConfig{MinRelevanceScore: 50})
		if e.minRelevanceScore != 50 {
			t.Errorf("minRelevanceScore = %d, want 50", e.minRelevanceScore)
		}
	})

	t.Run("uses default minimum score when zero", func(t *testing.T) {
		e := NewExtractor(ExtractorConfig{})
		if e.minRelevanceScore != defaultMinRelevanceScore {
			t.Errorf("minRelevanceScore = %d, want %d", e.minRelevanceScore, defaultMinRelevanceScore)
		}
	})
}

func TestExtractProductIDs(t *testing.T) {
	e := NewExtractor(ExtractorConfig{})
	repo := testRepo()

	t.Run("extracts ids in first appearance order", func(t *testing.T) {
		text := "I recommend these.\n\nProduct ID: 7\n\nAlso consider:\n\nProduct ID: 9"
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != 7 || got[1] != 9 {
			t.Errorf("ids = %v, want [7 9]", got)
		}
	})

	t.Run("matches the id pattern case-insensitively", func(t *testing.T) {
		got, err := e.ExtractProductIDs("product id: 7 and PRODUCT ID: 9", repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != 7 || got[1] != 9 {
			t.Errorf("ids = %v, want [7 9]", got)
		}
	})

	t.Run("drops ids not in the catalog", func(t *testing.T) {
		text := "Product ID: 999\nProduct ID: 7\nProduct ID: 0"
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("ids = %v, want [7]", got)
		}
	})

	t.Run("deduplicates repeated mentions", func(t *testing.T) {
		text := "Product ID: 7\nProduct ID: 7\nProduct ID: 7"
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("ids = %v, want [7]", got)
		}
	})

	t.Run("truncates to the requested maximum", func(t *testing.T) {
		text := "Product ID: 1\nProduct ID: 2\nProduct ID: 3\nProduct ID: 4\nProduct ID: 5"
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("falls back to verbatim product names", func(t *testing.T) {
		text := "You might like the Wireless Earbuds or the Running Shoes."
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != 7 || got[1] != 9 {
			t.Errorf("ids = %v, want [7 9]", got)
		}
	})

	t.Run("id mentions take priority over names", func(t *testing.T) {
		text := "Product ID: 9\nAlso the Wireless Earbuds are nice."
		got, err := e.ExtractProductIDs(text, repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != 9 || got[1] != 7 {
			t.Errorf("ids = %v, want [9 7]", got)
		}
	})

	t.Run("never returns empty for a non-empty catalog", func(t *testing.T) {
		got, err := e.ExtractProductIDs("I cannot help with that.", repo, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("ids empty, want random fallback")
		}
		if len(got) > 3 {
			t.Errorf("len = %d, want <= 3", len(got))
		}
		for _, id := range got {
			if _, ok := repo.ByID(id); !ok {
				t.Errorf("id %d not in catalog", id)
			}
		}
	})

	t.Run("returns error for empty catalog", func(t *testing.T) {
		empty := catalog.New(nil)
		_, err := e.ExtractProductIDs("Product ID: 7", empty, 3)
		if !errors.Is(err, domain.ErrEmptyCatalog) {
			t.Errorf("error = %v, want ErrEmptyCatalog", err)
		}
	})

	t.Run("returns error for non-positive max count", func(t *testing.T) {
		_, err := e.ExtractProductIDs("Product ID: 7", repo, 0)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestRelevanceScores(t *testing.T) {
	e := NewExtractor(ExtractorConfig{})

	t.Run("pairs scores following their id", func(t *testing.T) {
		text := "Product ID: 7 - Relevance Score: 85/100\nProduct ID: 9 - Relevance Score: 40/100"
		scores := e.RelevanceScores(text)
		if scores[7] != 85 || scores[9] != 40 {
			t.Errorf("scores = %v, want map[7:85 9:40]", scores)
		}
	})

	t.Run("pairs scores preceding their id", func(t *testing.T) {
		// The structured recommendation format puts the score line inside
		// the reasoning block, before the trailing id line.
		text := `## Wireless Earbuds ($129.99)

### Perfect Match Because:
- [Relevance Score: 90/100] - great fit
- light and comfortable

Product ID: 7

## Running Shoes ($89.99)

### Perfect Match Because:
- [Relevance Score: 60/100] - loosely related

Product ID: 9`
		scores := e.RelevanceScores(text)
		if scores[7] != 90 || scores[9] != 60 {
			t.Errorf("scores = %v, want map[7:90 9:60]", scores)
		}
	})

	t.Run("matches the score pattern case-insensitively with spacing", func(t *testing.T) {
		scores := e.RelevanceScores("Product ID: 7 relevance score: 85 / 100")
		if scores[7] != 85 {
			t.Errorf("scores = %v, want map[7:85]", scores)
		}
	})

	t.Run("returns nil without both ids and scores", func(t *testing.T) {
		if scores := e.RelevanceScores("Product ID: 7 with no score"); scores != nil {
			t.Errorf("scores = %v, want nil", scores)
		}
		if scores := e.RelevanceScores("Relevance Score: 85/100 with no id"); scores != nil {
			t.Errorf("scores = %v, want nil", scores)
		}
		if scores := e.RelevanceScores(""); scores != nil {
			t.Errorf("scores = %v, want nil", scores)
		}
	})

	t.Run("ignores malformed score fractions", func(t *testing.T) {
		scores := e.RelevanceScores("Product ID: 7 - Relevance Score: 85/10")
		if len(scores) != 0 {
			t.Errorf("scores = %v, want empty", scores)
		}
	})
}

func TestFilterByRelevance(t *testing.T) {
	e := NewExtractor(ExtractorConfig{})

	t.Run("keeps ids at or above the minimum", func(t *testing.T) {
		text := "Product ID: 7 - Relevance Score: 85/100\nProduct ID: 9 - Relevance Score: 40/100"
		got := e.FilterByRelevance([]int{7, 9}, text)
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("ids = %v, want [7]", got)
		}
	})

	t.Run("the minimum itself passes", func(t *testing.T) {
		got := e.FilterByRelevance([]int{7}, "Product ID: 7 - Relevance Score: 70/100")
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("ids = %v, want [7]", got)
		}
	})

	t.Run("one below the minimum is excluded", func(t *testing.T) {
		got := e.FilterByRelevance([]int{7}, "Product ID: 7 - Relevance Score: 69/100")
		if len(got) != 0 {
			t.Errorf("ids = %v, want empty", got)
		}
	})

	t.Run("unscored ids pass through", func(t *testing.T) {
		text := "Product ID: 7 - Relevance Score: 40/100\nProduct ID: 9 looks good too"
		got := e.FilterByRelevance([]int{7, 9}, text)
		if len(got) != 1 || got[0] != 9 {
			t.Errorf("ids = %v, want [9]", got)
		}
	})

	t.Run("keeps everything when the text has no scores", func(t *testing.T) {
		got := e.FilterByRelevance([]int{7, 9, 11}, "no scores here")
		if len(got) != 3 {
			t.Errorf("ids = %v, want all 3", got)
		}
	})

	t.Run("never adds ids", func(t *testing.T) {
		got := e.FilterByRelevance(nil, "Product ID: 7 - Relevance Score: 85/100")
		if len(got) != 0 {
			t.Errorf("ids = %v, want empty", got)
		}
	})

	t.Run("honors a configured minimum", func(t *testing.T) {
		lenient := NewExtractor(ExtractorConfig{MinRelevanceScore: 30})
		text := "Product ID: 7 - Relevance Score: 85/100\nProduct ID: 9 - Relevance Score: 40/100"
		got := lenient.FilterByRelevance([]int{7, 9}, text)
		if len(got) != 2 {
			t.Errorf("ids = %v, want [7 9]", got)
		}
	})
}
