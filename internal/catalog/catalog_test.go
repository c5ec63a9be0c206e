package catalog

import (
	"strings"
	"testing"

	"github.com/pocketai/backend/internal/domain"
)

func TestNew(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		c := New([]domain.Product{
			{ID: 3, Name: "Third"},
			{ID: 1, Name: "First"},
			{ID: 2, Name: "Second"},
		})

		all := c.All()
		if len(all) != 3 {
			t.Fatalf("Len = %d, want 3", len(all))
		}
		if all[0].ID != 3 || all[1].ID != 1 || all[2].ID != 2 {
			t.Errorf("order = [%d %d %d], want [3 1 2]", all[0].ID, all[1].ID, all[2].ID)
		}
	})

	t.Run("keeps first occurrence of duplicate ids", func(t *testing.T) {
		c := New([]domain.Product{
			{ID: 1, Name: "Original"},
			{ID: 1, Name: "Duplicate"},
		})

		if c.Len() != 1 {
			t.Fatalf("Len = %d, want 1", c.Len())
		}
		p, ok := c.ByID(1)
		if !ok || p.Name != "Original" {
			t.Errorf("ByID(1) = %q, want Original", p.Name)
		}
	})
}

func TestNewDefault(t *testing.T) {
	c := NewDefault()

	t.Run("contains the full built-in catalog", func(t *testing.T) {
		if c.Len() != 50 {
			t.Errorf("Len = %d, want 50", c.Len())
		}
	})

	t.Run("all ids are unique and resolvable", func(t *testing.T) {
		for _, p := range c.All() {
			got, ok := c.ByID(p.ID)
			if !ok {
				t.Fatalf("ByID(%d) not found", p.ID)
			}
			if got.Name != p.Name {
				t.Errorf("ByID(%d) = %q, want %q", p.ID, got.Name, p.Name)
			}
		}
	})

	t.Run("spans multiple categories", func(t *testing.T) {
		categories := c.Categories()
		if len(categories) < 5 {
			t.Errorf("Categories = %v, want at least 5", categories)
		}
	})
}

func TestByID(t *testing.T) {
	c := NewDefault()

	t.Run("finds existing product", func(t *testing.T) {
		p, ok := c.ByID(7)
		if !ok {
			t.Fatal("ByID(7) not found")
		}
		if p.Name != "Wireless Earbuds" {
			t.Errorf("Name = %q, want Wireless Earbuds", p.Name)
		}
	})

	t.Run("returns false for unknown id", func(t *testing.T) {
		if _, ok := c.ByID(999); ok {
			t.Error("ByID(999) found, want not found")
		}
	})

	t.Run("returns false for zero id", func(t *testing.T) {
		if _, ok := c.ByID(0); ok {
			t.Error("ByID(0) found, want not found")
		}
	})
}

func TestByCategory(t *testing.T) {
	c := NewDefault()

	t.Run("returns only products of the category", func(t *testing.T) {
		books := c.ByCategory("books")
		if len(books) == 0 {
			t.Fatal("no books in default catalog")
		}
		for _, p := range books {
			if p.Category != "books" {
				t.Errorf("product %d category = %q, want books", p.ID, p.Category)
			}
		}
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		clothing := c.ByCategory("clothing")
		for i := 1; i < len(clothing); i++ {
			if clothing[i].ID <= clothing[i-1].ID {
				t.Errorf("order broken: %d after %d", clothing[i].ID, clothing[i-1].ID)
			}
		}
	})

	t.Run("returns empty for unknown category", func(t *testing.T) {
		if got := c.ByCategory("spaceships"); len(got) != 0 {
			t.Errorf("got %d products, want 0", len(got))
		}
	})
}

func TestSearch(t *testing.T) {
	c := NewDefault()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := c.Search("WIRELESS EARBUDS")
		found := false
		for _, p := range results {
			if p.ID == 7 {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(WIRELESS EARBUDS) = %v, want to include product 7", ids(results))
		}
	})

	t.Run("matches tags", func(t *testing.T) {
		results := c.Search("moisture-wicking")
		if len(results) == 0 {
			t.Fatal("no results for tag search")
		}
		for _, p := range results {
			if p.ID == 3 {
				return
			}
		}
		t.Errorf("Search(moisture-wicking) = %v, want to include product 3", ids(results))
	})

	t.Run("matches category", func(t *testing.T) {
		results := c.Search("footwear")
		if len(results) == 0 {
			t.Error("Search(footwear) returned nothing")
		}
	})

	t.Run("returns nothing for no match", func(t *testing.T) {
		if got := c.Search("zzzznomatch"); len(got) != 0 {
			t.Errorf("got %v, want empty", ids(got))
		}
	})
}

func TestRandomProducts(t *testing.T) {
	c := NewDefault()
	c.Seed(42)

	t.Run("returns requested count", func(t *testing.T) {
		got := c.RandomProducts(3)
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("returns unique products", func(t *testing.T) {
		got := c.RandomProducts(10)
		seen := make(map[int]bool)
		for _, p := range got {
			if seen[p.ID] {
				t.Errorf("duplicate product %d", p.ID)
			}
			seen[p.ID] = true
		}
	})

	t.Run("samples from distinct categories when possible", func(t *testing.T) {
		got := c.RandomProducts(3)
		seen := make(map[string]bool)
		for _, p := range got {
			if seen[p.Category] {
				t.Errorf("category %q sampled twice in %v", p.Category, ids(got))
			}
			seen[p.Category] = true
		}
	})

	t.Run("backfills when count exceeds category count", func(t *testing.T) {
		categories := len(c.Categories())
		got := c.RandomProducts(categories + 5)
		if len(got) != categories+5 {
			t.Errorf("len = %d, want %d", len(got), categories+5)
		}
	})

	t.Run("caps at catalog size", func(t *testing.T) {
		got := c.RandomProducts(1000)
		if len(got) != c.Len() {
			t.Errorf("len = %d, want %d", len(got), c.Len())
		}
	})

	t.Run("returns nil for non-positive count", func(t *testing.T) {
		if got := c.RandomProducts(0); got != nil {
			t.Errorf("RandomProducts(0) = %v, want nil", ids(got))
		}
		if got := c.RandomProducts(-1); got != nil {
			t.Errorf("RandomProducts(-1) = %v, want nil", ids(got))
		}
	})

	t.Run("is reproducible with a fixed seed", func(t *testing.T) {
		c.Seed(7)
		first := ids(c.RandomProducts(5))
		c.Seed(7)
		second := ids(c.RandomProducts(5))
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %v vs %v", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("sample differs at %d: %v vs %v", i, first, second)
			}
		}
	})
}

func TestSummary(t *testing.T) {
	c := New([]domain.Product{
		{ID: 7, Name: "Wireless Earbuds", Category: "electronics", Type: "audio",
			Tags: []string{"wireless", "audio"}, Price: 129.99},
	})

	summary := c.Summary()
	want := "ID 7: Wireless Earbuds ($129.99) - Category: electronics, Type: audio, Tags: [wireless, audio]"
	if summary != want {
		t.Errorf("Summary = %q, want %q", summary, want)
	}
}

func TestSummaryOnePerLine(t *testing.T) {
	c := NewDefault()
	lines := strings.Split(c.Summary(), "\n")
	if len(lines) != c.Len() {
		t.Errorf("summary lines = %d, want %d", len(lines), c.Len())
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "ID ") {
			t.Errorf("line %d = %q, want ID prefix", i, line)
		}
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
