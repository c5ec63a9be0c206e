package catalog

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/pocketai/backend/internal/domain"
)

// Catalog is an immutable, ordered in-memory product repository. All read
// methods are safe for concurrent use; the only internal mutable state is
// the random source used by the diversity sampler, guarded by a mutex.
type Catalog struct {
	products []domain.Product
	byID     map[int]int // id -> index into products

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a catalog over the given products. Insertion order is
// preserved for iteration; duplicate ids keep the first occurrence.
func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// NewDefault creates a catalog with the built-in seed products.
func NewDefault() *Catalog {
	return New(seedProducts)
}

// Seed replaces the sampler's random source. Tests use this for
// reproducible diversity sampling; scoring itself has no randomness.
func (c *Catalog) Seed(seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rnd = rand.New(rand.NewSource(seed))
}

// All returns the products in catalog order. The returned slice is shared;
// callers must not mutate it.
func (c *Catalog) All() []domain.Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product by its id.
func (c *Catalog) ByID(id int) (domain.Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[idx], true
}

// ByCategory returns all products in the given category, in catalog order.
func (c *Catalog) ByCategory(category string) []domain.Product {
	var matched []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// Search returns products whose name, category, type or any tag contains
// the query, case-insensitive.
func (c *Catalog) Search(query string) []domain.Product {
	query = strings.ToLower(query)
	var matched []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Type), query) {
			matched = append(matched, p)
			continue
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// RandomProducts returns up to count products sampled diversity-first:
// categories are shuffled and one random product is taken from each, then
// the remainder is backfilled with uniformly sampled leftover products.
func (c *Catalog) RandomProducts(count int) []domain.Product {
	if count <= 0 || len(c.products) == 0 {
		return nil
	}

	byCategory := make(map[string][]domain.Product)
	for _, p := range c.products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	categories := c.Categories()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rnd.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})
	if len(categories) > count {
		categories = categories[:count]
	}

	result := make([]domain.Product, 0, count)
	chosen := make(map[int]bool)
	for _, category := range categories {
		candidates := byCategory[category]
		p := candidates[c.rnd.Intn(len(candidates))]
		result = append(result, p)
		chosen[p.ID] = true
	}

	// Backfill when there are fewer categories than requested products.
	if len(result) < count {
		var remaining []domain.Product
		for _, p := range c.products {
			if !chosen[p.ID] {
				remaining = append(remaining, p)
			}
		}
		c.rnd.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		need := count - len(result)
		if need > len(remaining) {
			need = len(remaining)
		}
		result = append(result, remaining[:need]...)
	}

	return result
}

// Summary serializes the catalog for generator prompts: one line per
// product, in catalog order.
func (c *Catalog) Summary() string {
	lines := make([]string, 0, len(c.products))
	for _, p := range c.products {
		lines = append(lines, fmt.Sprintf("ID %d: %s ($%.2f) - Category: %s, Type: %s, Tags: [%s]",
			p.ID, p.Name, p.Price, p.Category, p.Type, strings.Join(p.Tags, ", ")))
	}
	return strings.Join(lines, "\n")
}
