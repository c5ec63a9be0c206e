package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pocketai/backend/internal/domain"
)

func TestGetOrCreate(t *testing.T) {
	t.Run("creates a fresh session for empty id", func(t *testing.T) {
		store := NewStore()

		id, msgs := store.GetOrCreate("")
		if id == "" {
			t.Fatal("id is empty, want generated id")
		}
		if len(msgs) != 1 {
			t.Fatalf("len(msgs) = %d, want exactly 1 seeded message", len(msgs))
		}
		if msgs[0].Role != domain.RoleSystem {
			t.Errorf("seed role = %q, want system", msgs[0].Role)
		}
		if msgs[0].Content == "" {
			t.Error("seed content is empty")
		}
	})

	t.Run("creates a fresh session for unknown id", func(t *testing.T) {
		store := NewStore()

		id, msgs := store.GetOrCreate("xyz")
		if id == "xyz" {
			t.Error("unknown id was adopted, want a fresh generated id")
		}
		if len(msgs) != 1 || msgs[0].Role != domain.RoleSystem {
			t.Errorf("msgs = %v, want exactly one system message", msgs)
		}
	})

	t.Run("returns existing session unchanged", func(t *testing.T) {
		store := NewStore()
		id, _ := store.GetOrCreate("")
		store.Append(id, domain.Message{Role: domain.RoleUser, Content: "hello"})

		again, msgs := store.GetOrCreate(id)
		if again != id {
			t.Errorf("id = %q, want %q", again, id)
		}
		if len(msgs) != 2 {
			t.Errorf("len(msgs) = %d, want 2", len(msgs))
		}
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		store := NewStore()
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, _ := store.GetOrCreate("")
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	})
}

func TestAppend(t *testing.T) {
	t.Run("preserves message order", func(t *testing.T) {
		store := NewStore()
		id, _ := store.GetOrCreate("")

		store.Append(id, domain.Message{Role: domain.RoleUser, Content: "first"})
		store.Append(id, domain.Message{Role: domain.RoleAssistant, Content: "second"})
		store.Append(id, domain.Message{Role: domain.RoleUser, Content: "third"})

		msgs := store.Messages(id)
		if len(msgs) != 4 {
			t.Fatalf("len = %d, want 4", len(msgs))
		}
		if msgs[1].Content != "first" || msgs[2].Content != "second" || msgs[3].Content != "third" {
			t.Errorf("order = %v", msgs)
		}
	})

	t.Run("ignores unknown session ids", func(t *testing.T) {
		store := NewStore()
		store.Append("ghost", domain.Message{Role: domain.RoleUser, Content: "hello"})
		if store.Len() != 0 {
			t.Errorf("Len = %d, want 0", store.Len())
		}
	})
}

func TestMessages(t *testing.T) {
	t.Run("returns nil for unknown id", func(t *testing.T) {
		store := NewStore()
		if msgs := store.Messages("ghost"); msgs != nil {
			t.Errorf("msgs = %v, want nil", msgs)
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		store := NewStore()
		id, _ := store.GetOrCreate("")

		msgs := store.Messages(id)
		msgs[0].Content = "mutated"

		if store.Messages(id)[0].Content == "mutated" {
			t.Error("mutating the returned slice changed the stored session")
		}
	})
}

func TestStoreConcurrency(t *testing.T) {
	store := NewStore()
	id, _ := store.GetOrCreate("")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Append(id, domain.Message{Role: domain.RoleUser, Content: fmt.Sprintf("msg %d", n)})
			store.GetOrCreate("")
			store.Messages(id)
		}(i)
	}
	wg.Wait()

	if got := len(store.Messages(id)); got != 21 {
		t.Errorf("len(msgs) = %d, want 21 (seed + 20 appends)", got)
	}
	if store.Len() != 21 {
		t.Errorf("Len = %d, want 21 sessions", store.Len())
	}
}
