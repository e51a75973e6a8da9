package store

import (
	"context"
	"sync"
	"testing"

	"staymate/models"
)

func TestMemorySeedIsCopied(t *testing.T) {
	seed := []models.Listing{{ListingID: "1", Name: "A"}}
	m := NewMemory(seed)

	seed[0].Name = "mutated"

	got, found, err := m.Get(context.Background(), "1")
	if err != nil || !found {
		t.Fatal("seeded listing not found")
	}
	if got.Name != "A" {
		t.Error("store shares backing array with the caller's seed")
	}
}

func TestMemoryPrependOrder(t *testing.T) {
	m := NewMemory([]models.Listing{{ListingID: "old"}})
	if err := m.Prepend(context.Background(), models.Listing{ListingID: "new"}); err != nil {
		t.Fatal(err)
	}

	all, err := m.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ListingID != "new" || all[1].ListingID != "old" {
		t.Errorf("order after prepend: %v", all)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	m := NewMemory([]models.Listing{{ListingID: "1", Name: "A"}})

	first, _ := m.List(context.Background())
	first[0].Name = "mutated"

	second, _ := m.List(context.Background())
	if second[0].Name != "A" {
		t.Error("List exposes internal state")
	}
}

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory(nil)
	_, found, err := m.Get(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("miss reported as found")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			m.Prepend(context.Background(), models.Listing{ListingID: "x"})
		}(i)
		go func() {
			defer wg.Done()
			m.List(context.Background())
		}()
	}
	wg.Wait()

	all, _ := m.List(context.Background())
	if len(all) != 20 {
		t.Errorf("lost writes: %d listings, want 20", len(all))
	}
}
