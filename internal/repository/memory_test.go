package repository

import (
	"context"
	"testing"
	"time"

	"propertychat/internal/model"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[model.ChatState](0)

	got, err := store.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	state := model.NewChatState("s1", model.PersonaCustomer)
	if err := store.Save(ctx, "s1", state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// later changes to the caller's value must not leak into the store
	state.CurrentIntent = "budget"

	got, err = store.Get(ctx, "s1")
	if err != nil || got == nil {
		t.Fatalf("Get(s1) = %v, %v", got, err)
	}
	if got.CurrentIntent != "greeting" {
		t.Errorf("CurrentIntent = %q, want greeting", got.CurrentIntent)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := store.Get(ctx, "s1"); got != nil {
		t.Error("Expected value to be deleted")
	}
}

func TestMemoryStore_TTLAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[model.ListingDraft](time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_ = store.Save(ctx, "b", &model.ListingDraft{ID: "b"})
	_ = store.Save(ctx, "a", &model.ListingDraft{ID: "a"})

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Fatalf("List = %v, want a, b", all)
	}

	now = now.Add(2 * time.Minute)
	if got, _ := store.Get(ctx, "a"); got != nil {
		t.Error("Expected expired value to be gone")
	}
	store.mu.RLock()
	_, kept := store.items["a"]
	store.mu.RUnlock()
	if kept {
		t.Error("Expected expired value to be evicted on Get")
	}
	if all, _ := store.List(ctx); len(all) != 0 {
		t.Errorf("Expected empty list after expiry, got %d", len(all))
	}
}

func TestMemoryPropertyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPropertyRepository(DemoProperties())

	all, err := repo.List(ctx)
	if err != nil || len(all) != 6 {
		t.Fatalf("List = %d, %v; want 6 properties", len(all), err)
	}

	p, err := repo.Get(ctx, "prop-003")
	if err != nil || p == nil || p.Title != "Luxury Waterfront Penthouse" {
		t.Fatalf("Get(prop-003) = %v, %v", p, err)
	}
	if p, _ := repo.Get(ctx, "nope"); p != nil {
		t.Error("Expected nil for unknown id")
	}

	t.Run("Similar falls back to same type", func(t *testing.T) {
		similar, err := repo.Similar(ctx, "prop-001", 5)
		if err != nil {
			t.Fatal(err)
		}
		// condos closest in price to 850k: prop-004 (425k) then prop-003 (2.5M)
		if len(similar) != 2 || similar[0].ID != "prop-004" || similar[1].ID != "prop-003" {
			t.Errorf("Similar = %v", ids(similar))
		}
	})

	t.Run("Similar uses embeddings once loaded", func(t *testing.T) {
		n, errs := repo.UpdateEmbeddings(ctx, []model.EmbeddingItem{
			{PropertyID: "prop-001", Embedding: []float32{1, 0}},
			{PropertyID: "prop-005", Embedding: []float32{0.9, 0.1}},
			{PropertyID: "prop-002", Embedding: []float32{0, 1}},
			{PropertyID: "prop-999", Embedding: []float32{1, 1}},
		})
		if n != 3 || len(errs) != 1 {
			t.Fatalf("UpdateEmbeddings = %d, %v", n, errs)
		}
		similar, _ := repo.Similar(ctx, "prop-001", 1)
		if len(similar) != 1 || similar[0].ID != "prop-005" {
			t.Errorf("Similar = %v, want prop-005", ids(similar))
		}
	})

	t.Run("SaveListing inserts and replaces", func(t *testing.T) {
		_ = repo.SaveListing(ctx, model.Property{ID: "prop-100", Title: "New"})
		_ = repo.SaveListing(ctx, model.Property{ID: "prop-100", Title: "Renamed"})
		all, _ := repo.List(ctx)
		if len(all) != 7 {
			t.Fatalf("Expected 7 properties, got %d", len(all))
		}
		p, _ := repo.Get(ctx, "prop-100")
		if p.Title != "Renamed" {
			t.Errorf("Title = %q, want Renamed", p.Title)
		}
	})
}

func ids(ps []model.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
