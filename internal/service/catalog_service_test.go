package service

import (
	"context"
	"errors"
	"testing"
)

func TestCatalogService_ListSeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryDestinationRepo()
	svc := NewCatalogService(repo)

	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 seeded destinations, got %d", len(first))
	}

	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("second List returned error: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("expected 3 destinations on repeat read, got %d", len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("seeded content not stable: %v vs %v", first[i], second[i])
		}
	}
	if repo.saves != 1 {
		t.Fatalf("expected exactly one seed write, got %d", repo.saves)
	}
}

func TestCatalogService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newMemoryDestinationRepo(SampleDestinations()...))

	dest, err := svc.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if dest.Name != "Kyoto, Japan" {
		t.Fatalf("expected Kyoto for id 2, got %q", dest.Name)
	}

	if _, err := svc.GetByID(ctx, "404"); !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestCatalogService_SeedSkipsPopulatedStore(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryDestinationRepo(SampleDestinations()...)
	svc := NewCatalogService(repo)

	seeded, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if seeded {
		t.Fatalf("Seed must be a no-op on a populated store")
	}
	if repo.saves != 0 {
		t.Fatalf("expected no writes, got %d", repo.saves)
	}
}
