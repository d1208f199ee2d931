package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSavedService_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewSavedService(newMemorySavedRepo())
	userID := uuid.New()

	first, err := svc.Save(ctx, userID, "2")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	second, err := svc.Save(ctx, userID, "2")
	if err != nil {
		t.Fatalf("repeat Save returned error: %v", err)
	}
	if len(first) != 1 || len(second) != 1 || second[0] != "2" {
		t.Fatalf("expected saved set [2] after both calls, got %v then %v", first, second)
	}
}

func TestSavedService_UnsaveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewSavedService(newMemorySavedRepo())
	userID := uuid.New()

	saved, err := svc.Unsave(ctx, userID, "7")
	if err != nil {
		t.Fatalf("Unsave of absent id returned error: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("expected empty set, got %v", saved)
	}
}

func TestSavedService_SaveThenUnsave(t *testing.T) {
	ctx := context.Background()
	svc := NewSavedService(newMemorySavedRepo())
	userID := uuid.New()

	if _, err := svc.Save(ctx, userID, "1"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := svc.Save(ctx, userID, "3"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	saved, err := svc.Unsave(ctx, userID, "1")
	if err != nil {
		t.Fatalf("Unsave returned error: %v", err)
	}
	if len(saved) != 1 || saved[0] != "3" {
		t.Fatalf("expected [3] after unsave, got %v", saved)
	}

	listed, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 1 || listed[0] != "3" {
		t.Fatalf("expected persisted set [3], got %v", listed)
	}
}
