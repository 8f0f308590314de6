package repositories

import (
	"context"
	"testing"
)

// Toggling a skip twice restores the original membership: the row exists
// after the first call and is gone after the second.
func TestToggleTwiceRestoresMembership(t *testing.T) {
	pool := testPool(t)
	repo := NewSelectionRepository(pool)
	childID := seedChild(t, pool)
	ctx := context.Background()

	skipped, sel, err := repo.Toggle(ctx, childID, "2026-09-01")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !skipped {
		t.Fatal("first toggle: expected skipped = true")
	}
	if sel == nil || sel.ID == 0 {
		t.Fatal("first toggle: expected the created selection back")
	}

	selections, err := repo.ListByChild(ctx, childID)
	if err != nil {
		t.Fatalf("listing after first toggle: %v", err)
	}
	if len(selections) != 1 {
		t.Fatalf("got %d selections after first toggle, want 1", len(selections))
	}

	skipped, sel, err = repo.Toggle(ctx, childID, "2026-09-01")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if skipped {
		t.Fatal("second toggle: expected skipped = false")
	}
	if sel != nil {
		t.Fatal("second toggle: expected no selection record")
	}

	selections, err = repo.ListByChild(ctx, childID)
	if err != nil {
		t.Fatalf("listing after second toggle: %v", err)
	}
	if len(selections) != 0 {
		t.Fatalf("got %d selections after second toggle, want 0", len(selections))
	}
}

func TestToggleAppearsInSkippedChildIDs(t *testing.T) {
	pool := testPool(t)
	repo := NewSelectionRepository(pool)
	childID := seedChild(t, pool)
	ctx := context.Background()

	if _, _, err := repo.Toggle(ctx, childID, "2026-09-02"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	skipped, err := repo.SkippedChildIDs(ctx, "2026-09-02")
	if err != nil {
		t.Fatalf("SkippedChildIDs: %v", err)
	}
	if !skipped[childID] {
		t.Errorf("child %d missing from skipped set", childID)
	}
}
