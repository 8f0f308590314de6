package services

import (
	"reflect"
	"testing"

	"lunchbox-backend/internal/models"
)

func TestFilterSkipped(t *testing.T) {
	children := []*models.Child{
		{ID: 1, Name: "Aarav"},
		{ID: 2, Name: "Diya"},
		{ID: 3, Name: "Kabir"},
	}
	skipped := map[int]bool{2: true}

	got := FilterSkipped(children, skipped)

	if len(got) != 2 {
		t.Fatalf("got %d children, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("kept IDs = %d, %d, want 1, 3", got[0].ID, got[1].ID)
	}
}

func TestFilterSkippedNoneSkipped(t *testing.T) {
	children := []*models.Child{{ID: 1}, {ID: 2}}
	if got := FilterSkipped(children, map[int]bool{}); len(got) != 2 {
		t.Errorf("got %d children, want 2", len(got))
	}
}

func TestAllergenAlerts(t *testing.T) {
	got := AllergenAlerts("peanut, dairy", "dairy,gluten", "")
	want := []string{"peanut", "dairy", "gluten"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllergenAlerts = %v, want %v", got, want)
	}
}

func TestAllergenAlertsTrimsAndSkipsBlanks(t *testing.T) {
	got := AllergenAlerts("  soy ,, egg ", "soy")
	want := []string{"soy", "egg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllergenAlerts = %v, want %v", got, want)
	}
}

func TestAllergenAlertsEmpty(t *testing.T) {
	if got := AllergenAlerts("", "   "); len(got) != 0 {
		t.Errorf("AllergenAlerts = %v, want empty", got)
	}
}
