package services

import (
	"testing"

	"lunchbox-backend/internal/models"
)

func TestGroupByRoute(t *testing.T) {
	deliveries := []*models.Delivery{
		{ID: 1, RouteName: "North"},
		{ID: 2, RouteName: "South"},
		{ID: 3, RouteName: "North"},
		{ID: 4, RouteName: "East"},
		{ID: 5, RouteName: "South"},
	}

	routes := GroupByRoute(deliveries)

	if len(routes) != 3 {
		t.Fatalf("got %d routes, want 3", len(routes))
	}

	// Routes appear in first-appearance order
	wantOrder := []string{"North", "South", "East"}
	for i, name := range wantOrder {
		if routes[i].Name != name {
			t.Errorf("routes[%d].Name = %q, want %q", i, routes[i].Name, name)
		}
	}

	if len(routes[0].Stops) != 2 || len(routes[1].Stops) != 2 || len(routes[2].Stops) != 1 {
		t.Errorf("stop counts = %d, %d, %d, want 2, 2, 1",
			len(routes[0].Stops), len(routes[1].Stops), len(routes[2].Stops))
	}

	// Stops keep their input order within a route
	if routes[0].Stops[0].ID != 1 || routes[0].Stops[1].ID != 3 {
		t.Errorf("North stop IDs = %d, %d, want 1, 3",
			routes[0].Stops[0].ID, routes[0].Stops[1].ID)
	}
}

func TestGroupByRouteCoversEveryDelivery(t *testing.T) {
	deliveries := []*models.Delivery{
		{ID: 10, RouteName: "A"},
		{ID: 11, RouteName: "B"},
		{ID: 12, RouteName: "A"},
	}

	total := 0
	for _, r := range GroupByRoute(deliveries) {
		total += len(r.Stops)
	}
	if total != len(deliveries) {
		t.Errorf("grouped %d stops, want %d", total, len(deliveries))
	}
}

func TestGroupByRouteEmpty(t *testing.T) {
	if routes := GroupByRoute(nil); len(routes) != 0 {
		t.Errorf("got %d routes for empty input, want 0", len(routes))
	}
}
