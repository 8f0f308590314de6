package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/services"
)

// The deliveries list is the payload clients group and compute the on-time
// rate from, so every item must carry id, routeName and status at the top
// level — grouped objects belong to /deliveries/routes only.
func TestDeliveriesPayloadIsFlat(t *testing.T) {
	now := time.Now()
	deliveries := []*models.Delivery{
		{ID: 1, ChildID: 7, Date: "2026-09-01", RouteName: "North", Status: models.DeliveryPending},
		{ID: 2, ChildID: 8, Date: "2026-09-01", RouteName: "South", Status: models.DeliveryDelivered, DeliveredAt: &now},
	}

	data, err := json.Marshal(deliveries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	for i, item := range items {
		for _, field := range []string{"id", "childId", "date", "routeName", "status"} {
			if _, ok := item[field]; !ok {
				t.Errorf("item %d missing field %q", i, field)
			}
		}
		if _, ok := item["stops"]; ok {
			t.Errorf("item %d has a %q field; payload must be flat", i, "stops")
		}
	}
}

func TestRoutesPayloadGroupsByName(t *testing.T) {
	routes := services.GroupByRoute([]*models.Delivery{
		{ID: 1, RouteName: "North", Status: models.DeliveryPending},
		{ID: 2, RouteName: "South", Status: models.DeliveryPending},
		{ID: 3, RouteName: "North", Status: models.DeliveryDelivered},
	})

	data, err := json.Marshal(routes)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var groups []struct {
		Name  string `json:"name"`
		Stops []struct {
			ID        int    `json:"id"`
			RouteName string `json:"routeName"`
		} `json:"stops"`
	}
	if err := json.Unmarshal(data, &groups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "North" || len(groups[0].Stops) != 2 {
		t.Errorf("first group = %q with %d stops, want North with 2", groups[0].Name, len(groups[0].Stops))
	}
}
