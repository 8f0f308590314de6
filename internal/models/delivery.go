package models

import "time"

// Delivery statuses. PENDING is the initial state; DELIVERED and EXCEPTION
// are terminal.
const (
	DeliveryPending   = "PENDING"
	DeliveryDelivered = "DELIVERED"
	DeliveryException = "EXCEPTION"
)

type Delivery struct {
	ID          int        `json:"id"`
	ChildID     int        `json:"childId"`
	Date        string     `json:"date"`
	RouteName   string     `json:"routeName"`
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// Route is one named dispatch group of stops for a day
type Route struct {
	Name  string     `json:"name"`
	Stops []Delivery `json:"stops"`
}
