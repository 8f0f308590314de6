package services

import (
	"context"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/metrics"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/ws"
)

type DeliveryService struct {
	deliveryRepo *repositories.DeliveryRepository
	hub          *ws.Hub
}

func NewDeliveryService(deliveryRepo *repositories.DeliveryRepository, hub *ws.Hub) *DeliveryService {
	return &DeliveryService{deliveryRepo: deliveryRepo, hub: hub}
}

// ListByDate returns the day's deliveries in dispatch order
func (s *DeliveryService) ListByDate(ctx context.Context, date string) ([]*models.Delivery, error) {
	return s.deliveryRepo.ListByDate(ctx, date)
}

// GroupByRoute partitions deliveries into per-route groups. Route order is
// first appearance in the source list; stops keep their source order
// within a route. Every delivery lands in exactly one bucket.
func GroupByRoute(deliveries []*models.Delivery) []models.Route {
	index := make(map[string]int)
	var routes []models.Route

	for _, d := range deliveries {
		i, ok := index[d.RouteName]
		if !ok {
			i = len(routes)
			index[d.RouteName] = i
			routes = append(routes, models.Route{Name: d.RouteName})
		}
		routes[i].Stops = append(routes[i].Stops, *d)
	}

	return routes
}

// ListRoutes returns the day's deliveries grouped for the dispatch view
func (s *DeliveryService) ListRoutes(ctx context.Context, date string) ([]models.Route, error) {
	deliveries, err := s.deliveryRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return GroupByRoute(deliveries), nil
}

// MarkDelivered marks a stop delivered and broadcasts the updated record
// to connected dispatch boards. Repeating the call for an
// already-delivered stop returns the stored terminal state unchanged.
// Side effects key off the repository's transition report, so concurrent
// calls for the same stop count and broadcast once.
func (s *DeliveryService) MarkDelivered(ctx context.Context, id int) (*models.Delivery, error) {
	d, transitioned, err := s.deliveryRepo.MarkDelivered(ctx, id)
	if err != nil {
		return nil, err
	}

	if transitioned {
		metrics.DeliveriesMarkedTotal.Inc()
		cache.InvalidateDeliveryCaches(ctx)
		if s.hub != nil {
			s.hub.Broadcast(ws.Event{Type: "delivery.updated", Payload: d})
		}
	}

	return d, nil
}
