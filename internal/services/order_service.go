package services

import (
	"log"

	"mercado/internal/models"
	"mercado/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to a message broker.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders. On top of plain
// CRUD it publishes an event when an order is created.
type OrderService struct {
	*Crud[models.Order]
	events OrderEventPublisher
}

// NewOrderService creates a new OrderService. events may be nil, in which
// case order creation skips publishing.
func NewOrderService(store repositories.Store[models.Order], events OrderEventPublisher) *OrderService {
	return &OrderService{
		Crud:   NewCrud(store),
		events: events,
	}
}

// Create inserts a new order and publishes an order.created event.
// A publish failure is logged, not returned: the order is already persisted
// and the HTTP response must reflect that.
func (s *OrderService) Create(order *models.Order) error {
	if err := s.Crud.Create(order); err != nil {
		return err
	}

	if s.events == nil {
		return nil
	}

	event := map[string]interface{}{
		"orderId":   order.ID,
		"clientId":  order.ClientID,
		"sellerId":  order.SellerID,
		"productId": order.ProductID,
		"status":    order.Status,
	}
	if err := s.events.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
	}
	return nil
}
