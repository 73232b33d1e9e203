package handlers

import (
	"fmt"

	"mercado/internal/models"
)

// CreateOrderRequest is the body schema for POST /orders. The three IDs
// reference existing records; status is free text, the empty string
// included. Pointer fields validate that each key is present without
// rejecting zero values.
type CreateOrderRequest struct {
	ClientID  *uint   `json:"clientId" validate:"required"`
	SellerID  *uint   `json:"sellerId" validate:"required"`
	ProductID *uint   `json:"productId" validate:"required"`
	Status    *string `json:"status" validate:"required"`
}

// UpdateOrderRequest is the partial body schema for PUT /orders/:id.
type UpdateOrderRequest struct {
	ClientID  *uint   `json:"clientId"`
	SellerID  *uint   `json:"sellerId"`
	ProductID *uint   `json:"productId"`
	Status    *string `json:"status"`
}

// NewOrdersHandler configures the generic resource handler for orders.
// Orders carry the widest filter surface: lookup by id, equality filters on
// each foreign key, and a substring filter on status, all ordered by id.
func NewOrdersHandler(service Service[models.Order]) *Resource[models.Order, CreateOrderRequest, UpdateOrderRequest] {
	return NewResource(service, Config[models.Order, CreateOrderRequest, UpdateOrderRequest]{
		Singular: "order",
		Plural:   "orders",
		Filters: []Filter{
			{Param: "client", Column: "client_id", Numeric: true, OrderBy: "id"},
			{Param: "seller", Column: "seller_id", Numeric: true, OrderBy: "id"},
			{Param: "product", Column: "product_id", Numeric: true, OrderBy: "id"},
			{Param: "status", Column: "status", OrderBy: "id"},
		},
		CreatedMsg: func(id uint) string { return fmt.Sprintf("New order ID: %d", id) },
		DeletedMsg: func(id uint) string { return fmt.Sprintf("Order deleted: %d", id) },
		Build: func(body CreateOrderRequest) models.Order {
			return models.Order{
				ClientID:  *body.ClientID,
				SellerID:  *body.SellerID,
				ProductID: *body.ProductID,
				Status:    *body.Status,
			}
		},
		Fields: func(body UpdateOrderRequest) map[string]any {
			fields := map[string]any{}
			if body.ClientID != nil {
				fields["client_id"] = *body.ClientID
			}
			if body.SellerID != nil {
				fields["seller_id"] = *body.SellerID
			}
			if body.ProductID != nil {
				fields["product_id"] = *body.ProductID
			}
			if body.Status != nil {
				fields["status"] = *body.Status
			}
			return fields
		},
	})
}
