package handlers

import (
	"fmt"

	"mercado/internal/models"
)

// CreateProductRequest is the body schema for POST /products. Price is a
// pointer so presence is validated, not non-zeroness: a zero price is a
// valid number. sellerId is optional.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=50"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description" validate:"required,min=15,max=255"`
	Color       string   `json:"color" validate:"required,min=3,max=25"`
	SellerID    *uint    `json:"sellerId" validate:"omitempty,gt=0"`
}

// UpdateProductRequest is the partial body schema for PUT /products/:id.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=50"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description" validate:"omitempty,min=15,max=255"`
	Color       *string  `json:"color" validate:"omitempty,min=3,max=25"`
	SellerID    *uint    `json:"sellerId" validate:"omitempty,gt=0"`
}

// NewProductsHandler configures the generic resource handler for products.
// Products are the one resource looked up by path (/products/:id) rather
// than by query parameter.
func NewProductsHandler(service Service[models.Product]) *Resource[models.Product, CreateProductRequest, UpdateProductRequest] {
	return NewResource(service, Config[models.Product, CreateProductRequest, UpdateProductRequest]{
		Singular:   "product",
		Plural:     "products",
		IDByPath:   true,
		CreatedMsg: func(id uint) string { return fmt.Sprintf("Id from new product: %d", id) },
		DeletedMsg: func(id uint) string { return fmt.Sprintf("Product deleted with ID: %d.", id) },
		Build: func(body CreateProductRequest) models.Product {
			return models.Product{
				Name:        body.Name,
				Price:       *body.Price,
				Description: body.Description,
				Color:       body.Color,
				SellerID:    body.SellerID,
			}
		},
		Fields: func(body UpdateProductRequest) map[string]any {
			fields := map[string]any{}
			if body.Name != nil {
				fields["name"] = *body.Name
			}
			if body.Price != nil {
				fields["price"] = *body.Price
			}
			if body.Description != nil {
				fields["description"] = *body.Description
			}
			if body.Color != nil {
				fields["color"] = *body.Color
			}
			if body.SellerID != nil {
				fields["seller_id"] = *body.SellerID
			}
			return fields
		},
	})
}
