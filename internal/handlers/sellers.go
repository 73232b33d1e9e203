package handlers

import (
	"fmt"

	"mercado/internal/models"
)

// CreateSellerRequest is the body schema for POST /sellers.
type CreateSellerRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateSellerRequest is the partial body schema for PUT /sellers/:id.
type UpdateSellerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// NewSellersHandler configures the generic resource handler for sellers.
// Same surface as clients, separate table and spelling.
func NewSellersHandler(service Service[models.Seller]) *Resource[models.Seller, CreateSellerRequest, UpdateSellerRequest] {
	return NewResource(service, Config[models.Seller, CreateSellerRequest, UpdateSellerRequest]{
		Singular:    "seller",
		Plural:      "sellers",
		ListColumns: []string{"name", "email"},
		Filters: []Filter{
			{Param: "name", Column: "name", OrderBy: "name"},
		},
		CreatedMsg: func(id uint) string { return fmt.Sprintf("Id from new seller: %d", id) },
		DeletedMsg: func(id uint) string { return fmt.Sprintf("Seller deleted with ID: %d", id) },
		Build: func(body CreateSellerRequest) models.Seller {
			return models.Seller{
				Name:  body.Name,
				Email: body.Email,
			}
		},
		Fields: func(body UpdateSellerRequest) map[string]any {
			fields := map[string]any{}
			if body.Name != nil {
				fields["name"] = *body.Name
			}
			if body.Email != nil {
				fields["email"] = *body.Email
			}
			return fields
		},
	})
}
