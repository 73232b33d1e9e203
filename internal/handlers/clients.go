package handlers

import (
	"fmt"

	"mercado/internal/models"
)

// CreateClientRequest is the body schema for POST /clients.
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateClientRequest is the partial body schema for PUT /clients/:id.
// Every field is optional; only the ones supplied are written.
type UpdateClientRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// NewClientsHandler configures the generic resource handler for clients.
// Listings project to name and email only; clients can be looked up by
// query id or filtered by name substring.
func NewClientsHandler(service Service[models.Client]) *Resource[models.Client, CreateClientRequest, UpdateClientRequest] {
	return NewResource(service, Config[models.Client, CreateClientRequest, UpdateClientRequest]{
		Singular:    "client",
		Plural:      "clients",
		ListColumns: []string{"name", "email"},
		Filters: []Filter{
			{Param: "name", Column: "name", OrderBy: "name"},
		},
		CreatedMsg: func(id uint) string { return fmt.Sprintf("Id from new client: %d", id) },
		DeletedMsg: func(id uint) string { return fmt.Sprintf("Client deleted with ID: %d.", id) },
		Build: func(body CreateClientRequest) models.Client {
			return models.Client{
				Name:  body.Name,
				Email: body.Email,
			}
		},
		Fields: func(body UpdateClientRequest) map[string]any {
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
