package dto

import "time"

// CreateOrganizationRequest entrada para crear una organización.
type CreateOrganizationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationListResponse lista paginada de organizaciones.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
