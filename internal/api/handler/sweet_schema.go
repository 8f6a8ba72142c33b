package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createSweetRequest struct {
	Name        string `json:"name"        validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Price       string `json:"price"       validate:"required"`
	Stock       int    `json:"stock"       validate:"gte=0"`
	Unit        string `json:"unit"        validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

// updateSweetRequest is a partial update; absent fields stay untouched.
type updateSweetRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock"     validate:"omitempty,gte=0"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// model changes and no new domain field can leak by accident.

type sweetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
