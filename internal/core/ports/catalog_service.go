package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// CreateSweetInput carries the fields for a new catalog item. Price is the
// decimal wire form ("300.00"); the service parses and validates it.
type CreateSweetInput struct {
	Name        string
	Category    string
	Price       string
	Stock       int
	Unit        string
	Description string
	ImageURL    string
}

// UpdateSweetInput is a partial update: nil fields are left untouched.
type UpdateSweetInput struct {
	Name        *string
	Category    *string
	Price       *string
	Stock       *int
	Unit        *string
	Description *string
	ImageURL    *string
}

// Category is a single entry of the category listing.
type Category struct {
	Name string `json:"name"`
}

type CatalogService interface {
	CreateSweet(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	GetSweet(ctx context.Context, id string) (*domain.Sweet, error)
	ListSweets(ctx context.Context) ([]domain.Sweet, error)
	UpdateSweet(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	DeleteSweet(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
}
