package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// SweetRepository defines the interface for catalog persistence.
type SweetRepository interface {
	Create(ctx context.Context, sweet *domain.Sweet) error
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindAll(ctx context.Context) ([]domain.Sweet, error)
	Update(ctx context.Context, sweet *domain.Sweet) error
	Delete(ctx context.Context, id string) error
	DistinctCategories(ctx context.Context) ([]string, error)
}

// CategoryCache caches the category listing between catalog mutations.
// Get returns ok=false on a miss; cache failures are soft, callers fall
// back to the repository.
type CategoryCache interface {
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, categories []string) error
	Invalidate(ctx context.Context) error
}
