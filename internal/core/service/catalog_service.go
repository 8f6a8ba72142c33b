package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweetshop-api/internal/pkg/metrics"
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// allCategory is the synthetic entry prepended to every category listing so
// clients get an unfiltered option for free.
const allCategory = "all"

// CatalogService implements sweet CRUD and the category listing. The
// category list is cached; every mutation invalidates it. Cache failures
// are logged and ignored, the repository remains the source of truth.
type CatalogService struct {
	repo   ports.SweetRepository
	cache  ports.CategoryCache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.SweetRepository, cache ports.CategoryCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) CreateSweet(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	price, err := domain.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sweet := &domain.Sweet{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       price,
		Stock:       input.Stock,
		Unit:        input.Unit,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := sweet.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sweet); err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)
	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("sweet_id", sweet.ID).Str("name", sweet.Name).Msg("sweet created")

	return sweet, nil
}

func (s *CatalogService) GetSweet(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) ListSweets(ctx context.Context) ([]domain.Sweet, error) {
	return s.repo.FindAll(ctx)
}

// UpdateSweet applies a partial update: only non-nil fields change.
// UpdatedAt is refreshed on every successful mutation.
func (s *CatalogService) UpdateSweet(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	sweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sweet.Name = *input.Name
	}
	if input.Category != nil {
		sweet.Category = *input.Category
	}
	if input.Price != nil {
		price, err := domain.ParsePrice(*input.Price)
		if err != nil {
			return nil, err
		}
		sweet.Price = price
	}
	if input.Stock != nil {
		sweet.Stock = *input.Stock
	}
	if input.Unit != nil {
		sweet.Unit = *input.Unit
	}
	if input.Description != nil {
		sweet.Description = *input.Description
	}
	if input.ImageURL != nil {
		sweet.ImageURL = *input.ImageURL
	}
	sweet.UpdatedAt = time.Now().UTC()

	if err := sweet.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, sweet); err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)
	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("sweet_id", sweet.ID).Msg("sweet updated")

	return sweet, nil
}

func (s *CatalogService) DeleteSweet(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCategories(ctx)
	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")

	return nil
}

// ListCategories returns the distinct categories in the catalog with the
// synthetic "all" entry first.
func (s *CatalogService) ListCategories(ctx context.Context) ([]ports.Category, error) {
	names, ok := s.cachedCategories(ctx)
	if ok {
		metrics.CategoryListingsTotal.WithLabelValues("cache").Inc()
	} else {
		var err error
		names, err = s.repo.DistinctCategories(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, names); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
		metrics.CategoryListingsTotal.WithLabelValues("store").Inc()
	}

	categories := make([]ports.Category, 0, len(names)+1)
	categories = append(categories, ports.Category{Name: allCategory})
	for _, name := range names {
		categories = append(categories, ports.Category{Name: name})
	}
	return categories, nil
}

func (s *CatalogService) cachedCategories(ctx context.Context) ([]string, bool) {
	names, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("category cache read failed")
		return nil, false
	}
	return names, ok
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}
