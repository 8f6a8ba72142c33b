package handler

import (
	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price.String(),
		Stock:       s.Stock,
		Unit:        s.Unit,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSweetListResponse(sweets []domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for i := range sweets {
		out = append(out, toSweetResponse(&sweets[i]))
	}
	return out
}

func toCreateSweetInput(req createSweetRequest) ports.CreateSweetInput {
	return ports.CreateSweetInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Unit:        req.Unit,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

func toUpdateSweetInput(req updateSweetRequest) ports.UpdateSweetInput {
	return ports.UpdateSweetInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Unit:        req.Unit,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}
