package service

import (
	"context"
	"database/sql"
	"errors"

	"greystone-backend/internal/domain"
	"greystone-backend/internal/repository"
)

type catalogService struct {
	toolRepo    repository.ToolRepository
	productRepo repository.ProductRepository
}

func NewCatalogService(toolRepo repository.ToolRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		toolRepo:    toolRepo,
		productRepo: productRepo,
	}
}

func (s *catalogService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistenceError(err)
	}
	return tool, nil
}

func (s *catalogService) ListTools(ctx context.Context, order repository.ToolOrder) ([]domain.Tool, error) {
	tools, err := s.toolRepo.List(ctx, order)
	if err != nil {
		return nil, persistenceError(err)
	}
	return tools, nil
}

func (s *catalogService) GetProduct(ctx context.Context, partNumber string) (*domain.Product, error) {
	product, err := s.productRepo.GetByPartNumber(ctx, partNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistenceError(err)
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}
	return products, nil
}
