package product

import (
	"context"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, name string, price float64) (Product, error)
	Update(ctx context.Context, id uint, name string, price float64) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, name string, price float64) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	p, err := s.repo.Create(ctx, Product{Name: name, Price: price})
	if err != nil {
		log.Error("failed to create product", zap.String("name", name), zap.Error(err))
		return Product{}, err
	}

	log.Info("product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("price", p.Price),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, id uint, name string, price float64) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.Uint("product_id", id),
	)

	p, err := s.repo.Update(ctx, Product{ID: id, Name: name, Price: price})
	if err != nil {
		log.Warn("failed to update product", zap.Error(err))
		return nil, err
	}

	log.Info("product updated", zap.Float64("price", p.Price))
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.Uint("product_id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("failed to delete product", zap.Error(err))
		return err
	}

	log.Info("product deleted")
	return nil
}
