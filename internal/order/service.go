package order

import (
	"context"
	"fmt"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
	"storefront-be/internal/uid"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID uint, items []ItemRequest, method payment.Method) (*Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
}

type service struct {
	repo      Repository
	users     user.Repository
	assembler *assembler
	gen       uid.Generator
}

func NewService(repo Repository, users user.Repository, products product.Repository, gen uid.Generator) Service {
	return &service{
		repo:      repo,
		users:     users,
		assembler: newAssembler(products),
		gen:       gen,
	}
}

// Create runs the order workflow: assemble and price the items, persist
// the aggregate as CREATED, charge the selected payment method, then
// persist the terminal PAID or FAILED state.
//
// The payment method is resolved before anything is written, so an
// unsupported method never leaves a CREATED row behind. A declined
// charge is not an error: the order comes back with status FAILED.
func (s *service) Create(ctx context.Context, userID uint, items []ItemRequest, method payment.Method) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", userID),
		zap.String("payment_method", string(method)),
	)

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.Warn("user lookup failed", zap.Error(err))
		return nil, err
	}

	capability, err := payment.ForMethod(method)
	if err != nil {
		log.Warn("payment method rejected", zap.Error(err))
		return nil, err
	}

	processed, total, err := s.assembler.Assemble(ctx, items)
	if err != nil {
		log.Warn("order assembly failed", zap.Error(err))
		return nil, err
	}

	o := &Order{
		ExternalID: s.gen.Generate(),
		UserID:     userID,
		Items:      processed,
		Total:      total,
		Status:     StatusCreated,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, fmt.Errorf("persist order: %w", err)
	}
	metrics.OrdersCreated.Inc()

	log = log.With(
		zap.Uint("order_id", o.ID),
		zap.String("external_id", o.ExternalID),
		zap.Float64("total", total),
	)
	log.Info("order created")

	paid := capability.Pay(total)
	metrics.PaymentAttempts.
		WithLabelValues(string(method), metrics.PaymentResultLabel(paid)).
		Inc()

	if paid {
		o.Status = StatusPaid
	} else {
		o.Status = StatusFailed
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		log.Error("failed to persist final status", zap.Error(err))
		return nil, fmt.Errorf("persist order status: %w", err)
	}

	log.Info("order settled", zap.String("status", string(o.Status)))

	return o, nil
}

func (s *service) GetAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}
