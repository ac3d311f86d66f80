package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/repository"
)

// OrderService handles order business logic
type OrderService interface {
	Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]*models.Product, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Create creates a new order. The customer and every referenced product must
// exist; any missing reference rejects the whole request and nothing is
// persisted. The order date is always the current date, regardless of input.
func (s *orderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidInput(fmt.Sprintf("customer with ID %d does not exist", req.CustomerID))
		}
		return nil, err
	}

	missing, err := s.productRepo.MissingIDs(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, models.ErrInvalidInput(fmt.Sprintf("product with ID %d does not exist", missing[0]))
	}

	order := &models.Order{
		OrderDate:  models.DateOnly(s.now()),
		CustomerID: req.CustomerID,
		Items:      req.Items,
	}
	if order.Items == nil {
		order.Items = []int64{}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order",
			slog.Int64("customer_id", req.CustomerID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", order.CustomerID),
		slog.Int("item_count", len(order.Items)),
	)

	return order, nil
}

// GetByID retrieves an order with its item ids
func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListItems retrieves the products attached to an order, in attachment
// order. The order must exist.
func (s *orderService) ListItems(ctx context.Context, orderID int64) ([]*models.Product, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	return s.orderRepo.ListItems(ctx, orderID)
}
