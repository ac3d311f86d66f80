package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/repository"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Create(ctx context.Context, req *CreateCustomerRequest) (*models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, id int64, req *UpdateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create creates a new customer
func (s *customerService) Create(ctx context.Context, req *CreateCustomerRequest) (*models.Customer, error) {
	customer := req.ToCustomer()
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("name", customer.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.Int64("customer_id", customer.ID),
	)

	return customer, nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// List retrieves all customers
func (s *customerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Update applies a partial update to an existing customer. Fields absent from
// the request keep their stored values.
func (s *customerService) Update(ctx context.Context, id int64, req *UpdateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(customer)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.logger.Error("failed to update customer",
			slog.Int64("customer_id", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("customer updated",
		slog.Int64("customer_id", id),
	)

	return customer, nil
}

// Delete removes a customer. Deletion is rejected while the customer still
// has orders.
func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("customer deleted",
		slog.Int64("customer_id", id),
	)

	return nil
}
