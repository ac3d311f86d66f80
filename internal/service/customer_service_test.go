package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopledger/backend/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockCustomerRepository for testing
type mockCustomerRepository struct {
	customers []*models.Customer
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = int64(len(m.customers) + 1)
	m.customers = append(m.customers, customer)
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	for i, c := range m.customers {
		if c.ID == customer.ID {
			copied := *customer
			m.customers[i] = &copied
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", customer.ID))
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id int64) error {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
}

func TestCustomerCreate(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	customer, err := svc.Create(context.Background(), &CreateCustomerRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if customer.ID == 0 {
		t.Error("expected a system-assigned ID")
	}

	got, err := svc.GetByID(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Jane Doe" || got.Email != "jane@example.com" || got.Phone != "555-0100" {
		t.Errorf("stored customer = %+v", got)
	}
}

func TestCustomerCreateMissingName(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	_, err := svc.Create(context.Background(), &CreateCustomerRequest{Email: "jane@example.com"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Error("no row should be created on validation failure")
	}
}

func TestCustomerPartialUpdate(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	created, err := svc.Create(context.Background(), &CreateCustomerRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-0100",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newPhone := "555-0199"
	updated, err := svc.Update(context.Background(), created.ID, &UpdateCustomerRequest{Phone: &newPhone})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Phone != newPhone {
		t.Errorf("phone = %q, want %q", updated.Phone, newPhone)
	}
	if updated.Name != "Jane Doe" || updated.Email != "jane@example.com" {
		t.Errorf("omitted fields changed: %+v", updated)
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	svc := NewCustomerService(&mockCustomerRepository{}, testLogger())

	name := "Ghost"
	_, err := svc.Update(context.Background(), 42, &UpdateCustomerRequest{Name: &name})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerUpdateEmptyName(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	created, _ := svc.Create(context.Background(), &CreateCustomerRequest{Name: "Jane Doe"})

	empty := ""
	_, err := svc.Update(context.Background(), created.ID, &UpdateCustomerRequest{Name: &empty})
	if err == nil {
		t.Fatal("expected validation error for empty name")
	}
}

func TestCustomerDelete(t *testing.T) {
	repo := &mockCustomerRepository{}
	svc := NewCustomerService(repo, testLogger())

	created, _ := svc.Create(context.Background(), &CreateCustomerRequest{Name: "Jane Doe"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Error("customer should be gone after delete")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("deleting a missing customer should return ErrNotFound, got %v", err)
	}
}
