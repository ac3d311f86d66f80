package service

import (
	"fmt"

	"github.com/shopledger/backend/internal/models"
)

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToCustomer converts the request into a customer record
func (r *CreateCustomerRequest) ToCustomer() *models.Customer {
	return &models.Customer{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// UpdateCustomerRequest represents a partial customer update. Nil fields were
// absent from the payload and leave the stored value untouched.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Validate checks the fields that are present
func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return models.ErrInvalidInput("name cannot be empty")
	}
	if r.Name != nil && len(*r.Name) > models.MaxCustomerNameLen {
		return models.ErrInvalidInput(fmt.Sprintf("name must be at most %d characters", models.MaxCustomerNameLen))
	}
	if r.Email != nil && len(*r.Email) > models.MaxCustomerEmailLen {
		return models.ErrInvalidInput(fmt.Sprintf("email must be at most %d characters", models.MaxCustomerEmailLen))
	}
	if r.Phone != nil && len(*r.Phone) > models.MaxCustomerPhoneLen {
		return models.ErrInvalidInput(fmt.Sprintf("phone must be at most %d characters", models.MaxCustomerPhoneLen))
	}
	return nil
}

// Apply overwrites the fields present in the request onto the customer
func (r *UpdateCustomerRequest) Apply(customer *models.Customer) {
	if r.Name != nil {
		customer.Name = *r.Name
	}
	if r.Email != nil {
		customer.Email = *r.Email
	}
	if r.Phone != nil {
		customer.Phone = *r.Phone
	}
}

// CreateProductRequest represents a request to create a product. Price is a
// pointer so a missing price can be told apart from a zero price.
type CreateProductRequest struct {
	Name  string   `json:"product_name"`
	Price *float64 `json:"price"`
}

// Validate performs validation on the create product request
func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return models.ErrInvalidInput("product_name is required")
	}
	if len(r.Name) > models.MaxProductNameLen {
		return models.ErrInvalidInput(fmt.Sprintf("product_name must be at most %d characters", models.MaxProductNameLen))
	}
	if r.Price == nil {
		return models.ErrInvalidInput("price is required")
	}
	if *r.Price < 0 {
		return models.ErrInvalidInput("price cannot be negative")
	}
	return nil
}

// ToProduct converts the request into a product record
func (r *CreateProductRequest) ToProduct() *models.Product {
	return &models.Product{
		Name:  r.Name,
		Price: *r.Price,
	}
}

// CreateOrderRequest represents a request to create an order. The order date
// is not part of the input; the server stamps the current date.
type CreateOrderRequest struct {
	CustomerID int64   `json:"customer_id"`
	Items      []int64 `json:"items"`
}

// Validate performs validation on the create order request
func (r *CreateOrderRequest) Validate() error {
	order := models.Order{CustomerID: r.CustomerID, Items: r.Items}
	return order.Validate()
}
