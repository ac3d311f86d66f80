package models

import "fmt"

// Field length limits enforced by the customer table schema
const (
	MaxCustomerNameLen  = 75
	MaxCustomerEmailLen = 150
	MaxCustomerPhoneLen = 16
)

// Customer represents a customer record
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate performs basic validation on customer data
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if len(c.Name) > MaxCustomerNameLen {
		return ErrInvalidInput(fmt.Sprintf("name must be at most %d characters", MaxCustomerNameLen))
	}
	if len(c.Email) > MaxCustomerEmailLen {
		return ErrInvalidInput(fmt.Sprintf("email must be at most %d characters", MaxCustomerEmailLen))
	}
	if len(c.Phone) > MaxCustomerPhoneLen {
		return ErrInvalidInput(fmt.Sprintf("phone must be at most %d characters", MaxCustomerPhoneLen))
	}
	return nil
}
