package models

import "fmt"

// MaxProductNameLen is enforced by the products table schema
const MaxProductNameLen = 300

// Product represents a product record
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"product_name"`
	Price float64 `json:"price"`
}

// Validate performs basic validation on product data
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidInput("product_name is required")
	}
	if len(p.Name) > MaxProductNameLen {
		return ErrInvalidInput(fmt.Sprintf("product_name must be at most %d characters", MaxProductNameLen))
	}
	return nil
}
