package models

import "time"

// Order represents an order record. Items holds the product ids attached to
// the order, in attachment order. Orders are immutable once created.
type Order struct {
	ID         int64     `json:"id"`
	OrderDate  time.Time `json:"order_date"`
	CustomerID int64     `json:"customer_id"`
	Items      []int64   `json:"items"`
}

// Validate performs basic validation on order data
func (o *Order) Validate() error {
	if o.CustomerID <= 0 {
		return ErrInvalidInput("customer_id is required")
	}
	seen := make(map[int64]struct{}, len(o.Items))
	for _, id := range o.Items {
		if id <= 0 {
			return ErrInvalidInput("items must contain positive product ids")
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidInput("items must not contain duplicate product ids")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// DateOnly truncates a timestamp to its calendar date in UTC, matching the
// DATE column the order is stored in.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
