package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopledger/backend/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable once created, so there is no update or delete.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	// ListItems returns the products attached to an order, in attachment
	// order.
	ListItems(ctx context.Context, orderID int64) ([]*models.Product, error)
}

// orderRepository implements OrderRepository using PostgreSQL
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and one association row per item inside a
// single transaction. A foreign key violation on any insert rolls the whole
// order back.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (order_date, customer_id)
		VALUES ($1, $2)
		RETURNING id, order_date`

	err = tx.QueryRowContext(ctx, orderQuery, order.OrderDate, order.CustomerID).
		Scan(&order.ID, &order.OrderDate)
	if isForeignKeyViolation(err) {
		return models.ErrInvalidInput(fmt.Sprintf("customer with ID %d does not exist", order.CustomerID))
	}
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_products (order_id, product_id, position)
		VALUES ($1, $2, $3)`

	for pos, productID := range order.Items {
		_, err := tx.ExecContext(ctx, itemQuery, order.ID, productID, pos)
		if isForeignKeyViolation(err) {
			return models.ErrInvalidInput(fmt.Sprintf("product with ID %d does not exist", productID))
		}
		if err != nil {
			return fmt.Errorf("failed to attach product %d: %w", productID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetByID retrieves an order and its item ids
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `
		SELECT id, order_date, customer_id
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.OrderDate,
		&order.CustomerID,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("order with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	itemQuery := `
		SELECT product_id
		FROM order_products
		WHERE order_id = $1
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list order item ids: %w", err)
	}
	defer rows.Close()

	order.Items = []int64{}
	for rows.Next() {
		var productID int64
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("failed to scan order item id: %w", err)
		}
		order.Items = append(order.Items, productID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item ids: %w", err)
	}

	return order, nil
}

// ListItems retrieves the products attached to an order through the
// order_products association, in attachment order
func (r *orderRepository) ListItems(ctx context.Context, orderID int64) ([]*models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY op.position`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return products, nil
}
