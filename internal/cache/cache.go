package cache

import (
	"context"

	"github.com/shopledger/backend/internal/models"
)

// ProductCache defines the interface for the optional product read cache.
// A cache miss is reported as (nil, nil); errors are reserved for transport
// failures.
type ProductCache interface {
	// Get returns the cached product for id, or nil on a miss.
	Get(ctx context.Context, id int64) (*models.Product, error)

	// Set stores a product under its id with the configured TTL.
	Set(ctx context.Context, product *models.Product) error

	// Close closes the cache connection
	Close() error

	// Health checks if the cache is reachable
	Health(ctx context.Context) error
}
