package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopledger/backend/internal/models"
)

// redisCache implements ProductCache using Redis
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// RedisConfig holds Redis cache configuration
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// NewRedisCache creates a new Redis-backed product cache
func NewRedisCache(cfg RedisConfig, logger *slog.Logger) (ProductCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis cache",
		slog.String("addr", opts.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns the cached product for id, or nil on a miss
func (c *redisCache) Get(ctx context.Context, id int64) (*models.Product, error) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product from cache: %w", err)
	}

	product := &models.Product{}
	if err := json.Unmarshal(data, product); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten on
		// the next Set.
		c.logger.Warn("discarding corrupt cache entry",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	return product, nil
}

// Set stores a product under its id with the configured TTL
func (c *redisCache) Set(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	if err := c.client.Set(ctx, productKey(product.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write product to cache: %w", err)
	}

	return nil
}

// Close closes the Redis connection
func (c *redisCache) Close() error {
	return c.client.Close()
}

// Health checks if Redis is reachable
func (c *redisCache) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}

	return nil
}
