package handler

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopledger/backend/internal/cache"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db           *sql.DB
	productCache cache.ProductCache
	logger       *slog.Logger
}

// NewHealthHandler creates a new health handler. productCache may be nil.
func NewHealthHandler(db *sql.DB, productCache cache.ProductCache, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		productCache: productCache,
		logger:       logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string),
	}

	// Check database
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("database health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services["database"] = "unhealthy"
	} else {
		response.Services["database"] = "healthy"
	}

	// Check cache
	if h.productCache != nil {
		if err := h.productCache.Health(ctx); err != nil {
			h.logger.Error("cache health check failed", slog.String("error", err.Error()))
			response.Status = "unhealthy"
			response.Services["cache"] = "unhealthy"
		} else {
			response.Services["cache"] = "healthy"
		}
	} else {
		response.Services["cache"] = "not_configured"
	}

	if response.Status == "healthy" {
		respondSuccess(w, response)
	} else {
		respondJSON(w, http.StatusServiceUnavailable, response)
	}
}

// Home handles GET /
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the e-commerce records API!"))
}
