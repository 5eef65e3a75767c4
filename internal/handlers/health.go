package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	pool *database.Pool
}

// PoolStats is the connection pool snapshot reported by /health
type PoolStats struct {
	MaxOpen   int   `json:"max_open"`
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	WaitCount int64 `json:"wait_count"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Pool      PoolStats `json:"pool"`
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(pool *database.Pool) *HealthHandler {
	return &HealthHandler{
		pool: pool,
	}
}

// Health pings the store and reports pool usage
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Database:  "healthy",
	}

	stats := h.pool.Stats()
	response.Pool = PoolStats{
		MaxOpen:   stats.MaxOpenConnections,
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		WaitCount: stats.WaitCount,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("health check failed")
		response.Status = "unhealthy"
		response.Database = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
