// Package health answers the readiness question for the sales backend:
// can a request that writes an order or a payment succeed right now?
// Postgres is the only hard dependency; Redis is reported but never
// fails the check, since every cached path falls back to the database.
package health

import (
	"context"
	"time"

	"vente-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pingTimeout bounds the database ping so a wedged pool cannot hang
// the readiness endpoint.
const pingTimeout = 2 * time.Second

type HealthChecker struct {
	db *pgxpool.Pool
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Cache    string         `json:"cache"`
}

type DatabaseHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

// Check pings the database and reads the cache connection state. The
// overall status follows the database alone.
func (h *HealthChecker) Check() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	cacheStatus := "down"
	if cache.Available() {
		cacheStatus = "up"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
		Cache:    cacheStatus,
	}
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}
	return DatabaseHealth{Status: status, LatencyMS: latency}
}
