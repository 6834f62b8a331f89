package handlers

import (
	"context"
	"time"

	"shellwatch/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports the state of the optional backing services. A nil
// dependency is reported as disabled.
type HealthHandler struct {
	cache       *cache.CacheService
	db          *gorm.DB
	decisionLog string
	textGen     string
}

func NewHealthHandler(cacheService *cache.CacheService, db *gorm.DB, decisionLog, textGen string) *HealthHandler {
	return &HealthHandler{
		cache:       cacheService,
		db:          db,
		decisionLog: decisionLog,
		textGen:     textGen,
	}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"service": "Shellwatch risk intelligence API",
	})
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	services := fiber.Map{
		"redis":          h.redisStatus(ctx),
		"database":       h.databaseStatus(ctx),
		"decision_log":   h.decisionLog,
		"text_generator": h.textGen,
	}

	status := "ok"
	for _, s := range []interface{}{services["redis"], services["database"]} {
		if s == "down" {
			status = "degraded"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"services": services,
	})
}

func (h *HealthHandler) CacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"enabled": false})
	}
	poolStats := h.cache.GetStats()

	return c.JSON(fiber.Map{
		"enabled": true,
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.cache == nil {
		return "disabled"
	}
	if err := h.cache.HealthCheck(ctx); err != nil {
		return "down"
	}
	return "connected"
}

func (h *HealthHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return "disabled"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "down"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "down"
	}
	return "connected"
}
