// Package main is the entry point for the API server. It generates the
// dataset, runs the scoring pass and serves the dashboard API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shellwatch/internal/config"
	"shellwatch/internal/repositories"
	"shellwatch/internal/repositories/cache"
	"shellwatch/internal/routes"
	"shellwatch/internal/services/ai"
	"shellwatch/internal/services/datagen"
	"shellwatch/internal/services/decisionlog"
	"shellwatch/internal/services/risk"
	"shellwatch/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const decisionTrailSize = 200

func main() {
	config.LoadEnv()
	cfg := config.Load()

	// Dataset and scoring pass
	now := time.Now()
	ds := datagen.Generate(datagen.Options{
		Companies:    cfg.Data.Companies,
		Transactions: cfg.Data.Transactions,
		Seed:         cfg.Data.Seed,
		Now:          now,
	})
	var scorer *risk.Scorer
	if cfg.Data.NoiseSeed != 0 {
		scorer = risk.NewSeededScorer(cfg.Data.NoiseSeed)
	} else {
		scorer = risk.NewScorer(nil)
	}
	st, err := store.Build(ds, scorer, now)
	if err != nil {
		log.Fatalf("Failed to build entity graph: %v", err)
	}

	// Decision log
	sink, db, err := decisionlog.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open decision log: %v", err)
	}
	recorder := decisionlog.NewRecorder(sink, decisionTrailSize)
	log.Printf("✅ Decision log backend: %s", recorder.Backend())
	if db != nil {
		go logPoolStats(db)
	}

	// Optional Redis cache for generated text
	var cacheService *cache.CacheService
	var promptCache ai.PromptCache
	if cfg.Redis.Enabled {
		cacheService = cache.NewCacheService(cache.NewRedisClient(cfg.Redis), cfg.AI.CacheTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cacheService.HealthCheck(ctx); err != nil {
			log.Printf("⚠️ Redis unavailable, AI replies will not be cached: %v", err)
			_ = cacheService.Close()
			cacheService = nil
		} else {
			promptCache = cacheService
			log.Println("✅ Connected to Redis")
		}
		cancel()
	}

	generator, err := ai.NewTextGenerator(cfg.AI, promptCache)
	if err != nil {
		log.Fatalf("Failed to configure text generator: %v", err)
	}
	log.Printf("✅ Text generator: %s", generator.Name())

	app := fiber.New(fiber.Config{
		AppName:      "shellwatch",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 10*time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Analyst-ID",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, st, routes.Deps{
		Generator:   generator,
		Recorder:    recorder,
		Cache:       cacheService,
		DB:          db,
		AIRateLimit: cfg.AIRateLimit,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("⚠️ Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ Failed to shut down cleanly: %v", err)
	}
	if err := recorder.Close(); err != nil {
		log.Printf("⚠️ Failed to close decision log: %v", err)
	}
	if db != nil {
		repositories.CloseDB(db)
	}
	if cacheService != nil {
		if err := cacheService.Close(); err != nil {
			log.Printf("⚠️ Failed to close Redis connection: %v", err)
		}
	}
}

func logPoolStats(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		stats := sqlDB.Stats()
		log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
			stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
	}
}
