// Package routes wires services and handlers onto the fiber app.
package routes

import (
	"time"

	"shellwatch/internal/handlers"
	"shellwatch/internal/middleware"
	"shellwatch/internal/repositories/cache"
	"shellwatch/internal/services/ai"
	"shellwatch/internal/services/alert"
	"shellwatch/internal/services/company"
	"shellwatch/internal/services/compliance"
	"shellwatch/internal/services/dashboard"
	"shellwatch/internal/services/decisionlog"
	"shellwatch/internal/services/report"
	"shellwatch/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Deps are the collaborators built in main. Cache and DB may be nil.
type Deps struct {
	Generator   ai.TextGenerator
	Recorder    *decisionlog.Recorder
	Cache       *cache.CacheService
	DB          *gorm.DB
	AIRateLimit int
}

// SetupRoutes builds the services over st and registers every route.
func SetupRoutes(app *fiber.App, st *store.Store, deps Deps) {
	// Services
	aiService := ai.NewService(deps.Generator, st.Graph, st.Scores)
	companyService := company.NewService(st.Graph, st.Scores)
	alertService := alert.NewService(st.Alerts, deps.Recorder)
	dashboardService := dashboard.NewService(st.Graph, st.Scores, st.Alerts)
	complianceService := compliance.NewService(st.Graph, aiService, deps.Recorder)
	reportService := report.NewService(st.Reports, aiService, deps.Recorder)

	// Handlers
	healthHandler := handlers.NewHealthHandler(deps.Cache, deps.DB, deps.Recorder.Backend(), aiService.Backend())
	companyHandler := handlers.NewCompanyHandler(companyService)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	aiHandler := handlers.NewAIHandler(aiService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/health/cache", healthHandler.CacheStats)

	// Read surface
	app.Get("/companies", companyHandler.ListCompanies)
	app.Get("/company/:id", companyHandler.GetCompany)
	app.Get("/network/:id", companyHandler.GetNetwork)
	app.Get("/alerts", alertHandler.ListAlerts)
	app.Get("/dashboard/metrics", dashboardHandler.GetMetrics)

	api := app.Group("/api", middleware.AnalystIdentity)

	aiGroup := api.Group("/ai", aiLimiter(deps.AIRateLimit))
	aiGroup.Post("/chat", aiHandler.Chat)
	aiGroup.Post("/analyze", aiHandler.Analyze)

	api.Post("/alerts/suppress", alertHandler.SuppressAlert)

	complianceGroup := api.Group("/compliance")
	complianceGroup.Post("/sar", complianceHandler.DraftSAR)
	complianceGroup.Post("/escalate", complianceHandler.Escalate)
	complianceGroup.Post("/inquiry", complianceHandler.CreateInquiry)
	api.Get("/audit/logs", complianceHandler.AuditLogs)

	reportGroup := api.Group("/reports")
	reportGroup.Post("/create", complianceHandler.CreateCaseFile)
	reportGroup.Post("/submit", reportHandler.Submit)
	reportGroup.Get("/list", reportHandler.List)
	reportGroup.Post("/review", reportHandler.Review)
}

// aiLimiter caps text-generation calls per client IP. A non-positive max
// disables the limit.
func aiLimiter(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
