package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dataquality/docs"
	"dataquality/internal/domain"
	"dataquality/internal/handler"
	"dataquality/internal/middleware"
	"dataquality/internal/port"
	"dataquality/internal/service"
)

// Options holds router settings that do not come from handlers.
type Options struct {
	LogLevel       string
	AllowedOrigins []string
	// Cache enables response caching of the data endpoints when non-nil.
	Cache       port.ResponseCache
	CachePrefix string
	CacheTTL    time.Duration
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	opts Options,
	authSvc service.AuthService,
	validationH *handler.ValidationHandler,
	rulesH *handler.RulesHandler,
	anomalyH *handler.AnomalyHandler,
	statsH *handler.StatsHandler,
	reportH *handler.ReportHandler,
	cacheH *handler.CacheHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.LogLevel))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	requireAuth := middleware.AuthMiddleware(authSvc)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Validation and rule table. Reads and partial updates are open to the
	// back-office; structural changes need an admin token.
	validation := v1.Group("/validation")
	validation.Use(middleware.OptionalAuth(authSvc))
	validation.POST("/record", validationH.ValidateRecord)
	validation.POST("/batch", validationH.ValidateBatch)
	validation.GET("/rules", rulesH.ListRules)
	validation.GET("/rules/:ruleId", rulesH.GetRule)
	validation.PUT("/rules/:ruleId", rulesH.UpdateRule)
	validation.PATCH("/rules/:ruleId", rulesH.UpdateRule)
	validation.POST("/rules", requireAuth, adminOnly, rulesH.CreateRule)
	validation.DELETE("/rules/:ruleId", requireAuth, adminOnly, rulesH.DeleteRule)
	validation.POST("/rules/:ruleId/toggle", requireAuth, adminOnly, rulesH.ToggleRule)

	// Replica data endpoints, cached
	data := v1.Group("")
	if opts.Cache != nil {
		data.Use(middleware.ResponseCache(opts.Cache, opts.CachePrefix, opts.CacheTTL))
	}
	data.GET("/stats/clients", statsH.GetClientStats)
	data.GET("/anomalies", anomalyH.ListAnomalies)
	data.GET("/anomalies/metrics", anomalyH.QualityMetrics)
	data.GET("/clients/:cli/validation", anomalyH.ValidateStoredClient)

	// Reports
	reports := v1.Group("/reports")
	reports.Use(requireAuth)
	reports.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleAuditor))
	reports.GET("/anomalies", reportH.DownloadAnomalies)
	reports.POST("/anomalies/archive", reportH.ArchiveAnomalies)

	// Cache administration
	cacheGroup := v1.Group("/cache")
	cacheGroup.GET("/stats", cacheH.Stats)
	cacheGroup.POST("/clear", requireAuth, adminOnly, cacheH.Clear)

	return r
}
