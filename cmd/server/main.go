package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dataquality/internal/cache"
	"dataquality/internal/config"
	"dataquality/internal/handler"
	"dataquality/internal/port"
	"dataquality/internal/repository/postgres"
	"dataquality/internal/router"
	"dataquality/internal/service"
	s3storage "dataquality/internal/storage/s3"
	"dataquality/internal/validator"
	"dataquality/internal/validator/client"
)

const shutdownTimeout = 15 * time.Second

// @title           Client Data Quality API
// @version         1.0
// @description     Validation rules engine for core-banking client records (bkcli).
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	clientRepo := postgres.NewClientRepo(db)
	var overrideRepo port.RuleOverrideRepository
	if cfg.Rules.Persist {
		overrideRepo = postgres.NewRuleOverrideRepo(db)
	}

	// Initialize response cache. Redis is optional; the in-process store takes over when
	// it is not configured or not reachable.
	memory := cache.NewMemoryStore(cfg.Cache.MemoryCapacity)
	cacheStore := cache.NewStore(nil, memory, cfg.Cache.TTL)
	var cachePinger handler.Pinger
	if cfg.Redis.URL != "" {
		rdb, err := cache.ConnectRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Printf("redis unavailable, using in-memory cache: %v", err)
		} else {
			defer rdb.Close()
			cacheStore = cache.NewStore(rdb, memory, cfg.Cache.TTL)
			cachePinger = cacheStore
		}
	}

	// Initialize rule table and engine
	table, err := client.LoadTable(cfg.Rules.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load rule table: %w", err)
	}
	engine := validator.NewEngine(table, client.NewRegistry())

	// Initialize storage
	var reportStorage port.ObjectStorage
	if cfg.S3.Enabled() {
		reportStorage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		log.Printf("report archive disabled: no S3 bucket configured")
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT)
	validationSvc := service.NewValidationService(engine)
	ruleSvc := service.NewRuleService(table, overrideRepo, cacheStore, cfg.Cache.KeyPrefix)
	statsSvc := service.NewStatsService(clientRepo)
	anomalySvc := service.NewAnomalyService(clientRepo, validationSvc)
	reportSvc := service.NewReportService(anomalySvc, table, reportStorage, cfg.S3.PresignExpiry)

	if cfg.Rules.Persist {
		applied, err := ruleSvc.Restore(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore rule overrides: %w", err)
		}
		log.Printf("restored %d rule overrides", applied)
	}
	log.Printf("rule table loaded: %d rules", len(ruleSvc.List()))

	// Initialize handlers
	exposeDetail := !cfg.Server.IsProduction()
	validationH := handler.NewValidationHandler(validationSvc, exposeDetail)
	rulesH := handler.NewRulesHandler(ruleSvc, exposeDetail)
	anomalyH := handler.NewAnomalyHandler(anomalySvc)
	statsH := handler.NewStatsHandler(statsSvc)
	reportH := handler.NewReportHandler(reportSvc)
	cacheH := handler.NewCacheHandler(cacheStore, cfg.Cache.KeyPrefix)
	healthH := handler.NewHealthHandler(postgres.Pinger{DB: db}, cachePinger)

	// Setup router
	opts := router.Options{
		LogLevel:       cfg.Log.Level,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CachePrefix:    cfg.Cache.KeyPrefix,
		CacheTTL:       cfg.Cache.TTL,
	}
	if cfg.Cache.Enabled {
		opts.Cache = cacheStore
	}
	r := router.Setup(opts, authSvc, validationH, rulesH, anomalyH, statsH, reportH, cacheH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
