package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/config"
	_ "roo-petroleum-web/docs" // Important for Swagger
	"roo-petroleum-web/internal/content"
	v1 "roo-petroleum-web/internal/delivery/http/v1"
	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/repository/postgres"
	"roo-petroleum-web/internal/theme"
	"roo-petroleum-web/internal/ui"
	"roo-petroleum-web/internal/usecase"
	"roo-petroleum-web/pkg/database"
	"roo-petroleum-web/pkg/email"
	"roo-petroleum-web/pkg/flash"
	"roo-petroleum-web/pkg/logger"
	"roo-petroleum-web/pkg/redis"
	"roo-petroleum-web/pkg/security"
	"roo-petroleum-web/pkg/validation"
)

// @title           Roo Petroleum Website API
// @version         1.0
// @description     JSON API behind the Roo Petroleum website contact form.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	if err := run(cfg); err != nil {
		logger.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// run owns every resource opened at start-up; returning runs the deferred
// cleanup, including the security log flush, before main exits.
func run(cfg *config.Config) error {

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting Roo Petroleum website", "port", cfg.Port)

	secLogger := security.InitSecurityLogger(cfg.SecurityServiceName, cfg.SecurityLogEnvironment)
	defer secLogger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	healthChecks := map[string]usecase.HealthCheck{}

	// 3. Setup Database (optional: archives inquiries and security events)
	var inquiryRepo domain.InquiryRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(startCtx, cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer dbPool.Close()

		inquiryRepo = postgres.NewInquiryRepository(dbPool)
		secLogger.SetPersistFunc(postgres.NewSecurityEventRepo(dbPool).Persist)
		healthChecks["database"] = inquiryRepo.Ping
	}

	// 4. Setup Redis (optional: shared rate limit counters)
	if cfg.UpstashRedisURL != "" {
		err := redis.Initialize(startCtx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting will use in-memory fallback", "error", err)
		} else {
			defer redis.Close()
			healthChecks["redis"] = redis.HealthCheck
		}
	}

	// 5. Setup Submission Handlers
	var handlers usecase.ChainHandler
	if inquiryRepo != nil && cfg.ContactArchiveToDB {
		// Archive first: ids are per submission, so a retry never duplicates a row
		handlers = append(handlers, usecase.NewArchiveHandler(inquiryRepo))
	}
	emailService := email.NewEmailService(cfg)
	if emailService.IsConfigured() {
		handlers = append(handlers, usecase.NewEmailHandler(emailService))
	} else {
		logger.Log.Warn("Email service not fully configured - inquiries will not be emailed")
	}

	var submit domain.SubmissionHandler = handlers
	if len(handlers) == 0 {
		logger.Log.Warn("No delivery configured - contact submissions are simulated")
		submit = usecase.NewSimulatedHandler(cfg.ContactSimulatedDelay, logger.Log)
	}
	submit = usecase.NewRetryHandler("contact", submit, cfg.ContactSubmitTimeout, cfg.ContactRetryBackoff, logger.Log)

	// 6. Setup UseCases
	site, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load site content: %w", err)
	}
	contactUC := usecase.NewContactUsecase(submit, validation.New(), site.ServiceTypes, logger.Log)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	flashStore, err := flash.NewStore(cfg.FlashSecret, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to set up flash messages: %w", err)
	}
	if cfg.FlashSecret == "" {
		logger.Log.Warn("FLASH_SECRET not set - using a per-process key")
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Pages:     ui.NewPages(ui.NewKit(theme.Default()), site),
		Flash:     flashStore,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen failed: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
