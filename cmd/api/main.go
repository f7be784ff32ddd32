package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	leaseUseCase "github.com/amirhossein-jamali/lease-processor/internal/domain/usecase/lease"

	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/wallet"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and collaborators
	leaseLockRepo := repository.NewLeaseLockRepository(dbManager.DB(), tp, appLogger)
	partyRepo := repository.NewPartyRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	ledger := wallet.NewMemoryLedger(appLogger)
	notifier := notification.NewAsyncNotifier(cfg.Lease.NotificationQueueLen, appLogger)
	defer notifier.Close()

	// Seed demo data for development environments
	if cfg.Lease.SeedDemoData {
		if err := migration.SeedDemoData(context.Background(), dbManager.DB(), tp, appLogger); err != nil {
			appLogger.Error("Failed to seed demo data", map[string]any{
				"error": err.Error(),
			})
		}
		// Give the demo tenants spending money
		for accountID, amount := range map[uint64]string{1: "50000.00", 3: "50000.00"} {
			if err := ledger.Fund(accountID, amount); err != nil {
				appLogger.Warn("Failed to fund demo wallet", map[string]any{
					"account_id": accountID,
					"error":      err.Error(),
				})
			}
		}
	}

	// Initialize lease lifecycle service
	lockTimeout := time.Duration(cfg.Lease.LockTimeoutMs) * time.Millisecond
	leaseService := leaseUseCase.NewService(
		uow,
		leaseLockRepo,
		partyRepo,
		ledger,
		notifier,
		tp,
		appLogger,
		lockTimeout,
	)

	// Reap decision locks abandoned by crashed callers
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go func() {
		ticker := time.NewTicker(10 * lockTimeout)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				err := database.RetryOnTransientError(janitorCtx, database.DefaultRetryConfig(), func() error {
					return leaseLockRepo.CleanupExpiredLocks(janitorCtx)
				}, appLogger)
				if err != nil {
					appLogger.Warn("Failed to clean up expired lease locks", map[string]any{
						"error": err.Error(),
					})
				}
			}
		}
	}()

	// Initialize API handlers
	leaseHandler := handler.NewLeaseHandler(leaseService, appLogger)
	scheduleHandler := handler.NewScheduleHandler(leaseService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, leaseHandler, scheduleHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("LP_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or LP_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}
	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("LP_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or LP_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}
	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("LP_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or LP_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}
	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("LP_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or LP_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Lease.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "lease.lockTimeoutMs")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
