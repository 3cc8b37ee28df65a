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

	adminUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/admin"
	approvalUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/approval"
	couponUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/coupon"
	ledgerUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/ledger"
	userUseCase "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/usecase/user"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/coupon/staticregistry"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/persistence"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/handler"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/routes"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/database"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/database/migration"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/logger"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/repository"
	timeProvider "github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/time"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
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
	}

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	approvalRepo := repository.NewApprovalRepository(conn.DB, appLogger)

	// Unit of work over the shared handle
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Coupon registry: static in-process table or the persisted one
	couponRepo, err := buildCouponRegistry(cfg, conn, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to build coupon registry", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed development users
	if cfg.Environment != "production" && len(cfg.Seed.DefaultUserIDs) > 0 {
		if err := migration.SeedDefaultUsers(context.Background(), userRepo, tp, appLogger, cfg.Seed.DefaultUserIDs); err != nil {
			appLogger.Error("Failed to seed default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize use cases
	recorder := ledgerUseCase.NewRecorder(uow, tp, appLogger)
	issuer := approvalUseCase.NewIssuer(uow, tp, appLogger)

	// The persisted registry claims inside the ledger's unit of work;
	// the static one lives in process and compensates on failure.
	var redeemer *couponUseCase.Redeemer
	if cfg.Coupon.Registry == config.RegistryStatic {
		redeemer = couponUseCase.NewStaticRedeemer(couponRepo, uow, tp, appLogger)
	} else {
		redeemer = couponUseCase.NewRedeemer(uow, tp, appLogger)
	}
	adjuster := adminUseCase.NewAdjuster(recorder, appLogger)
	queries := userUseCase.NewUserUseCase(userRepo, transactionRepo, approvalRepo, appLogger)

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize API handlers
	approvalHandler := handler.NewApprovalHandler(issuer, m, appLogger)
	creditHandler := handler.NewCreditHandler(recorder, m, appLogger)
	couponHandler := handler.NewCouponHandler(redeemer, m, appLogger)
	userHandler := handler.NewUserHandler(queries, appLogger)
	adminHandler := handler.NewAdminHandler(adjuster, queries, couponRepo, m, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, m)
	routes.SetupRoutes(router, approvalHandler, creditHandler, couponHandler, userHandler, adminHandler, registry)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
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

// buildCouponRegistry wires the coupon port to the backing selected in
// config. The static registry lives in process; the database registry
// additionally seeds any static table rows so both backings can boot
// from the same config.
func buildCouponRegistry(
	cfg *config.Config,
	conn *database.Connection,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (persistence.CouponRepository, error) {
	static, err := cfg.StaticCoupons()
	if err != nil {
		return nil, err
	}

	seed := make([]*entity.Coupon, 0, len(static))
	for _, row := range static {
		coupon, err := entity.NewCoupon(row.Code, row.CreditAmount, row.UsageLimit, row.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("static coupon %q: %w", row.Code, err)
		}
		seed = append(seed, coupon)
	}

	if cfg.Coupon.Registry == config.RegistryStatic {
		return staticregistry.New(seed), nil
	}

	couponRepo := repository.NewCouponRepository(conn.DB, tp, appLogger)
	if len(seed) > 0 {
		if err := migration.SeedCoupons(context.Background(), couponRepo, appLogger, seed); err != nil {
			return nil, err
		}
	}
	return couponRepo, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database")
	}
	if cfg.Coupon.Registry != config.RegistryDatabase && cfg.Coupon.Registry != config.RegistryStatic {
		missing = append(missing, "coupon.registry")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
