package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	backupUseCase "github.com/mblud/poker-tracker-backend/internal/domain/usecase/backup"
	"github.com/mblud/poker-tracker-backend/internal/domain/usecase/ledger"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/handler"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/routes"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/database"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/idgen"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/logger"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/repository"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/repository/memory"
	timeProvider "github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/time"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/config"
)

// storage bundles the four repository ports regardless of backend
type storage struct {
	players   persistence.PlayerRepository
	payments  persistence.PaymentRepository
	cashOuts  persistence.CashOutRepository
	snapshots persistence.SnapshotRepository
	close     func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()
	idGenerator := idgen.NewUUIDGenerator()

	store, err := buildStorage(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialize storage", map[string]any{
			"backend": cfg.Storage.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	if store.close != nil {
		defer func() {
			_ = store.close()
		}()
	}

	// Validated by cfg.Validate above
	dealerFeeCents, _ := cfg.Game.DealerFeeCents()
	policy, _ := cfg.Game.Policy()

	engine := ledger.NewEngine(
		store.players,
		store.payments,
		store.cashOuts,
		idGenerator,
		tp,
		appLogger,
		dealerFeeCents,
		policy,
	)
	backupService := backupUseCase.NewService(store.snapshots, tp, appLogger)

	playerHandler := handler.NewPlayerHandler(engine, appLogger)
	paymentHandler := handler.NewPaymentHandler(engine, appLogger)
	cashOutHandler := handler.NewCashOutHandler(engine, appLogger)
	adminHandler := handler.NewAdminHandler(engine, backupService, cfg.Storage.Backend, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, playerHandler, paymentHandler, cashOutHandler, adminHandler)

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
			"port":            cfg.Server.Port,
			"env":             cfg.Environment,
			"storage_backend": cfg.Storage.Backend,
			"dealer_fee":      cfg.Game.DealerFee,
			"cash_out_policy": cfg.Game.CashOutPolicy,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Drain the per-player queues before closing the listener's connections
	engine.Shutdown()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildStorage wires the configured persistence backend behind the
// repository ports
func buildStorage(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		appLogger.Warn("Using in-memory storage, data is lost on restart", nil)
		store := memory.NewStore()
		return &storage{
			players:   store.Players(),
			payments:  store.Payments(),
			cashOuts:  store.CashOuts(),
			snapshots: store.Snapshots(),
		}, nil

	case config.BackendPostgres:
		dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
		db, err := dbManager.Connect()
		if err != nil {
			return nil, err
		}
		if err := dbManager.Migrate(); err != nil {
			_ = dbManager.Close()
			return nil, err
		}
		return &storage{
			players:   repository.NewPlayerRepository(db, tp, appLogger),
			payments:  repository.NewPaymentRepository(db, appLogger),
			cashOuts:  repository.NewCashOutRepository(db, appLogger),
			snapshots: repository.NewSnapshotRepository(db, tp, appLogger),
			close:     dbManager.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
