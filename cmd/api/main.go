package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stocksense-io/stocksense-backend/internal/config"
	"github.com/stocksense-io/stocksense-backend/internal/modules/agent"
	"github.com/stocksense-io/stocksense-backend/internal/modules/auth"
	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
	"github.com/stocksense-io/stocksense-backend/internal/modules/purchasing"
	"github.com/stocksense-io/stocksense-backend/internal/modules/sales"
	"github.com/stocksense-io/stocksense-backend/internal/modules/support"
	"github.com/stocksense-io/stocksense-backend/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := storage.Open(cfg.Postgres)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to database")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// ── Repositories ────────────────────────────────────────
	productRepo := inventory.NewPostgresRepository(db)
	salesRepo := sales.NewPostgresRepository(db)
	poRepo := purchasing.NewPostgresRepository(db)
	customerRepo := support.NewCustomerPostgresRepository(db)
	orderRepo := support.NewOrderPostgresRepository(db)
	refundRepo := support.NewRefundPostgresRepository(db)
	credentialRepo := auth.NewPostgresRepository(db)

	// ── Services ────────────────────────────────────────────
	inventoryService := inventory.NewService(productRepo, logger)
	salesService := sales.NewService(productRepo, salesRepo, logger)
	purchasingService := purchasing.NewService(poRepo, productRepo, logger)
	supportService := support.NewService(customerRepo, orderRepo, refundRepo, logger)
	authService := auth.NewService(credentialRepo, cfg.JWT.Secret, cfg.JWT.TokenTTL)

	dispatcher := agent.NewDispatcher(
		inventoryService, salesService, purchasingService, supportService, logger)

	// ── Routes ──────────────────────────────────────────────
	auth.NewHandler(authService).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		inventory.NewHandler(inventoryService).RegisterRoutes(r)
		sales.NewHandler(salesService).RegisterRoutes(r)
		purchasing.NewHandler(purchasingService).RegisterRoutes(r)
		support.NewHandler(supportService).RegisterRoutes(r)
		agent.NewHandler(dispatcher).RegisterRoutes(r)
	})

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
