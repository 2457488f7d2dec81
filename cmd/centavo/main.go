package main

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/centavo-dev/centavo/configs"
	"github.com/centavo-dev/centavo/db"
	"github.com/centavo-dev/centavo/internal/auth"
	"github.com/centavo-dev/centavo/internal/handlers"
	"github.com/centavo-dev/centavo/internal/logger"
	"github.com/centavo-dev/centavo/internal/middleware"
	"github.com/centavo-dev/centavo/internal/router"
	"github.com/centavo-dev/centavo/internal/services"
	"github.com/centavo-dev/centavo/internal/store"
)

func main() {
	// A .env file is optional; configs.Load falls back to the process
	// environment.
	_ = godotenv.Load()

	logger.Init()
	defer logger.Log.Sync()

	// Clients expect monetary values as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := configs.Load()
	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	database, err := db.Connect(cfg.DB.DSN)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(database); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	stores := store.New(database)
	tokens := auth.NewManager(cfg.JWT.Secret)

	userService := services.NewUserService(stores.Users, stores.Transactions, stores.Goals)
	transactionService := services.NewTransactionService(stores.Users, stores.Transactions)
	goalService := services.NewGoalService(stores.Users, stores.Goals, stores.Transactions)
	reportService := services.NewReportService(stores.Users, stores.Transactions)

	r := router.New(router.Deps{
		Users:          handlers.NewUserHandler(userService, tokens),
		Transactions:   handlers.NewTransactionHandler(transactionService),
		Goals:          handlers.NewGoalHandler(goalService),
		Reports:        handlers.NewReportHandler(reportService),
		Auth:           middleware.Auth(tokens, stores.Users),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	logger.Log.Info("starting server", zap.String("port", cfg.HTTP.Port))

	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}
