package main

import (
	"fmt"
	"net/http"
	"os"

	"finsight/internal/aiclient"
	"finsight/internal/config"
	"finsight/internal/database"
	"finsight/internal/logger"
	"finsight/internal/router"
	"finsight/internal/validator"
)

// @title           Finsight Expense Tracker API
// @version         1.0
// @description     Personal finance API for expenses, trips, approvals, budget limits and AI spending predictions.

// @host      localhost:5000
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	predictor := aiclient.New(cfg.AIServiceURL, &http.Client{}, aiclient.Timeouts{
		Train:   cfg.AITrainTimeout,
		Predict: cfg.AIPredictTimeout,
		Compare: cfg.AICompareTimeout,
		Status:  cfg.AIStatusTimeout,
	})

	r := router.New(router.Deps{
		Config:    cfg,
		DB:        dbManager.DB(),
		Pinger:    dbManager,
		Predictor: predictor,
	})

	log.Infof("Starting expense tracker server on port %s (%s)", cfg.Port, cfg.Env)
	log.Infof("AI service expected at %s", predictor.BaseURL())
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return r.Run(":" + cfg.Port)
}
