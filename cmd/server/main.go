package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/api"
	"github.com/Sumantkumarraj20/KLD/internal/clock"
	"github.com/Sumantkumarraj20/KLD/internal/config"
	"github.com/Sumantkumarraj20/KLD/internal/db"
	"github.com/Sumantkumarraj20/KLD/internal/jobs"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository/sqlite"
	"github.com/Sumantkumarraj20/KLD/internal/rewards"
	"github.com/Sumantkumarraj20/KLD/internal/services"
	"github.com/Sumantkumarraj20/KLD/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("KLD Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("default_locale=%s", cfg.DefaultLocale)
	log.Debug("rewards_api_url=%s", cfg.RewardsAPIURL)
	log.Debug("sync_worker_count=%d", cfg.SyncWorkerCount)
	log.Debug("sync_queue_size=%d", cfg.SyncQueueSize)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	completionRepo := sqlite.NewCompletionRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	awardRepo := sqlite.NewAwardRepository(database.DB)

	// Background sync of earned points to the rewards service
	rewardsClient := rewards.New(cfg.RewardsAPIURL, time.Duration(cfg.RewardsTimeoutSeconds)*time.Second)
	syncPool := worker.NewPool(cfg.SyncWorkerCount, cfg.SyncQueueSize)
	jobQueue := jobs.NewWorkerQueue(syncPool, rewardsClient)

	// Services
	clk := clock.System{}
	store := services.NewSessionStore(time.Duration(cfg.SessionTTLMinutes)*time.Minute, clk)
	gameService := services.NewGameService(completionRepo, progressRepo, awardRepo, jobQueue, store, clk)
	progressService := services.NewProgressService(progressRepo, completionRepo, awardRepo, clk)

	srv := &api.Server{
		DB:              database,
		GameService:     gameService,
		ProgressService: progressService,
		DefaultLocale:   models.Locale(cfg.DefaultLocale),
	}

	ctx, cancel := context.WithCancel(context.Background())
	syncPool.Start(ctx)
	store.StartJanitor(ctx, 5*time.Minute)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel background context
	log.Debug("stopping background workers")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for pending award syncs to finish
	log.Debug("stopping sync pool")
	syncPool.Stop()

	log.Info("===========================================")
	log.Info("KLD Server Stopped")
	log.Info("===========================================")
}
