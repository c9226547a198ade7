package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/config"
	"github.com/aristath/plutus/internal/database"
	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/internal/modules/charts"
	"github.com/aristath/plutus/internal/modules/simulation"
	"github.com/aristath/plutus/internal/scheduler"
	"github.com/aristath/plutus/internal/server"
	"github.com/aristath/plutus/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger isn't up yet.
		panic(err)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Plutus projection service")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := simulation.EnsureSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare database schema")
	}

	// Services and handlers
	allocService := allocation.NewService(allocation.Bounds{
		MinRiskFreeRate: cfg.MinRiskFreeRate,
		MaxRiskFreeRate: cfg.MaxRiskFreeRate,
	}, log)
	simService := simulation.NewService(allocService, log)
	simRepo := simulation.NewRepository(db.Conn(), log)

	allocHandler := allocation.NewHandler(allocService, cfg.DefaultCorrelation, log)
	simHandler := simulation.NewHandler(simService, simRepo, cfg.DefaultCorrelation, cfg.MaxDurationMonths, log)
	chartsHandler := charts.NewHandler(simService, cfg.DefaultCorrelation, cfg.MaxDurationMonths, log)

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	if err := registerJobs(sched, simRepo, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:              cfg.Port,
		DevMode:           cfg.DevMode,
		Log:               log,
		DB:                db,
		AllocationHandler: allocHandler,
		SimulationHandler: simHandler,
		ChartsHandler:     chartsHandler,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func registerJobs(sched *scheduler.Scheduler, repo *simulation.Repository, cfg *config.Config, log zerolog.Logger) error {
	return sched.AddJob("@daily", simulation.NewPruneJob(repo, cfg.RunRetentionDays, log))
}
