package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/clients/inference"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/config"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/database"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/accuracy"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/audit"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/history"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/recommendations"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/report"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/scheduler"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/server"
	"github.com/shansomashekar-star/energy-assesmnet-residential-model/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting energy audit service")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Domain collaborators
	inferenceClient := inference.New(cfg.InferenceServiceURL, log)
	engine := audit.New(log)
	formatter := recommendations.New(log)
	assembler := report.NewAssembler(log)
	historyRepo := history.NewRepository(db.Conn(), log)
	accuracyRepo := accuracy.NewRepository(db.Conn(), log)
	tracker := accuracy.NewTracker(accuracyRepo, log)

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	// Register background jobs
	if err := registerJobs(sched, db, tracker, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		DB:        db,
		Config:    cfg,
		DevMode:   cfg.DevMode,
		Inference: inferenceClient,
		Engine:    engine,
		Formatter: formatter,
		Assembler: assembler,
		History:   historyRepo,
		Accuracy:  accuracyRepo,
		Tracker:   tracker,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
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

func registerJobs(sched *scheduler.Scheduler, db *database.DB, tracker *accuracy.Tracker, log zerolog.Logger) error {
	// Nightly accuracy summary at 3 AM
	if err := sched.AddJob("0 0 3 * * *", scheduler.NewAccuracySummaryJob(tracker, log)); err != nil {
		return err
	}

	// Database integrity check every 6 hours
	return sched.AddJob("@every 6h", scheduler.NewHealthCheckJob(db, log))
}
