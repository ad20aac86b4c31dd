package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/database"
)

// HealthCheckJob performs database integrity checks.
// Runs every 6 hours to catch SQLite corruption early.
type HealthCheckJob struct {
	log zerolog.Logger
	db  *database.DB
}

// NewHealthCheckJob creates a new health check job
func NewHealthCheckJob(db *database.DB, log zerolog.Logger) *HealthCheckJob {
	return &HealthCheckJob{
		log: log.With().Str("job", "health_check").Logger(),
		db:  db,
	}
}

// Name returns the job name
func (j *HealthCheckJob) Name() string {
	return "health_check"
}

// Run executes the health check
func (j *HealthCheckJob) Run() error {
	j.log.Info().Msg("Starting database health check")
	startTime := time.Now()

	if err := j.checkIntegrity(j.db.Conn()); err != nil {
		j.log.Error().Err(err).Msg("Database integrity check failed")
		return err
	}

	j.checkWALCheckpoint()

	j.log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Health check completed successfully")

	return nil
}

// checkIntegrity runs SQLite's PRAGMA integrity_check
func (j *HealthCheckJob) checkIntegrity(db *sql.DB) error {
	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check returned: %s", result)
	}
	return nil
}

// checkWALCheckpoint monitors WAL checkpoint status
func (j *HealthCheckJob) checkWALCheckpoint() {
	var mode, busy, walFrames, checkpointed int
	err := j.db.Conn().QueryRow("PRAGMA wal_checkpoint(PASSIVE)").Scan(&mode, &busy, &walFrames, &checkpointed)
	if err != nil {
		j.log.Warn().Err(err).Msg("Failed to check WAL checkpoint")
		return
	}

	if walFrames > 1000 {
		j.log.Warn().
			Int("wal_frames", walFrames).
			Int("checkpointed", checkpointed).
			Msg("WAL file is large, checkpoint may be needed")
	} else {
		j.log.Debug().
			Int("wal_frames", walFrames).
			Msg("WAL checkpoint status OK")
	}
}
