package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/modules/accuracy"
)

// AccuracySummaryJob logs the rolling prediction accuracy metrics.
// Runs nightly so model drift shows up in the logs without anyone
// polling the API.
type AccuracySummaryJob struct {
	tracker *accuracy.Tracker
	log     zerolog.Logger
}

// NewAccuracySummaryJob creates a new accuracy summary job
func NewAccuracySummaryJob(tracker *accuracy.Tracker, log zerolog.Logger) *AccuracySummaryJob {
	return &AccuracySummaryJob{
		tracker: tracker,
		log:     log.With().Str("job", "accuracy_summary").Logger(),
	}
}

// Name returns the job name
func (j *AccuracySummaryJob) Name() string {
	return "accuracy_summary"
}

// Run computes and logs the current accuracy summary
func (j *AccuracySummaryJob) Run() error {
	metrics, err := j.tracker.Summary()
	if err != nil {
		return err
	}

	if metrics.Samples == 0 {
		j.log.Info().Msg("No resolved predictions yet")
		return nil
	}

	j.log.Info().
		Int("samples", metrics.Samples).
		Float64("mae_percent", metrics.MAEPct).
		Float64("bias", metrics.Bias).
		Float64("accuracy_15pct", metrics.AccuracyIn15Pct).
		Msg("Prediction accuracy summary")

	return nil
}
