// Package accuracy tracks how the usage model performs against utility
// bills that homeowners later report back.
package accuracy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/database/repositories"
)

// Prediction is one stored predicted-vs-actual pair. ActualKBTU is nil
// until the homeowner reports a real figure.
type Prediction struct {
	UUID          string     `json:"uuid"`
	AuditUUID     string     `json:"audit_uuid"`
	PredictedKBTU float64    `json:"predicted_kbtu"`
	ActualKBTU    *float64   `json:"actual_kbtu,omitempty"`
	ReportedAt    *time.Time `json:"reported_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Repository handles CRUD operations for predictions.
type Repository struct {
	*repositories.BaseRepository
	log zerolog.Logger
}

// NewRepository creates a new prediction repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	l := log.With().Str("repository", "accuracy").Logger()
	return &Repository{
		BaseRepository: repositories.NewBase(db, l),
		log:            l,
	}
}

// Record stores the model's prediction for an audit. Returns the row UUID.
func (r *Repository) Record(auditUUID string, predictedKBTU float64) (string, error) {
	id := uuid.New().String()
	_, err := r.DB().Exec(`
		INSERT INTO predictions (uuid, audit_uuid, predicted_kbtu, created_at)
		VALUES (?, ?, ?, ?)
	`, id, auditUUID, predictedKBTU, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert prediction: %w", err)
	}
	return id, nil
}

// ReportActual attaches a reported actual usage to an audit's prediction.
func (r *Repository) ReportActual(auditUUID string, actualKBTU float64) error {
	res, err := r.DB().Exec(`
		UPDATE predictions
		SET actual_kbtu = ?, reported_at = ?
		WHERE audit_uuid = ?
	`, actualKBTU, time.Now().UTC(), auditUUID)
	if err != nil {
		return fmt.Errorf("failed to record actual usage: %w", err)
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("no prediction found for audit %s", auditUUID)
	}
	return nil
}

// Resolved returns all predictions that have a reported actual.
func (r *Repository) Resolved() ([]Prediction, error) {
	rows, err := r.DB().Query(`
		SELECT uuid, audit_uuid, predicted_kbtu, actual_kbtu, reported_at, created_at
		FROM predictions
		WHERE actual_kbtu IS NOT NULL
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var out []Prediction
	for rows.Next() {
		var p Prediction
		var actual sql.NullFloat64
		var reported sql.NullTime
		if err := rows.Scan(&p.UUID, &p.AuditUUID, &p.PredictedKBTU, &actual, &reported, &p.CreatedAt); err != nil {
			return nil, err
		}
		if actual.Valid {
			p.ActualKBTU = &actual.Float64
		}
		if reported.Valid {
			p.ReportedAt = &reported.Time
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
