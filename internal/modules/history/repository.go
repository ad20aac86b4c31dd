// Package history persists one summary row per completed audit so past
// results can be listed without re-running the engine.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shansomashekar-star/energy-assesmnet-residential-model/internal/database/repositories"
)

// AuditSummary is the stored headline of one audit run.
type AuditSummary struct {
	UUID                string    `json:"uuid"`
	Division            string    `json:"division"`
	Sqft                float64   `json:"sqft"`
	TotalKBTU           float64   `json:"total_kbtu"`
	EnergyScore         int       `json:"energy_score"`
	Grade               string    `json:"grade"`
	RecommendationCount int       `json:"recommendation_count"`
	TotalAnnualSavings  float64   `json:"total_annual_savings"`
	CreatedAt           time.Time `json:"created_at"`
}

// Repository handles CRUD operations for audit summaries.
type Repository struct {
	*repositories.BaseRepository
	log zerolog.Logger
}

// NewRepository creates a new audit history repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	l := log.With().Str("repository", "history").Logger()
	return &Repository{
		BaseRepository: repositories.NewBase(db, l),
		log:            l,
	}
}

// Save inserts a summary row; a missing UUID gets a fresh one. Returns the
// stored UUID.
func (r *Repository) Save(s AuditSummary) (string, error) {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB().Exec(`
		INSERT INTO audits
		(uuid, division, sqft, total_kbtu, energy_score, grade,
		 recommendation_count, total_annual_savings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		s.UUID,
		s.Division,
		s.Sqft,
		s.TotalKBTU,
		s.EnergyScore,
		s.Grade,
		s.RecommendationCount,
		s.TotalAnnualSavings,
		s.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert audit summary: %w", err)
	}

	r.log.Debug().Str("uuid", s.UUID).Str("grade", s.Grade).Msg("Audit summary stored")
	return s.UUID, nil
}

// Recent returns the newest summaries, most recent first.
func (r *Repository) Recent(limit int) ([]AuditSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.DB().Query(`
		SELECT uuid, division, sqft, total_kbtu, energy_score, grade,
			   recommendation_count, total_annual_savings, created_at
		FROM audits
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit summaries: %w", err)
	}
	defer rows.Close()

	var out []AuditSummary
	for rows.Next() {
		var s AuditSummary
		if err := rows.Scan(
			&s.UUID,
			&s.Division,
			&s.Sqft,
			&s.TotalKBTU,
			&s.EnergyScore,
			&s.Grade,
			&s.RecommendationCount,
			&s.TotalAnnualSavings,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// GetByUUID returns one stored summary, or nil when not found.
func (r *Repository) GetByUUID(id string) (*AuditSummary, error) {
	var s AuditSummary
	err := r.DB().QueryRow(`
		SELECT uuid, division, sqft, total_kbtu, energy_score, grade,
			   recommendation_count, total_annual_savings, created_at
		FROM audits
		WHERE uuid = ?
	`, id).Scan(
		&s.UUID,
		&s.Division,
		&s.Sqft,
		&s.TotalKBTU,
		&s.EnergyScore,
		&s.Grade,
		&s.RecommendationCount,
		&s.TotalAnnualSavings,
		&s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
