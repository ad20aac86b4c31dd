package repositories

import (
	"database/sql"
	"github.com/rs/zerolog"
)

// BaseRepository provides common database operations
type BaseRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewBase creates a new base repository
func NewBase(db *sql.DB, log zerolog.Logger) *BaseRepository {
	return &BaseRepository{
		db:  db,
		log: log,
	}
}

// DB returns the database connection
func (r *BaseRepository) DB() *sql.DB {
	return r.db
}

// Example repository pattern:
//
// type AuditRepository struct {
//     *BaseRepository
// }
//
// func NewAuditRepository(db *sql.DB, log zerolog.Logger) *AuditRepository {
//     return &AuditRepository{
//         BaseRepository: NewBase(db, log.With().Str("repo", "audit").Logger()),
//     }
// }
//
// func (r *AuditRepository) GetByUUID(id string) (*AuditSummary, error) {
//     // Implementation
// }
