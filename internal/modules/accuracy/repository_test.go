package accuracy

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE predictions (
			uuid TEXT PRIMARY KEY,
			audit_uuid TEXT NOT NULL,
			predicted_kbtu REAL NOT NULL,
			actual_kbtu REAL,
			reported_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		)
	`)
	require.NoError(t, err)

	return db
}

func TestRecordAndResolve(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())

	_, err := repo.Record("audit_1", 80000)
	require.NoError(t, err)
	_, err = repo.Record("audit_2", 60000)
	require.NoError(t, err)

	// Unresolved predictions stay out of the metrics pool.
	resolved, err := repo.Resolved()
	require.NoError(t, err)
	assert.Empty(t, resolved)

	require.NoError(t, repo.ReportActual("audit_1", 75000))

	resolved, err = repo.Resolved()
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "audit_1", resolved[0].AuditUUID)
	assert.Equal(t, 80000.0, resolved[0].PredictedKBTU)
	require.NotNil(t, resolved[0].ActualKBTU)
	assert.Equal(t, 75000.0, *resolved[0].ActualKBTU)
	assert.NotNil(t, resolved[0].ReportedAt)
}

func TestReportActualUnknownAudit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())
	err := repo.ReportActual("missing", 50000)
	require.Error(t, err)
}

func TestTrackerSummaryFromStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, zerolog.Nop())
	tracker := NewTracker(repo, zerolog.Nop())

	_, err := repo.Record("a", 100000)
	require.NoError(t, err)
	require.NoError(t, repo.ReportActual("a", 100000))

	_, err = repo.Record("b", 90000)
	require.NoError(t, err)
	require.NoError(t, repo.ReportActual("b", 100000))

	m, err := tracker.Summary()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Samples)
	assert.InDelta(t, 5000.0, m.MAE, 1e-9)
	assert.InDelta(t, -5000.0, m.Bias, 1e-9)
}
