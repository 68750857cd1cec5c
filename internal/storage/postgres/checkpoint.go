package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"article_importer/internal/domain"
)

// defaultInterval gates a fresh deployment that has no checkpoint row yet.
const defaultInterval = 180 * time.Minute

type CheckpointStore struct {
	db         *sqlx.DB
	importerID string
}

func NewCheckpointStore(db *sqlx.DB, importerID string) *CheckpointStore {
	return &CheckpointStore{db: db, importerID: importerID}
}

// Get loads the importer's checkpoint. A missing row means the importer has
// never run: the zero last-upload makes the first poll due immediately.
func (s *CheckpointStore) Get(ctx context.Context) (domain.ImportCheckpoint, error) {
	var row struct {
		LastUpload      time.Time `db:"last_upload"`
		IntervalMinutes int       `db:"interval_minutes"`
	}

	query := `
		SELECT last_upload, interval_minutes
		FROM import_checkpoint
		WHERE importer_id = $1`

	err := s.db.GetContext(ctx, &row, query, s.importerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ImportCheckpoint{Interval: defaultInterval}, nil
	}
	if err != nil {
		return domain.ImportCheckpoint{}, fmt.Errorf("select import checkpoint: %w", err)
	}

	return domain.ImportCheckpoint{
		LastUpload: row.LastUpload,
		Interval:   time.Duration(row.IntervalMinutes) * time.Minute,
	}, nil
}

func (s *CheckpointStore) Update(ctx context.Context, lastUpload time.Time) error {
	query := `
		INSERT INTO import_checkpoint (importer_id, last_upload, interval_minutes)
		VALUES ($1, $2, $3)
		ON CONFLICT (importer_id) DO UPDATE SET
			last_upload = EXCLUDED.last_upload`

	_, err := s.db.ExecContext(ctx, query,
		s.importerID, lastUpload, int(defaultInterval.Minutes()))
	if err != nil {
		return fmt.Errorf("upsert import checkpoint: %w", err)
	}
	return nil
}

// SetInterval changes how often the importer runs without touching the
// last-upload marker.
func (s *CheckpointStore) SetInterval(ctx context.Context, interval time.Duration) error {
	query := `
		INSERT INTO import_checkpoint (importer_id, last_upload, interval_minutes)
		VALUES ($1, to_timestamp(0), $2)
		ON CONFLICT (importer_id) DO UPDATE SET
			interval_minutes = EXCLUDED.interval_minutes`

	_, err := s.db.ExecContext(ctx, query, s.importerID, int(interval.Minutes()))
	if err != nil {
		return fmt.Errorf("set import interval: %w", err)
	}
	return nil
}
