package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// ProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend. Documents live in a
// JSONB column and are always written whole.
type ProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface. If log is nil, the default logger is used.
func NewProgressStore(db store.DBTX, log *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProgressStore{
		db:     db,
		logger: log.With(slog.String("component", "progress_store")),
	}
}

// Ensure ProgressStore implements store.ProgressStore.
var _ store.ProgressStore = (*ProgressStore)(nil)

// Get implements store.ProgressStore.Get. A missing row yields the empty
// document, never an error. An undecodable document also degrades to the
// empty document: the blob is opaque client state and a corrupt value must
// not lock the learner out.
func (s *ProgressStore) Get(ctx context.Context, uid string) (domain.ProgressDocument, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM user_data WHERE uid = $1`, uid).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EmptyProgress(), nil
		}
		log.Error("failed to get progress",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, mapError(err)
	}

	doc := domain.EmptyProgress()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Warn("stored progress document is not valid JSON, returning empty",
				slog.String("error", err.Error()),
				slog.String("uid", uid))
			return domain.EmptyProgress(), nil
		}
	}
	return doc, nil
}

// Save implements store.ProgressStore.Save.
func (s *ProgressStore) Save(ctx context.Context, uid string, doc domain.ProgressDocument) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if doc == nil {
		doc = domain.EmptyProgress()
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: progress document is not serializable: %v", domain.ErrValidation, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_data (uid, data) VALUES ($1, $2)
		 ON CONFLICT (uid) DO UPDATE SET data = EXCLUDED.data`,
		uid, raw)
	if err != nil {
		log.Error("failed to save progress",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	log.Debug("progress saved", slog.String("uid", uid))
	return nil
}

// Ensure implements store.ProgressStore.Ensure.
func (s *ProgressStore) Ensure(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_data (uid, data) VALUES ($1, '{}'::jsonb)
		 ON CONFLICT (uid) DO NOTHING`, uid)
	if err != nil {
		log.Error("failed to ensure progress row",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}
	return nil
}

// Reset implements store.ProgressStore.Reset. Zero affected rows is fine:
// a learner without a row already reads as empty.
func (s *ProgressStore) Reset(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`UPDATE user_data SET data = '{}'::jsonb WHERE uid = $1`, uid)
	if err != nil {
		log.Error("failed to reset progress",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	log.Info("progress reset", slog.String("uid", uid))
	return nil
}

// Delete implements store.ProgressStore.Delete. Tolerant of a missing row.
func (s *ProgressStore) Delete(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `DELETE FROM user_data WHERE uid = $1`, uid)
	if err != nil {
		log.Error("failed to delete progress",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}
	return nil
}
