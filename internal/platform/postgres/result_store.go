package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// ResultStore implements the store.ResultStore interface
// using a PostgreSQL database as the storage backend.
type ResultStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewResultStore creates a new PostgreSQL implementation of the ResultStore
// interface. If log is nil, the default logger is used.
func NewResultStore(db store.DBTX, log *slog.Logger) *ResultStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ResultStore{
		db:     db,
		logger: log.With(slog.String("component", "result_store")),
	}
}

// Ensure ResultStore implements store.ResultStore.
var _ store.ResultStore = (*ResultStore)(nil)

// Record implements store.ResultStore.Record.
func (s *ResultStore) Record(ctx context.Context, result *domain.Result) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := result.Validate(); err != nil {
		log.Warn("result validation failed during record",
			slog.String("error", err.Error()),
			slog.String("uid", result.UID))
		return err
	}

	if result.Date.IsZero() {
		result.Date = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO results (uid, qid, qname, score, total, pct, time, passed, date, num)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		result.UID, result.QuizID, result.QuizName, result.Score, result.Total,
		result.Pct, result.Time, result.Passed, result.Date, result.Num,
	).Scan(&result.ID)
	if err != nil {
		log.Error("failed to record result",
			slog.String("error", err.Error()),
			slog.String("uid", result.UID),
			slog.String("qid", result.QuizID))
		return mapError(err)
	}

	log.Info("result recorded",
		slog.Int64("result_id", result.ID),
		slog.String("uid", result.UID),
		slog.String("qid", result.QuizID),
		slog.Bool("passed", result.Passed))
	return nil
}

// ListByUID implements store.ResultStore.ListByUID.
func (s *ResultStore) ListByUID(ctx context.Context, uid string) ([]*domain.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, uid, qid, qname, score, total, pct, time, passed, date, num
		 FROM results WHERE uid = $1 ORDER BY date DESC`, uid)
	if err != nil {
		log.Error("failed to list results by uid",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var results []*domain.Result
	for rows.Next() {
		var r domain.Result
		if err := rows.Scan(&r.ID, &r.UID, &r.QuizID, &r.QuizName, &r.Score, &r.Total,
			&r.Pct, &r.Time, &r.Passed, &r.Date, &r.Num); err != nil {
			log.Error("failed to scan result row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if results == nil {
		results = []*domain.Result{}
	}
	return results, nil
}

// ListAll implements store.ResultStore.ListAll. The join drops results whose
// account has vanished mid-cascade; those rows reappear in no listing and
// are removed when the cascade is repaired.
func (s *ResultStore) ListAll(ctx context.Context) ([]*domain.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.uid, r.qid, r.qname, r.score, r.total, r.pct, r.time,
		        r.passed, r.date, r.num, a.display_name
		 FROM results r
		 JOIN accounts a ON r.uid = a.uid
		 ORDER BY r.date DESC
		 LIMIT $1`, store.MaxResultRows)
	if err != nil {
		log.Error("failed to list results", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var results []*domain.Result
	for rows.Next() {
		var r domain.Result
		if err := rows.Scan(&r.ID, &r.UID, &r.QuizID, &r.QuizName, &r.Score, &r.Total,
			&r.Pct, &r.Time, &r.Passed, &r.Date, &r.Num, &r.DisplayName); err != nil {
			log.Error("failed to scan result row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if results == nil {
		results = []*domain.Result{}
	}
	return results, nil
}

// DeleteByUID implements store.ResultStore.DeleteByUID.
func (s *ResultStore) DeleteByUID(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE uid = $1`, uid)
	if err != nil {
		log.Error("failed to delete results",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.Info("results deleted", slog.String("uid", uid), slog.Int64("count", n))
	}
	return nil
}
