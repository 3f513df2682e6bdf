package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// StrikeStore implements the store.StrikeStore interface
// using a PostgreSQL database as the storage backend.
type StrikeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStrikeStore creates a new PostgreSQL implementation of the StrikeStore
// interface. If log is nil, the default logger is used.
func NewStrikeStore(db store.DBTX, log *slog.Logger) *StrikeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &StrikeStore{
		db:     db,
		logger: log.With(slog.String("component", "strike_store")),
	}
}

// Ensure StrikeStore implements store.StrikeStore.
var _ store.StrikeStore = (*StrikeStore)(nil)

// Add implements store.StrikeStore.Add.
func (s *StrikeStore) Add(ctx context.Context, uid, reason string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if uid == "" {
		return domain.ErrStrikeMissingUID
	}
	if reason == "" {
		reason = domain.DefaultStrikeReason
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO strikes (uid, reason, date) VALUES ($1, $2, $3)`,
		uid, reason, time.Now().UTC())
	if err != nil {
		log.Error("failed to add strike",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	log.Info("strike added", slog.String("uid", uid), slog.String("reason", reason))
	return nil
}

// AddBulk implements store.StrikeStore.AddBulk. The timestamp is captured
// once so the whole batch reads as a single event. Inserts run one statement
// at a time with no transaction: a failure returns a PartialFailureError
// naming the committed prefix instead of pretending the batch rolled back.
func (s *StrikeStore) AddBulk(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(entries) == 0 {
		return 0, domain.ErrEmptyStrikeBatch
	}
	if defaultReason == "" {
		defaultReason = domain.DefaultStrikeReason
	}

	date := time.Now().UTC()
	var completed []string
	for i, entry := range entries {
		reason := entry.Reason
		if reason == "" {
			reason = defaultReason
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO strikes (uid, reason, date) VALUES ($1, $2, $3)`,
			entry.UID, reason, date)
		if err != nil {
			log.Error("bulk strike insert failed mid-batch",
				slog.String("error", err.Error()),
				slog.String("uid", entry.UID),
				slog.Int("inserted", i),
				slog.Int("total", len(entries)))
			if i == 0 {
				return 0, mapError(err)
			}
			return i, &store.PartialFailureError{
				Op:        "bulk strike insert",
				Completed: completed,
				Err:       mapError(err),
			}
		}
		completed = append(completed, fmt.Sprintf("strike for %s", entry.UID))
	}

	log.Info("bulk strikes added",
		slog.Int("count", len(entries)),
		slog.Time("date", date))
	return len(entries), nil
}

// Remove implements store.StrikeStore.Remove. The update is applied without
// checking the current removal state: re-removing an already-removed strike
// overwrites its removal metadata. That matches the historical contract and
// is pinned by tests.
func (s *StrikeStore) Remove(ctx context.Context, id int64, reason string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if reason == "" {
		reason = domain.DefaultRemovalReason
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE strikes SET removed_at = $1, removed_reason = $2 WHERE id = $3`,
		time.Now().UTC(), reason, id)
	if err != nil {
		log.Error("failed to remove strike",
			slog.String("error", err.Error()),
			slog.Int64("strike_id", id))
		return mapError(err)
	}

	if err := checkRowsAffected(result, store.ErrStrikeNotFound); err != nil {
		log.Debug("strike not found for removal", slog.Int64("strike_id", id))
		return err
	}

	log.Info("strike removed", slog.Int64("strike_id", id), slog.String("reason", reason))
	return nil
}

// ListActive implements store.StrikeStore.ListActive.
func (s *StrikeStore) ListActive(ctx context.Context, uid string) ([]*domain.Strike, error) {
	if uid == "" {
		return s.listJoined(ctx, true)
	}
	return s.listByUID(ctx, uid, true)
}

// ListAll implements store.StrikeStore.ListAll.
func (s *StrikeStore) ListAll(ctx context.Context, uid string) ([]*domain.Strike, error) {
	if uid == "" {
		return s.listJoined(ctx, false)
	}
	return s.listByUID(ctx, uid, false)
}

func (s *StrikeStore) listJoined(ctx context.Context, activeOnly bool) ([]*domain.Strike, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT s.id, s.uid, s.reason, s.date, s.removed_at, s.removed_reason, a.display_name
	          FROM strikes s
	          JOIN accounts a ON s.uid = a.uid`
	if activeOnly {
		query += ` WHERE s.removed_at IS NULL`
	}
	query += ` ORDER BY s.date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list strikes", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var strikes []*domain.Strike
	for rows.Next() {
		var st domain.Strike
		if err := rows.Scan(&st.ID, &st.UID, &st.Reason, &st.Date,
			&st.RemovedAt, &st.RemovedReason, &st.DisplayName); err != nil {
			log.Error("failed to scan strike row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		strikes = append(strikes, &st)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if strikes == nil {
		strikes = []*domain.Strike{}
	}
	return strikes, nil
}

func (s *StrikeStore) listByUID(ctx context.Context, uid string, activeOnly bool) ([]*domain.Strike, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, uid, reason, date, removed_at, removed_reason
	          FROM strikes WHERE uid = $1`
	if activeOnly {
		query += ` AND removed_at IS NULL`
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, uid)
	if err != nil {
		log.Error("failed to list strikes by uid",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var strikes []*domain.Strike
	for rows.Next() {
		var st domain.Strike
		if err := rows.Scan(&st.ID, &st.UID, &st.Reason, &st.Date,
			&st.RemovedAt, &st.RemovedReason); err != nil {
			log.Error("failed to scan strike row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		strikes = append(strikes, &st)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if strikes == nil {
		strikes = []*domain.Strike{}
	}
	return strikes, nil
}

// Summarize implements store.StrikeStore.Summarize.
func (s *StrikeStore) Summarize(ctx context.Context) ([]*domain.StrikeSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT s.uid, a.display_name, COUNT(*) AS strike_count, MAX(s.date) AS last_strike
		 FROM strikes s
		 JOIN accounts a ON s.uid = a.uid
		 WHERE s.removed_at IS NULL
		 GROUP BY s.uid, a.display_name
		 ORDER BY strike_count DESC, last_strike DESC`)
	if err != nil {
		log.Error("failed to summarize strikes", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var summaries []*domain.StrikeSummary
	for rows.Next() {
		var sum domain.StrikeSummary
		if err := rows.Scan(&sum.UID, &sum.DisplayName, &sum.StrikeCount, &sum.LastStrike); err != nil {
			log.Error("failed to scan summary row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		summaries = append(summaries, &sum)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if summaries == nil {
		summaries = []*domain.StrikeSummary{}
	}
	return summaries, nil
}

// CountActive implements store.StrikeStore.CountActive.
func (s *StrikeStore) CountActive(ctx context.Context) (map[string]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT uid, COUNT(*) FROM strikes WHERE removed_at IS NULL GROUP BY uid`)
	if err != nil {
		log.Error("failed to count active strikes", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var uid string
		var count int
		if err := rows.Scan(&uid, &count); err != nil {
			log.Error("failed to scan count row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		counts[uid] = count
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	return counts, nil
}

// DeleteByUID implements store.StrikeStore.DeleteByUID.
func (s *StrikeStore) DeleteByUID(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM strikes WHERE uid = $1`, uid)
	if err != nil {
		log.Error("failed to delete strikes",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.Info("strikes deleted", slog.String("uid", uid), slog.Int64("count", n))
	}
	return nil
}
