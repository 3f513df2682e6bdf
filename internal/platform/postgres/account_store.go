package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// AccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. The database handle must be initialized and
// managed by the caller. If log is nil, the default logger is used.
func NewAccountStore(db store.DBTX, log *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore.
var _ store.AccountStore = (*AccountStore)(nil)

// Create implements store.AccountStore.Create.
// The uid is checked for existence before the insert so duplicates are
// reported without relying on engine errors; the unique constraint still
// backstops a racing insert.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("uid", account.UID))
		return err
	}

	var existing string
	err := s.db.QueryRowContext(ctx,
		`SELECT uid FROM accounts WHERE uid = $1`, account.UID).Scan(&existing)
	if err == nil {
		log.Debug("uid already taken", slog.String("uid", account.UID))
		return store.ErrUsernameExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to check uid availability",
			slog.String("error", err.Error()),
			slog.String("uid", account.UID))
		return mapError(err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO accounts (uid, password, display_name, created) VALUES ($1, $2, $3, $4)`,
		account.UID, account.Password, account.DisplayName, account.Created)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("uid taken by concurrent insert", slog.String("uid", account.UID))
			return store.ErrUsernameExists
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("uid", account.UID))
		return mapError(err)
	}

	log.Info("account created", slog.String("uid", account.UID))
	return nil
}

// VerifyCredentials implements store.AccountStore.VerifyCredentials.
func (s *AccountStore) VerifyCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	uid := domain.NormalizeUID(username)

	var account domain.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT uid, display_name, created FROM accounts WHERE uid = $1 AND password = $2`,
		uid, password).Scan(&account.UID, &account.DisplayName, &account.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Unknown user and wrong password collapse into one error.
			log.Debug("credential check failed", slog.String("uid", uid))
			return nil, store.ErrInvalidCredentials
		}
		log.Error("failed to verify credentials",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return nil, mapError(err)
	}

	return &account, nil
}

// List implements store.AccountStore.List.
func (s *AccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT uid, display_name, created FROM accounts`)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.UID, &account.DisplayName, &account.Created); err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	if accounts == nil {
		accounts = []*domain.Account{}
	}
	return accounts, nil
}

// Delete implements store.AccountStore.Delete.
func (s *AccountStore) Delete(ctx context.Context, uid string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE uid = $1`, uid)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("uid", uid))
		return mapError(err)
	}

	if err := checkRowsAffected(result, store.ErrAccountNotFound); err != nil {
		log.Debug("account not found for delete", slog.String("uid", uid))
		return err
	}

	log.Info("account deleted", slog.String("uid", uid))
	return nil
}
