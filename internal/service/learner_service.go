package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/store"
)

// EnrichedAccount is an account joined with the learner's current progress
// document and active strike count, as shown on administrator dashboards.
type EnrichedAccount struct {
	UID         string                  `json:"uid"`
	DisplayName string                  `json:"displayName"`
	Created     time.Time               `json:"created"`
	UserData    domain.ProgressDocument `json:"userData"`
	StrikeCount int                     `json:"strikeCount"`
}

// LearnerService coordinates operations that must touch more than one store.
// There is no referential integrity in the schema and no transaction around
// these sequences: each statement commits on its own, so the ordering here
// is what keeps half-finished operations presentable (see DeleteLearner).
type LearnerService interface {
	// CreateLearner registers an account and initializes its empty progress
	// record. If progress initialization fails after the account committed,
	// the account stands; the progress store's lazy creation covers the gap
	// on first access.
	CreateLearner(ctx context.Context, username, password, displayName string) (*domain.Account, error)

	// DeleteLearner removes, in order, all strikes, all results, the
	// progress record, then the account. The final state has zero rows
	// referencing the uid anywhere. A store failure mid-cascade returns a
	// *store.PartialFailureError naming the steps that committed.
	DeleteLearner(ctx context.Context, uid string) error

	// ResetLearner removes all results and strikes for the learner and
	// resets progress to empty, leaving the account intact.
	ResetLearner(ctx context.Context, uid string) error

	// ListEnrichedAccounts returns every account with its progress document
	// and active strike count attached.
	ListEnrichedAccounts(ctx context.Context) ([]*EnrichedAccount, error)
}

// LearnerServiceImpl implements the LearnerService interface.
type LearnerServiceImpl struct {
	accounts store.AccountStore
	progress store.ProgressStore
	results  store.ResultStore
	strikes  store.StrikeStore
	logger   *slog.Logger
}

// NewLearnerService creates a new LearnerService over the four stores.
func NewLearnerService(
	accounts store.AccountStore,
	progress store.ProgressStore,
	results store.ResultStore,
	strikes store.StrikeStore,
	log *slog.Logger,
) *LearnerServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &LearnerServiceImpl{
		accounts: accounts,
		progress: progress,
		results:  results,
		strikes:  strikes,
		logger:   log.With("component", "learner_service"),
	}
}

// Ensure LearnerServiceImpl implements LearnerService.
var _ LearnerService = (*LearnerServiceImpl)(nil)

// CreateLearner implements LearnerService.CreateLearner.
func (s *LearnerServiceImpl) CreateLearner(ctx context.Context, username, password, displayName string) (*domain.Account, error) {
	account, err := domain.NewAccount(username, password, displayName)
	if err != nil {
		s.logger.Debug("learner registration rejected",
			"error", err,
			"username", username)
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to register existing uid", "uid", account.UID)
		} else {
			s.logger.Error("failed to create account", "error", err, "uid", account.UID)
		}
		return nil, err
	}

	// The account is committed at this point. A progress-init failure is
	// logged but not surfaced: the progress store lazily creates the row on
	// first access, so the learner is not stuck.
	if err := s.progress.Save(ctx, account.UID, domain.EmptyProgress()); err != nil {
		s.logger.Warn("progress initialization failed after account creation",
			"error", err,
			"uid", account.UID)
	}

	s.logger.Info("learner created", "uid", account.UID)
	return account, nil
}

// cascadeStep is one statement of an ordered multi-store sequence.
type cascadeStep struct {
	name string
	run  func(ctx context.Context) error
}

// runCascade executes steps in order with per-step commits. A store failure
// after at least one committed step comes back as a PartialFailureError so
// operators can tell a half-applied sequence from a clean failure; errors on
// the very first step, and non-store errors such as a missing account,
// propagate unchanged.
func (s *LearnerServiceImpl) runCascade(ctx context.Context, op string, steps []cascadeStep) error {
	var completed []string
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			if errors.Is(err, store.ErrStoreFailure) && len(completed) > 0 {
				s.logger.Error("cascade interrupted mid-sequence",
					"op", op,
					"failed_step", step.name,
					"completed_steps", completed,
					"error", err)
				return &store.PartialFailureError{Op: op, Completed: completed, Err: err}
			}
			return fmt.Errorf("%s: %s: %w", op, step.name, err)
		}
		completed = append(completed, step.name)
	}
	return nil
}

// DeleteLearner implements LearnerService.DeleteLearner.
// The account row goes last on purpose: a half-finished delete then presents
// as "account still exists, some history gone" rather than orphaned history
// with no account. Wrapping these four statements in a single transaction
// would close that window entirely; the per-statement model is kept for now
// and surfaced through PartialFailureError instead.
func (s *LearnerServiceImpl) DeleteLearner(ctx context.Context, uid string) error {
	uid = domain.NormalizeUID(uid)

	err := s.runCascade(ctx, "learner delete", []cascadeStep{
		{"delete strikes", func(ctx context.Context) error { return s.strikes.DeleteByUID(ctx, uid) }},
		{"delete results", func(ctx context.Context) error { return s.results.DeleteByUID(ctx, uid) }},
		{"delete progress", func(ctx context.Context) error { return s.progress.Delete(ctx, uid) }},
		{"delete account", func(ctx context.Context) error { return s.accounts.Delete(ctx, uid) }},
	})
	if err != nil {
		return err
	}

	s.logger.Info("learner deleted", "uid", uid)
	return nil
}

// ResetLearner implements LearnerService.ResetLearner.
func (s *LearnerServiceImpl) ResetLearner(ctx context.Context, uid string) error {
	uid = domain.NormalizeUID(uid)

	err := s.runCascade(ctx, "learner reset", []cascadeStep{
		{"delete results", func(ctx context.Context) error { return s.results.DeleteByUID(ctx, uid) }},
		{"delete strikes", func(ctx context.Context) error { return s.strikes.DeleteByUID(ctx, uid) }},
		{"reset progress", func(ctx context.Context) error { return s.progress.Reset(ctx, uid) }},
	})
	if err != nil {
		return err
	}

	s.logger.Info("learner reset", "uid", uid)
	return nil
}

// ListEnrichedAccounts implements LearnerService.ListEnrichedAccounts.
// Strike counts come from a single grouped query rather than one count per
// account. Per-account progress reads degrade to the empty document on
// failure so one bad row cannot empty the whole dashboard.
func (s *LearnerServiceImpl) ListEnrichedAccounts(ctx context.Context) ([]*EnrichedAccount, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err)
		return nil, err
	}

	counts, err := s.strikes.CountActive(ctx)
	if err != nil {
		s.logger.Warn("failed to count active strikes, reporting zero counts", "error", err)
		counts = map[string]int{}
	}

	enriched := make([]*EnrichedAccount, 0, len(accounts))
	for _, account := range accounts {
		data, err := s.progress.Get(ctx, account.UID)
		if err != nil {
			s.logger.Warn("failed to load progress for account",
				"error", err,
				"uid", account.UID)
			data = domain.EmptyProgress()
		}
		enriched = append(enriched, &EnrichedAccount{
			UID:         account.UID,
			DisplayName: account.DisplayName,
			Created:     account.Created,
			UserData:    data,
			StrikeCount: counts[account.UID],
		})
	}

	return enriched, nil
}
