package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/service"
)

// AccountHandler serves the manager-facing account endpoints. Operations
// that touch more than one store go through the LearnerService coordinator.
type AccountHandler struct {
	learners service.LearnerService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(learners service.LearnerService, log *slog.Logger) *AccountHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AccountHandler{
		learners: learners,
		validate: validator.New(),
		logger:   log.With(slog.String("component", "account_handler")),
	}
}

// List handles GET /api/accounts: all accounts with progress documents and
// active strike counts attached. Degrades to an empty list on store failure.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	accounts, err := h.learners.ListEnrichedAccounts(ctx)
	if err != nil {
		log.Warn("failed to list accounts, returning empty list",
			slog.String("error", err.Error()))
		accounts = nil
	}
	if accounts == nil {
		accounts = []*service.EnrichedAccount{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// Create handles POST /api/accounts, registering a new learner account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req CreateAccountRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	account, err := h.learners.CreateLearner(ctx, req.Username, req.Password, req.DisplayName)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	log.Info("account created", slog.String("uid", account.UID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateAccountResponse{
		OK:          true,
		UID:         account.UID,
		DisplayName: account.DisplayName,
	})
}

// Delete handles DELETE /api/accounts/{uid}: removes the account and every
// row referencing it.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.learners.DeleteLearner(ctx, uid); err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	log.Info("account deleted", slog.String("uid", uid))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// Reset handles POST /api/accounts/{uid}/reset: clears the learner's
// results, strikes and progress while keeping the account.
func (h *AccountHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.learners.ResetLearner(ctx, uid); err != nil {
		HandleAPIError(w, r, err, "Failed to reset account")
		return
	}

	log.Info("account reset", slog.String("uid", uid))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}
