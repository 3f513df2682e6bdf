package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/service/auth"
	"github.com/salesacademy/academy-api/internal/store"
)

// AuthHandler handles learner and manager login.
type AuthHandler struct {
	accounts store.AccountStore
	progress store.ProgressStore
	admin    *auth.AdminService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	accounts store.AccountStore,
	progress store.ProgressStore,
	admin *auth.AdminService,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		accounts: accounts,
		progress: progress,
		admin:    admin,
		validate: validator.New(),
		logger:   log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/login. On success it returns the learner's
// identity together with the current progress document, lazily creating the
// progress row when the learner has none yet.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	account, err := h.accounts.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Lazy creation keeps old accounts working even if their progress row
	// was never initialized.
	if err := h.progress.Ensure(ctx, account.UID); err != nil {
		log.Warn("failed to ensure progress row on login",
			slog.String("uid", account.UID),
			slog.String("error", err.Error()))
	}

	data, err := h.progress.Get(ctx, account.UID)
	if err != nil {
		log.Warn("failed to load progress on login, returning empty document",
			slog.String("uid", account.UID),
			slog.String("error", err.Error()))
		data = domain.EmptyProgress()
	}

	log.Info("learner logged in", slog.String("uid", account.UID))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		OK:          true,
		UID:         account.UID,
		DisplayName: account.DisplayName,
		UserData:    data,
	})
}

// AdminLogin handles POST /api/admin/login and issues a manager session
// token on a correct password.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req AdminLoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	token, err := h.admin.Login(req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("manager session issued")
	shared.RespondWithJSON(w, r, http.StatusOK, AdminLoginResponse{OK: true, Token: token})
}
