package api

import (
	"log/slog"
	"net/http"

	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// ProgressHandler serves the per-learner progress document.
type ProgressHandler struct {
	progress store.ProgressStore
	logger   *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress store.ProgressStore, log *slog.Logger) *ProgressHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ProgressHandler{
		progress: progress,
		logger:   log.With(slog.String("component", "progress_handler")),
	}
}

// Get handles GET /api/user/{uid}. Reads degrade: a store failure comes back
// as the empty document so the client can always render something.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	data, err := h.progress.Get(ctx, uid)
	if err != nil {
		log.Warn("failed to load progress, returning empty document",
			slog.String("uid", uid),
			slog.String("error", err.Error()))
		data = domain.EmptyProgress()
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProgressResponse{Data: data})
}

// Save handles POST /api/user/{uid}: a whole-document replace. Unlike reads,
// a failed write is surfaced so the client knows its state did not stick.
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SaveProgressRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.progress.Save(ctx, uid, req.Data); err != nil {
		HandleAPIError(w, r, err, "Failed to save progress")
		return
	}

	log.Debug("progress saved", slog.String("uid", uid))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}
