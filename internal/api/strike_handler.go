package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// StrikeHandler serves the disciplinary strike ledger.
type StrikeHandler struct {
	strikes store.StrikeStore
	logger  *slog.Logger
}

// NewStrikeHandler creates a new StrikeHandler.
func NewStrikeHandler(strikes store.StrikeStore, log *slog.Logger) *StrikeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StrikeHandler{
		strikes: strikes,
		logger:  log.With(slog.String("component", "strike_handler")),
	}
}

// List handles GET /api/strikes. Active strikes by default; ?all=true
// includes removed ones. Both span all learners with display names joined.
// Degrades to an empty list on store failure.
func (h *StrikeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var (
		strikes []*domain.Strike
		err     error
	)
	if r.URL.Query().Get("all") == "true" {
		strikes, err = h.strikes.ListAll(ctx, "")
	} else {
		strikes, err = h.strikes.ListActive(ctx, "")
	}
	if err != nil {
		log.Warn("failed to list strikes, returning empty list",
			slog.String("error", err.Error()))
		strikes = nil
	}
	if strikes == nil {
		strikes = []*domain.Strike{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, strikes)
}

// ListByUID handles GET /api/strikes/{uid}: the learner's own active
// strikes. Degrades to an empty list on store failure.
func (h *StrikeHandler) ListByUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	strikes, err := h.strikes.ListActive(ctx, uid)
	if err != nil {
		log.Warn("failed to list strikes, returning empty list",
			slog.String("uid", uid),
			slog.String("error", err.Error()))
		strikes = nil
	}
	if strikes == nil {
		strikes = []*domain.Strike{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, strikes)
}

// Add handles POST /api/strikes, appending one strike.
func (h *StrikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req AddStrikeRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	uid := domain.NormalizeUID(req.UID)
	if err := h.strikes.Add(ctx, uid, req.Reason); err != nil {
		HandleAPIError(w, r, err, "Failed to add strike")
		return
	}

	log.Info("strike added", slog.String("uid", uid))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// Bulk handles POST /api/strikes/bulk: one strike per listed learner, all
// sharing a single timestamp. The count of inserted rows is returned even
// when the batch dies partway through.
func (h *StrikeHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req BulkStrikeRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	for i := range req.Users {
		req.Users[i].UID = domain.NormalizeUID(req.Users[i].UID)
	}

	count, err := h.strikes.AddBulk(ctx, req.Users, req.Reason)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add strikes")
		return
	}

	log.Info("bulk strikes added", slog.Int("count", count))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true, Count: count})
}

// Remove handles DELETE /api/strikes/{id}: a soft delete that stamps the
// removal time and reason. The body is optional.
func (h *StrikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid strike ID", err)
		return
	}

	var req RemoveStrikeRequest
	if decErr := DecodeJSON(r, &req); decErr != nil && !errors.Is(decErr, io.EOF) {
		// An absent body is fine; a malformed one is not worth rejecting a
		// removal over, so the reason just falls back to the default.
		log.Debug("ignoring malformed removal body", slog.String("error", decErr.Error()))
	}

	if err := h.strikes.Remove(ctx, id, req.Reason); err != nil {
		HandleAPIError(w, r, err, "Failed to remove strike")
		return
	}

	log.Info("strike removed", slog.Int64("id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// Summary handles GET /api/strikes/summary/all: active strike counts per
// learner for the manager dashboard. Degrades to an empty list on store
// failure.
func (h *StrikeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	summaries, err := h.strikes.Summarize(ctx)
	if err != nil {
		log.Warn("failed to summarize strikes, returning empty list",
			slog.String("error", err.Error()))
		summaries = nil
	}
	if summaries == nil {
		summaries = []*domain.StrikeSummary{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}
