package api

import (
	"log/slog"
	"net/http"

	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/platform/logger"
	"github.com/salesacademy/academy-api/internal/store"
)

// ResultHandler serves the quiz result ledger.
type ResultHandler struct {
	results store.ResultStore
	logger  *slog.Logger
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(results store.ResultStore, log *slog.Logger) *ResultHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ResultHandler{
		results: results,
		logger:  log.With(slog.String("component", "result_handler")),
	}
}

// Record handles POST /api/results, appending one quiz result.
func (h *ResultHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req RecordResultRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	result := &domain.Result{
		UID:      domain.NormalizeUID(req.UID),
		QuizID:   req.QuizID,
		QuizName: req.QuizName,
		Score:    req.Score,
		Total:    req.Total,
		Pct:      req.Pct,
		Time:     req.Time,
		Passed:   req.Passed,
		Date:     req.Date,
		Num:      req.Num,
	}

	if err := h.results.Record(ctx, result); err != nil {
		HandleAPIError(w, r, err, "Failed to record result")
		return
	}

	log.Debug("result recorded",
		slog.String("uid", result.UID),
		slog.String("qid", result.QuizID),
		slog.Int64("id", result.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, OKResponse{OK: true})
}

// ListByUID handles GET /api/results/{uid}. A store failure degrades to an
// empty list.
func (h *ResultHandler) ListByUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	uid, err := pathUID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	results, err := h.results.ListByUID(ctx, uid)
	if err != nil {
		log.Warn("failed to list results, returning empty list",
			slog.String("uid", uid),
			slog.String("error", err.Error()))
		results = nil
	}
	if results == nil {
		results = []*domain.Result{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}

// ListAll handles GET /api/results for the manager dashboard: results across
// all learners, capped, with display names joined. Degrades to an empty list
// on store failure.
func (h *ResultHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	results, err := h.results.ListAll(ctx)
	if err != nil {
		log.Warn("failed to list all results, returning empty list",
			slog.String("error", err.Error()))
		results = nil
	}
	if results == nil {
		results = []*domain.Result{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, results)
}
