package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/salesacademy/academy-api/internal/api"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/mocks"
	"github.com/salesacademy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strikeRouter(strikes *mocks.MockStrikeStore) http.Handler {
	h := api.NewStrikeHandler(strikes, nil)
	r := chi.NewRouter()
	r.Get("/api/strikes", h.List)
	r.Post("/api/strikes", h.Add)
	r.Post("/api/strikes/bulk", h.Bulk)
	r.Get("/api/strikes/summary/all", h.Summary)
	r.Get("/api/strikes/{uid}", h.ListByUID)
	r.Delete("/api/strikes/{id}", h.Remove)
	return r
}

func TestAddStrikeHandler(t *testing.T) {
	t.Parallel()

	t.Run("normalizes uid and passes reason through", func(t *testing.T) {
		t.Parallel()

		var gotUID, gotReason string
		strikes := &mocks.MockStrikeStore{
			AddFn: func(ctx context.Context, uid, reason string) error {
				gotUID, gotReason = uid, reason
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/strikes",
			strings.NewReader(`{"uid":" Alice ","reason":"Late submission"}`))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", gotUID)
		assert.Equal(t, "Late submission", gotReason)
	})

	t.Run("missing uid yields 400", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			AddFn: func(ctx context.Context, uid, reason string) error {
				return domain.ErrStrikeMissingUID
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/strikes", strings.NewReader(`{"reason":"x"}`))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBulkStrikeHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns inserted count", func(t *testing.T) {
		t.Parallel()

		var gotEntries []domain.StrikeEntry
		var gotDefault string
		strikes := &mocks.MockStrikeStore{
			AddBulkFn: func(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error) {
				gotEntries, gotDefault = entries, defaultReason
				return len(entries), nil
			},
		}

		body := `{"users":[{"uid":"Alice"},{"uid":"bob","reason":"No-show"}],"reason":"Missed standup"}`
		req := httptest.NewRequest(http.MethodPost, "/api/strikes/bulk", strings.NewReader(body))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, gotEntries, 2)
		assert.Equal(t, "alice", gotEntries[0].UID)
		assert.Equal(t, "bob", gotEntries[1].UID)
		assert.Equal(t, "Missed standup", gotDefault)

		var resp api.OKResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("empty batch yields 400", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			AddBulkFn: func(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error) {
				return 0, domain.ErrEmptyStrikeBatch
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/strikes/bulk", strings.NewReader(`{"users":[]}`))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("partial failure yields 500", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			AddBulkFn: func(ctx context.Context, entries []domain.StrikeEntry, defaultReason string) (int, error) {
				return 1, &store.PartialFailureError{
					Op:        "bulk strike insert",
					Completed: []string{"alice"},
					Err:       fmt.Errorf("%w: connection reset", store.ErrStoreFailure),
				}
			},
		}

		body := `{"users":[{"uid":"alice"},{"uid":"bob"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/strikes/bulk", strings.NewReader(body))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "partially completed")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestRemoveStrikeHandler(t *testing.T) {
	t.Parallel()

	t.Run("parses id and passes reason", func(t *testing.T) {
		t.Parallel()

		var gotID int64
		var gotReason string
		strikes := &mocks.MockStrikeStore{
			RemoveFn: func(ctx context.Context, id int64, reason string) error {
				gotID, gotReason = id, reason
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/strikes/42",
			strings.NewReader(`{"reason":"Resolved"}`))
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotID)
		assert.Equal(t, "Resolved", gotReason)
	})

	t.Run("empty body removes with default reason", func(t *testing.T) {
		t.Parallel()

		var gotReason string
		strikes := &mocks.MockStrikeStore{
			RemoveFn: func(ctx context.Context, id int64, reason string) error {
				gotReason = reason
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/strikes/42", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, gotReason)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodDelete, "/api/strikes/abc", nil)
		rec := httptest.NewRecorder()
		strikeRouter(&mocks.MockStrikeStore{}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown strike yields 404", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			RemoveFn: func(ctx context.Context, id int64, reason string) error {
				return store.ErrStrikeNotFound
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/strikes/999", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListStrikesHandler(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("defaults to active strikes across all learners", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			ListActiveFn: func(ctx context.Context, uid string) ([]*domain.Strike, error) {
				assert.Empty(t, uid)
				return []*domain.Strike{{ID: 1, UID: "alice", Reason: domain.DefaultStrikeReason, Date: now}}, nil
			},
			ListAllFn: func(ctx context.Context, uid string) ([]*domain.Strike, error) {
				t.Fatal("all-listing must not be used without ?all=true")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/strikes", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var listed []*domain.Strike
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, "alice", listed[0].UID)
	})

	t.Run("all=true includes removed strikes", func(t *testing.T) {
		t.Parallel()

		called := false
		strikes := &mocks.MockStrikeStore{
			ListAllFn: func(ctx context.Context, uid string) ([]*domain.Strike, error) {
				called = true
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/strikes?all=true", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store failure degrades to empty list", func(t *testing.T) {
		t.Parallel()

		strikes := &mocks.MockStrikeStore{
			ListActiveFn: func(ctx context.Context, uid string) ([]*domain.Strike, error) {
				return nil, fmt.Errorf("%w: timeout", store.ErrStoreFailure)
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/strikes", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("per-learner listing normalizes uid", func(t *testing.T) {
		t.Parallel()

		var gotUID string
		strikes := &mocks.MockStrikeStore{
			ListActiveFn: func(ctx context.Context, uid string) ([]*domain.Strike, error) {
				gotUID = uid
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/strikes/Alice", nil)
		rec := httptest.NewRecorder()
		strikeRouter(strikes).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", gotUID)
	})
}

func TestStrikeSummaryHandler(t *testing.T) {
	t.Parallel()

	strikes := &mocks.MockStrikeStore{
		SummarizeFn: func(ctx context.Context) ([]*domain.StrikeSummary, error) {
			return []*domain.StrikeSummary{
				{UID: "alice", DisplayName: "Alice", StrikeCount: 3},
				{UID: "bob", DisplayName: "Bob", StrikeCount: 1},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/strikes/summary/all", nil)
	rec := httptest.NewRecorder()
	strikeRouter(strikes).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []*domain.StrikeSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, 3, summaries[0].StrikeCount)
}
