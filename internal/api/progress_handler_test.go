package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/salesacademy/academy-api/internal/api"
	"github.com/salesacademy/academy-api/internal/domain"
	"github.com/salesacademy/academy-api/internal/mocks"
	"github.com/salesacademy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressRouter(progress *mocks.MockProgressStore) http.Handler {
	h := api.NewProgressHandler(progress, nil)
	r := chi.NewRouter()
	r.Get("/api/user/{uid}", h.Get)
	r.Post("/api/user/{uid}", h.Save)
	return r
}

func TestGetProgressHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored document", func(t *testing.T) {
		t.Parallel()

		progress := &mocks.MockProgressStore{
			GetFn: func(ctx context.Context, uid string) (domain.ProgressDocument, error) {
				assert.Equal(t, "alice", uid)
				return domain.ProgressDocument{"completed": []any{"q1", "q2"}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/user/Alice", nil)
		rec := httptest.NewRecorder()
		progressRouter(progress).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []any{"q1", "q2"}, resp.Data["completed"])
	})

	t.Run("store failure degrades to empty document", func(t *testing.T) {
		t.Parallel()

		progress := &mocks.MockProgressStore{
			GetFn: func(ctx context.Context, uid string) (domain.ProgressDocument, error) {
				return nil, fmt.Errorf("%w: timeout", store.ErrStoreFailure)
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/user/alice", nil)
		rec := httptest.NewRecorder()
		progressRouter(progress).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp api.ProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})
}

func TestSaveProgressHandler(t *testing.T) {
	t.Parallel()

	t.Run("replaces the document whole", func(t *testing.T) {
		t.Parallel()

		var gotUID string
		var gotDoc domain.ProgressDocument
		progress := &mocks.MockProgressStore{
			SaveFn: func(ctx context.Context, uid string, doc domain.ProgressDocument) error {
				gotUID, gotDoc = uid, doc
				return nil
			},
		}

		body := `{"data":{"level":5,"badges":["starter"]}}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/Alice", strings.NewReader(body))
		rec := httptest.NewRecorder()
		progressRouter(progress).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", gotUID)
		assert.Equal(t, float64(5), gotDoc["level"])
	})

	t.Run("write failure surfaces as 500", func(t *testing.T) {
		t.Parallel()

		progress := &mocks.MockProgressStore{
			SaveFn: func(ctx context.Context, uid string, doc domain.ProgressDocument) error {
				return fmt.Errorf("%w: disk full", store.ErrStoreFailure)
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/user/alice", strings.NewReader(`{"data":{}}`))
		rec := httptest.NewRecorder()
		progressRouter(progress).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "disk full")
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/user/alice", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		progressRouter(&mocks.MockProgressStore{}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
