package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/salesacademy/academy-api/internal/domain"
)

// maxRequestBody caps request bodies at 5 MB; progress documents are the
// largest payload and stay well under this.
const maxRequestBody = 5 << 20

// DecodeJSON decodes the request body into v, enforcing the body size cap.
func DecodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// pathUID extracts the uid path parameter and normalizes it, so handlers
// never compare raw identifiers against the store.
func pathUID(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "uid")
	uid := domain.NormalizeUID(raw)
	if uid == "" {
		return "", fmt.Errorf("%w: uid is required", domain.ErrValidation)
	}
	return uid, nil
}
