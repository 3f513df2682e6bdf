package middleware

import (
	"net/http"
	"strings"

	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/service/auth"
)

// AdminMiddleware guards the admin-only endpoints with the session tokens
// issued by the manager login.
type AdminMiddleware struct {
	admin *auth.AdminService
}

// NewAdminMiddleware creates an AdminMiddleware over the given service.
func NewAdminMiddleware(admin *auth.AdminService) *AdminMiddleware {
	return &AdminMiddleware{admin: admin}
}

// Authenticate rejects requests without a valid "Bearer <token>"
// Authorization header.
func (m *AdminMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Manager session required")
			return
		}
		if err := m.admin.ValidateToken(token); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid or expired manager session", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
