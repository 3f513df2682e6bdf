package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/salesacademy/academy-api/internal/api"
	"github.com/salesacademy/academy-api/internal/api/middleware"
	"github.com/salesacademy/academy-api/internal/api/shared"
)

// routes builds the HTTP router. Learner-facing endpoints are open; the
// manager endpoints sit behind the admin session token.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewTraceMiddleware(app.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/health", app.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.handleHealth)

		r.Post("/login", app.authHandler.Login)
		r.Post("/admin/login", app.authHandler.AdminLogin)

		r.Get("/user/{uid}", app.progressHandler.Get)
		r.Post("/user/{uid}", app.progressHandler.Save)

		r.Post("/results", app.resultHandler.Record)
		r.Get("/results/{uid}", app.resultHandler.ListByUID)

		r.Get("/strikes/{uid}", app.strikeHandler.ListByUID)

		// Manager-only surface.
		r.Group(func(r chi.Router) {
			r.Use(app.adminMiddleware.Authenticate)

			r.Get("/results", app.resultHandler.ListAll)

			r.Get("/strikes", app.strikeHandler.List)
			r.Post("/strikes", app.strikeHandler.Add)
			r.Post("/strikes/bulk", app.strikeHandler.Bulk)
			r.Get("/strikes/summary/all", app.strikeHandler.Summary)
			r.Delete("/strikes/{id}", app.strikeHandler.Remove)

			r.Get("/accounts", app.accountHandler.List)
			r.Post("/accounts", app.accountHandler.Create)
			r.Delete("/accounts/{uid}", app.accountHandler.Delete)
			r.Post("/accounts/{uid}/reset", app.accountHandler.Reset)
		})
	})

	return r
}

// handleHealth reports liveness; it deliberately does not touch the
// database so a degraded store cannot take the process out of rotation.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
		OK:        true,
		Timestamp: time.Now().UnixMilli(),
	})
}
