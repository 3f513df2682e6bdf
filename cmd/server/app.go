package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/salesacademy/academy-api/internal/api"
	"github.com/salesacademy/academy-api/internal/api/middleware"
	"github.com/salesacademy/academy-api/internal/config"
	"github.com/salesacademy/academy-api/internal/platform/postgres"
	"github.com/salesacademy/academy-api/internal/service"
	"github.com/salesacademy/academy-api/internal/service/auth"
)

// application bundles the long-lived dependencies of the server process.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	authHandler     *api.AuthHandler
	progressHandler *api.ProgressHandler
	resultHandler   *api.ResultHandler
	strikeHandler   *api.StrikeHandler
	accountHandler  *api.AccountHandler
	adminMiddleware *middleware.AdminMiddleware
}

// newApplication connects to the database, runs migrations and wires the
// stores, services and handlers together.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	accountStore := postgres.NewAccountStore(db, log)
	progressStore := postgres.NewProgressStore(db, log)
	resultStore := postgres.NewResultStore(db, log)
	strikeStore := postgres.NewStrikeStore(db, log)

	learnerService := service.NewLearnerService(accountStore, progressStore, resultStore, strikeStore, log)
	adminService := auth.NewAdminService(
		cfg.Auth.AdminPassword,
		cfg.Auth.TokenSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
		log,
	)

	return &application{
		cfg:             cfg,
		logger:          log,
		db:              db,
		authHandler:     api.NewAuthHandler(accountStore, progressStore, adminService, log),
		progressHandler: api.NewProgressHandler(progressStore, log),
		resultHandler:   api.NewResultHandler(resultStore, log),
		strikeHandler:   api.NewStrikeHandler(strikeStore, log),
		accountHandler:  api.NewAccountHandler(learnerService, log),
		adminMiddleware: middleware.NewAdminMiddleware(adminService),
	}, nil
}

// cleanup releases process-lifetime resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
