// The server command runs the academy record store API: accounts, progress
// documents, quiz results and disciplinary strikes over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/salesacademy/academy-api/internal/config"
	"github.com/salesacademy/academy-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed to start: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	app, err := newApplication(cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.serve()
}
