package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"route-verifier-service/internal/adapters/files"
	"route-verifier-service/internal/adapters/repositories"
	"route-verifier-service/internal/api"
	"route-verifier-service/internal/config"
	"route-verifier-service/internal/platform/db"
	"route-verifier-service/internal/platform/obs"
	"route-verifier-service/internal/ports"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It picks the instance store (Postgres, SQLite or a plain directory) behind
// ports.InstanceSource and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(obs.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr))
	if envErr != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	source, closeSource, err := openSource(context.Background(), cfg)
	if err != nil {
		slog.Error("open instance source failed", "err", err)
		os.Exit(1)
	}
	defer closeSource()

	router := api.NewRouter(source, cfg.Workers)

	// Whole-dataset evaluations are CPU bound; the write timeout leaves room
	// for large graphs.
	slog.Info("server listening", "addr", ":"+cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// openSource selects the store in order of precedence: DATABASE_URL, then
// DB_PATH, then the files under DATA_DIR.
func openSource(ctx context.Context, cfg config.Config) (ports.InstanceSource, func() error, error) {
	noop := func() error { return nil }

	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open source: %w", err)
		}
		slog.Info("using postgres instance store", "dataset", cfg.Dataset)
		return repositories.NewSQLInstanceRepository(conn, cfg.Dataset), conn.Close, nil

	case cfg.DBPath != "":
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open source: %w", err)
		}
		if err := ensureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, err
		}
		slog.Info("using sqlite instance store", "path", cfg.DBPath, "dataset", cfg.Dataset)
		return repositories.NewSqliteInstanceRepository(conn, cfg.Dataset), conn.Close, nil

	default:
		slog.Info("using directory instance store", "dir", cfg.DataDir)
		return files.NewDirSource(cfg.DataDir), noop, nil
	}
}

// ensureSchema lets a fresh SQLite file serve empty results instead of
// failing on missing tables.
func ensureSchema(ctx context.Context, conn *sql.DB) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	return nil
}
