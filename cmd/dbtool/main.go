package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"route-verifier-service/internal/adapters/files"
	"route-verifier-service/internal/adapters/repositories"
	"route-verifier-service/internal/config"
	"route-verifier-service/internal/platform/db"
	"route-verifier-service/internal/platform/obs"

	"github.com/joho/godotenv"
)

// dbtool initializes the schema and loads a dataset directory into the
// configured database. DATABASE_URL selects Postgres, DB_PATH selects SQLite.
func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("dbtool", flag.ExitOnError)
	dir := fs.String("dir", config.Get("DATA_DIR", "data"), "Directory with grafo.csv, instanciaN.csv and solucionN.txt.")
	dataset := fs.String("dataset", config.Get("DATASET", "default"), "Name the dataset is stored under.")
	_ = fs.Parse(os.Args[1:])

	slog.SetDefault(obs.NewLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "text"), os.Stderr))

	if err := run(context.Background(), *dir, *dataset); err != nil {
		slog.Error("dbtool failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, dataset string) error {
	conn, dialect, err := open()
	if err != nil {
		return err
	}
	defer conn.Close()

	slog.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	slog.Info("schema ready")

	slog.Info("seeding dataset", "dir", dir, "dataset", dataset)
	if err := repositories.SeedDataset(ctx, conn, dialect, dataset, files.NewDirSource(dir)); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	slog.Info("seeding complete", "dataset", dataset)

	return nil
}

func open() (*sql.DB, repositories.Dialect, error) {
	if url := config.Get("DATABASE_URL", ""); url != "" {
		conn, err := db.Open(url)
		return conn, repositories.Postgres, err
	}
	if path := config.Get("DB_PATH", ""); path != "" {
		conn, err := db.OpenSQLite(path)
		return conn, repositories.SQLite, err
	}
	return nil, 0, errors.New("DATABASE_URL or DB_PATH is required")
}
