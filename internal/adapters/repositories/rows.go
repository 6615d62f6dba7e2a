package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"route-verifier-service/internal/domain"
)

// Row scanners shared by the SQLite and Postgres repositories. Queries must
// select columns in the order each scanner expects.

func queryEdges(ctx context.Context, db *sql.DB, q string, args ...any) ([]domain.Edge, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query edges table: %w", err)
	}
	defer rows.Close()

	edges := make([]domain.Edge, 0, 64)
	for rows.Next() {
		var e domain.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan edge row: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("edge row iteration: %w", err)
	}

	return edges, nil
}

func queryInts(ctx context.Context, db *sql.DB, q string, args ...any) ([]int, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := make([]int, 0, 16)
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return out, nil
}

func queryWorkers(ctx context.Context, db *sql.DB, q string, args ...any) ([]domain.Worker, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query workers table: %w", err)
	}
	defer rows.Close()

	workers := make([]domain.Worker, 0, 16)
	for rows.Next() {
		var w domain.Worker
		if err := rows.Scan(&w.Location, &w.Radius); err != nil {
			return nil, fmt.Errorf("scan worker row: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("worker row iteration: %w", err)
	}

	return workers, nil
}

func instanceExists(ctx context.Context, db *sql.DB, q string, args ...any) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("query instances table: %w", err)
	}
	return n > 0, nil
}
