package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-verifier-service/internal/ports"
	"strconv"
	"strings"
)

// Dialect selects the placeholder style of the target database.
type Dialect int

const (
	// SQLite uses "?" placeholders.
	SQLite Dialect = iota
	// Postgres uses "$1, $2, ..." placeholders.
	Postgres
)

// rebind rewrites "?" placeholders for the dialect.
func (d Dialect) rebind(q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Initialize the dataset schema. The DDL is portable between SQLite and
// Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEdgesQuery := `
	CREATE TABLE IF NOT EXISTS edges (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		source INTEGER NOT NULL,
		target INTEGER NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (dataset, seq)
	);
	`

	createInstancesQuery := `
	CREATE TABLE IF NOT EXISTS instances (
		dataset TEXT NOT NULL,
		instance INTEGER NOT NULL,
		PRIMARY KEY (dataset, instance)
	);
	`

	createWorkersQuery := `
	CREATE TABLE IF NOT EXISTS workers (
		dataset TEXT NOT NULL,
		instance INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		location INTEGER NOT NULL,
		radius DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (dataset, instance, seq)
	);
	`

	createRouteNodesQuery := `
	CREATE TABLE IF NOT EXISTS route_nodes (
		dataset TEXT NOT NULL,
		instance INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		node INTEGER NOT NULL,
		PRIMARY KEY (dataset, instance, seq)
	);
	`

	statements := []string{
		createEdgesQuery,
		createInstancesQuery,
		createWorkersQuery,
		createRouteNodesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedDataset copies every edge and instance of src into db under dataset,
// replacing whatever was stored for that dataset before. Row order is kept
// in the seq columns.
func SeedDataset(
	ctx context.Context,
	db *sql.DB,
	dialect Dialect,
	dataset string,
	src ports.InstanceSource,
) error {
	if db == nil {
		return errors.New("seed dataset: DB is nil")
	}
	if strings.TrimSpace(dataset) == "" {
		return errors.New("seed dataset: dataset must be non-empty")
	}

	edges, err := src.LoadEdges(ctx)
	if err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}

	indices, err := src.ListInstances(ctx)
	if err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"edges", "instances", "workers", "route_nodes"} {
		q := dialect.rebind(fmt.Sprintf("DELETE FROM %s WHERE dataset = ?;", table))
		if _, err := tx.ExecContext(ctx, q, dataset); err != nil {
			return fmt.Errorf("seed dataset: clear %s: %w", table, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO edges (dataset, seq, source, target, weight)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for i, e := range edges {
		if _, err := edgeStmt.ExecContext(ctx, dataset, i, e.Source, e.Target, e.Weight); err != nil {
			return fmt.Errorf("seed dataset: insert edge #%d: %w", i+1, err)
		}
	}

	instStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO instances (dataset, instance) VALUES (?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare instance insert: %w", err)
	}
	defer instStmt.Close()

	workerStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO workers (dataset, instance, seq, location, radius)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare worker insert: %w", err)
	}
	defer workerStmt.Close()

	nodeStmt, err := tx.PrepareContext(ctx, dialect.rebind(`
	INSERT INTO route_nodes (dataset, instance, seq, node)
	VALUES (?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare route insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, idx := range indices {
		workers, err := src.LoadWorkers(ctx, idx)
		if err != nil {
			return fmt.Errorf("seed dataset: %w", err)
		}
		route, err := src.LoadRoute(ctx, idx)
		if err != nil {
			return fmt.Errorf("seed dataset: %w", err)
		}

		if _, err := instStmt.ExecContext(ctx, dataset, idx); err != nil {
			return fmt.Errorf("seed dataset: insert instance %d: %w", idx, err)
		}
		for i, w := range workers {
			if _, err := workerStmt.ExecContext(ctx, dataset, idx, i, w.Location, w.Radius); err != nil {
				return fmt.Errorf("seed dataset: insert worker #%d of instance %d: %w", i+1, idx, err)
			}
		}
		for i, n := range route {
			if _, err := nodeStmt.ExecContext(ctx, dataset, idx, i, n); err != nil {
				return fmt.Errorf("seed dataset: insert route node #%d of instance %d: %w", i+1, idx, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dataset: commit tx: %w", err)
	}

	return nil
}
