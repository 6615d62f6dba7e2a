package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/platform/obs"
	"route-verifier-service/internal/ports"
)

// SQLInstanceRepository is a Postgres-backed InstanceSource (pgx stdlib
// driver).
type SQLInstanceRepository struct {
	DB      *sql.DB
	Dataset string
}

func NewSQLInstanceRepository(db *sql.DB, dataset string) *SQLInstanceRepository {
	return &SQLInstanceRepository{DB: db, Dataset: dataset}
}

func (s *SQLInstanceRepository) LoadEdges(ctx context.Context) (_ []domain.Edge, err error) {
	defer obs.Time(ctx, "instances.sql.LoadEdges")(&err)

	if s.DB == nil {
		return nil, errors.New("sql instance repository: db is nil")
	}

	q := `
	SELECT source, target, weight
	FROM edges
	WHERE dataset = $1
	ORDER BY seq;
	`
	edges, err := queryEdges(ctx, s.DB, q, s.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load edges dataset=%q: %w", s.Dataset, err)
	}
	return edges, nil
}

func (s *SQLInstanceRepository) ListInstances(ctx context.Context) (_ []int, err error) {
	defer obs.Time(ctx, "instances.sql.ListInstances")(&err)

	if s.DB == nil {
		return nil, errors.New("sql instance repository: db is nil")
	}

	q := `
	SELECT instance
	FROM instances
	WHERE dataset = $1
	ORDER BY instance;
	`
	out, err := queryInts(ctx, s.DB, q, s.Dataset)
	if err != nil {
		return nil, fmt.Errorf("list instances dataset=%q: %w", s.Dataset, err)
	}
	return out, nil
}

func (s *SQLInstanceRepository) LoadWorkers(ctx context.Context, idx int) (_ []domain.Worker, err error) {
	defer obs.Time(ctx, "instances.sql.LoadWorkers")(&err)

	if err := s.mustExist(ctx, idx); err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}

	q := `
	SELECT location, radius
	FROM workers
	WHERE dataset = $1 AND instance = $2
	ORDER BY seq;
	`
	workers, err := queryWorkers(ctx, s.DB, q, s.Dataset, idx)
	if err != nil {
		return nil, fmt.Errorf("load workers dataset=%q instance=%d: %w", s.Dataset, idx, err)
	}
	return workers, nil
}

func (s *SQLInstanceRepository) LoadRoute(ctx context.Context, idx int) (_ domain.Route, err error) {
	defer obs.Time(ctx, "instances.sql.LoadRoute")(&err)

	if err := s.mustExist(ctx, idx); err != nil {
		return nil, fmt.Errorf("load route: %w", err)
	}

	q := `
	SELECT node
	FROM route_nodes
	WHERE dataset = $1 AND instance = $2
	ORDER BY seq;
	`
	nodes, err := queryInts(ctx, s.DB, q, s.Dataset, idx)
	if err != nil {
		return nil, fmt.Errorf("load route dataset=%q instance=%d: %w", s.Dataset, idx, err)
	}
	return domain.Route(nodes), nil
}

func (s *SQLInstanceRepository) mustExist(ctx context.Context, idx int) error {
	if s.DB == nil {
		return errors.New("sql instance repository: db is nil")
	}

	ok, err := instanceExists(ctx, s.DB, `
	SELECT COUNT(*)
	FROM instances
	WHERE dataset = $1 AND instance = $2;
	`, s.Dataset, idx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("dataset=%q instance=%d: %w", s.Dataset, idx, ports.ErrInstanceNotFound)
	}
	return nil
}
