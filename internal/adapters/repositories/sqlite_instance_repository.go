package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/ports"
)

// SQLite-backed implementation of the InstanceSource port.
type SqliteInstanceRepository struct {
	DB      *sql.DB
	Dataset string
}

func NewSqliteInstanceRepository(db *sql.DB, dataset string) *SqliteInstanceRepository {
	return &SqliteInstanceRepository{DB: db, Dataset: dataset}
}

func (s *SqliteInstanceRepository) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite instance repository: DB is nil")
	}

	query := `
	SELECT
		source,
		target,
		weight
	FROM edges
	WHERE dataset = ?
	ORDER BY seq;
	`
	edges, err := queryEdges(ctx, s.DB, query, s.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load edges dataset=%q: %w", s.Dataset, err)
	}
	return edges, nil
}

func (s *SqliteInstanceRepository) ListInstances(ctx context.Context) ([]int, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite instance repository: DB is nil")
	}

	query := `
	SELECT instance
	FROM instances
	WHERE dataset = ?
	ORDER BY instance;
	`
	out, err := queryInts(ctx, s.DB, query, s.Dataset)
	if err != nil {
		return nil, fmt.Errorf("list instances dataset=%q: %w", s.Dataset, err)
	}
	return out, nil
}

func (s *SqliteInstanceRepository) LoadWorkers(ctx context.Context, idx int) ([]domain.Worker, error) {
	if err := s.mustExist(ctx, idx); err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}

	query := `
	SELECT
		location,
		radius
	FROM workers
	WHERE dataset = ? AND instance = ?
	ORDER BY seq;
	`
	workers, err := queryWorkers(ctx, s.DB, query, s.Dataset, idx)
	if err != nil {
		return nil, fmt.Errorf("load workers dataset=%q instance=%d: %w", s.Dataset, idx, err)
	}
	return workers, nil
}

func (s *SqliteInstanceRepository) LoadRoute(ctx context.Context, idx int) (domain.Route, error) {
	if err := s.mustExist(ctx, idx); err != nil {
		return nil, fmt.Errorf("load route: %w", err)
	}

	query := `
	SELECT node
	FROM route_nodes
	WHERE dataset = ? AND instance = ?
	ORDER BY seq;
	`
	nodes, err := queryInts(ctx, s.DB, query, s.Dataset, idx)
	if err != nil {
		return nil, fmt.Errorf("load route dataset=%q instance=%d: %w", s.Dataset, idx, err)
	}
	return domain.Route(nodes), nil
}

func (s *SqliteInstanceRepository) mustExist(ctx context.Context, idx int) error {
	if s.DB == nil {
		return errors.New("sqlite instance repository: DB is nil")
	}

	ok, err := instanceExists(ctx, s.DB, `
	SELECT COUNT(*)
	FROM instances
	WHERE dataset = ? AND instance = ?;
	`, s.Dataset, idx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("dataset=%q instance=%d: %w", s.Dataset, idx, ports.ErrInstanceNotFound)
	}
	return nil
}
