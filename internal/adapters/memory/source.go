package memory

import (
	"context"
	"fmt"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/ports"
	"slices"
)

// Instance is one numbered (workers, route) pair of a dataset.
type Instance struct {
	Index   int
	Workers []domain.Worker
	Route   domain.Route
}

// Source is an InstanceSource backed by values held in memory. Loaded
// slices are copies, so callers may modify them.
type Source struct {
	edges     []domain.Edge
	instances map[int]Instance
}

func NewSource(edges []domain.Edge, instances ...Instance) *Source {
	m := make(map[int]Instance, len(instances))
	for _, inst := range instances {
		m[inst.Index] = inst
	}
	return &Source{edges: edges, instances: m}
}

func (s *Source) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	return slices.Clone(s.edges), nil
}

func (s *Source) ListInstances(ctx context.Context) ([]int, error) {
	out := make([]int, 0, len(s.instances))
	for idx := range s.instances {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out, nil
}

func (s *Source) LoadWorkers(ctx context.Context, idx int) ([]domain.Worker, error) {
	inst, ok := s.instances[idx]
	if !ok {
		return nil, fmt.Errorf("memory source: instance %d: %w", idx, ports.ErrInstanceNotFound)
	}
	return slices.Clone(inst.Workers), nil
}

func (s *Source) LoadRoute(ctx context.Context, idx int) (domain.Route, error) {
	inst, ok := s.instances[idx]
	if !ok {
		return nil, fmt.Errorf("memory source: instance %d: %w", idx, ports.ErrInstanceNotFound)
	}
	return slices.Clone(inst.Route), nil
}
