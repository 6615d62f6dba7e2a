package ports

import (
	"context"
	"errors"
	"route-verifier-service/internal/domain"
)

// Port: a boundary for loading an evaluation dataset (one graph shared by
// many numbered instances, each with its workers and candidate route).
type InstanceSource interface {
	// Return the graph's edges in their stored order.
	LoadEdges(ctx context.Context) ([]domain.Edge, error)
	// Return the indices of the instances that have a candidate route, ascending.
	ListInstances(ctx context.Context) ([]int, error)
	// Return the workers of instance idx in their stored order.
	LoadWorkers(ctx context.Context, idx int) ([]domain.Worker, error)
	// Return the candidate route of instance idx.
	LoadRoute(ctx context.Context, idx int) (domain.Route, error)
}

// ErrInstanceNotFound is wrapped by InstanceSource implementations when the
// dataset has no instance with the requested index.
var ErrInstanceNotFound = errors.New("instance not found")
