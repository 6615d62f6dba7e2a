package services

import (
	"context"
	"fmt"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/platform/obs"
	"route-verifier-service/internal/ports"
	"slices"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkerCount bounds concurrent instance evaluations when the caller
// does not set EvaluateAllRequest.Workers.
const DefaultWorkerCount = 4

// Verdict for a single numbered instance of a dataset.
type InstanceResult struct {
	Index  int
	Result domain.Result
}

type EvaluateAllRequest struct {
	// Indices to evaluate; all instances reported by the source when empty.
	Indices []int
	// Maximum concurrent evaluations; DefaultWorkerCount when <= 0.
	Workers int
	Params  Params
}

// EvaluateInstance loads the workers and route of instance idx and evaluates
// them against g. Loader failures are returned as errors; infeasibility is
// reported in the result.
func EvaluateInstance(
	ctx context.Context,
	src ports.InstanceSource,
	g *domain.Graph,
	idx int,
	params Params,
) (_ InstanceResult, err error) {
	defer obs.Time(ctx, fmt.Sprintf("evaluate.instance[%d]", idx))(&err)

	workers, err := src.LoadWorkers(ctx, idx)
	if err != nil {
		return InstanceResult{}, fmt.Errorf("evaluate instance %d: load workers: %w", idx, err)
	}

	route, err := src.LoadRoute(ctx, idx)
	if err != nil {
		return InstanceResult{}, fmt.Errorf("evaluate instance %d: load route: %w", idx, err)
	}

	return InstanceResult{Index: idx, Result: EvaluateWith(g, workers, route, params)}, nil
}

// LoadGraph reads the source's edges and builds the shared graph.
func LoadGraph(ctx context.Context, src ports.InstanceSource) (*domain.Graph, error) {
	edges, err := src.LoadEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}

	g, err := domain.NewGraph(edges)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	return g, nil
}

// EvaluateAll evaluates many instances of one dataset against a single,
// shared graph. Evaluations run concurrently; the graph is read-only so no
// locking is needed. Results are returned in ascending index order.
//
// The first loader error cancels the remaining evaluations and is returned.
func EvaluateAll(
	ctx context.Context,
	src ports.InstanceSource,
	req EvaluateAllRequest,
) (_ []InstanceResult, err error) {
	defer obs.Time(ctx, "evaluate.all")(&err)

	g, err := LoadGraph(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("evaluate all: %w", err)
	}

	indices := req.Indices
	if len(indices) == 0 {
		indices, err = src.ListInstances(ctx)
		if err != nil {
			return nil, fmt.Errorf("evaluate all: list instances: %w", err)
		}
	}
	indices = slices.Clone(indices)
	slices.Sort(indices)
	indices = slices.Compact(indices)

	params := req.Params
	if params == (Params{}) {
		params = DefaultParams()
	}

	workers := req.Workers
	if workers <= 0 {
		workers = DefaultWorkerCount
	}

	results := make([]InstanceResult, len(indices))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, idx := range indices {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := EvaluateInstance(egCtx, src, g, idx, params)
			if err != nil {
				return err
			}
			// Each goroutine owns its slot; no synchronization needed.
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate all: %w", err)
	}

	return results, nil
}

// Aggregate view over a batch of instance results.
type Summary struct {
	Total    int
	Feasible int
	// Mean cost over feasible instances only; meaningful when Feasible > 0.
	AverageFeasibleCost float64
}

func Summarize(results []InstanceResult) Summary {
	s := Summary{Total: len(results)}

	total := 0.0
	for _, r := range results {
		if !r.Result.Feasible {
			continue
		}
		s.Feasible++
		total += r.Result.Cost
	}

	if s.Feasible > 0 {
		s.AverageFeasibleCost = total / float64(s.Feasible)
	}
	return s
}
