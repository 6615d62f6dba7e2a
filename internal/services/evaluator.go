package services

import (
	"math"
	"route-verifier-service/internal/domain"
)

// CostOverflowReason marks a structurally valid route whose summed cost is
// not a finite number.
const CostOverflowReason = "route cost is not finite"

// DepotWarning is attached to results whose route does not start and end at
// node 0. It never affects feasibility or cost.
const DepotWarning = "recommended route is 0->...->0; this route does not start/end at node 0"

// Evaluate verifies route against g and workers using DefaultParams.
func Evaluate(g *domain.Graph, workers []domain.Worker, route domain.Route) domain.Result {
	return EvaluateWith(g, workers, route, DefaultParams())
}

// EvaluateWith produces the feasibility verdict for one candidate route.
//
// A structural defect short-circuits: the result is infeasible with an
// infinite cost and every worker counted as uncovered, and coverage is not
// computed. Otherwise the route's distinct nodes seed one shortest-path pass
// and each worker is checked against its radius.
func EvaluateWith(g *domain.Graph, workers []domain.Worker, route domain.Route, params Params) domain.Result {
	v := ValidateRoute(g, route)
	if !v.OK() {
		return domain.Result{
			Feasible:  false,
			Cost:      math.Inf(1),
			Workers:   len(workers),
			Uncovered: len(workers),
			Reason:    v.Reason(),
		}
	}

	dist := ShortestDistances(g, route.UniqueNodes(), params)
	cov := CheckCoverage(dist, workers, params)

	res := domain.Result{
		Feasible:  cov.UncoveredCount() == 0,
		Cost:      v.Cost,
		Workers:   len(workers),
		Uncovered: cov.UncoveredCount(),
	}

	if !res.CostIsFinite() {
		res.Feasible = false
		res.Cost = math.Inf(1)
		res.Reason = CostOverflowReason
	}

	if res.Uncovered > 0 {
		n := min(len(cov.Uncovered), domain.MaxUncoveredExamples)
		res.UncoveredExamples = append([]domain.UncoveredWorker(nil), cov.Uncovered[:n]...)
	}

	if !route.ClosedAtDepot() {
		res.Warning = DepotWarning
	}

	return res
}
