package domain

import "math"

// MaxUncoveredExamples caps Result.UncoveredExamples.
const MaxUncoveredExamples = 5

// Diagnostic for a worker whose distance to the route exceeds its radius.
// Distance is +Inf when the worker's node is unreachable from the route.
type UncoveredWorker struct {
	Index    int
	Location int
	Radius   float64
	Distance float64
}

// Result is the verdict for one (graph, workers, route) triple.
//
// Feasible implies Uncovered == 0 and a finite Cost. A structural route
// defect yields Feasible == false, Cost == +Inf, Uncovered == Workers and a
// non-empty Reason. Warning is advisory and never affects feasibility.
type Result struct {
	Feasible          bool
	Cost              float64
	Workers           int
	Uncovered         int
	Reason            string
	UncoveredExamples []UncoveredWorker
	Warning           string
}

// CostIsFinite reports whether Cost holds a real route cost.
func (r Result) CostIsFinite() bool {
	return !math.IsInf(r.Cost, 0) && !math.IsNaN(r.Cost)
}
