package services

import (
	"fmt"
	"route-verifier-service/internal/domain"
)

// Outcome of checking a route against the graph.
type ValidationKind int

const (
	RouteValid ValidationKind = iota
	// Fewer than two nodes: there are no arcs to traverse.
	RouteTooShort
	// An endpoint of the offending arc is outside [0, N).
	RouteOutOfRange
	// No arc From->To exists in the graph.
	RouteMissingArc
)

func (k ValidationKind) String() string {
	switch k {
	case RouteValid:
		return "valid"
	case RouteTooShort:
		return "too_short"
	case RouteOutOfRange:
		return "out_of_range"
	case RouteMissingArc:
		return "missing_arc"
	default:
		return fmt.Sprintf("ValidationKind(%d)", int(k))
	}
}

// Validation reports the first structural defect of a route, or its cost.
// From and To identify the offending arc for RouteOutOfRange and
// RouteMissingArc. Cost is only meaningful for RouteValid.
type Validation struct {
	Kind ValidationKind
	From int
	To   int
	Cost float64
}

func (v Validation) OK() bool { return v.Kind == RouteValid }

// Reason renders the defect for the result record. Empty for valid routes.
func (v Validation) Reason() string {
	switch v.Kind {
	case RouteTooShort:
		return "empty or trivial route"
	case RouteOutOfRange:
		return fmt.Sprintf("node out of range in arc %d->%d", v.From, v.To)
	case RouteMissingArc:
		return fmt.Sprintf("missing arc %d->%d", v.From, v.To)
	default:
		return ""
	}
}

// ValidateRoute walks consecutive pairs of route left to right and stops at
// the first pair that is out of range or has no matching arc. Parallel
// edges resolve to the first arc in the source node's adjacency list.
func ValidateRoute(g *domain.Graph, route domain.Route) Validation {
	if len(route) < 2 {
		return Validation{Kind: RouteTooShort}
	}

	cost := 0.0
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]

		if !g.InRange(a) || !g.InRange(b) {
			return Validation{Kind: RouteOutOfRange, From: a, To: b}
		}

		w, ok := g.ArcWeight(a, b)
		if !ok {
			return Validation{Kind: RouteMissingArc, From: a, To: b}
		}
		cost += w
	}

	return Validation{Kind: RouteValid, Cost: cost}
}
