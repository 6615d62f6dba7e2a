package services

import "math"

// CoverageTolerance is the absolute slack used when comparing a worker's
// distance against its radius. It absorbs floating-point rounding only;
// it is deliberately not relative.
const CoverageTolerance = 1e-9

// Params carries the numeric constants used by the shortest-path engine
// and the coverage checker.
type Params struct {
	// Infinity is the distance recorded for nodes unreachable from any seed.
	Infinity float64
	// Tolerance is added to a worker's radius before comparing distances.
	Tolerance float64
}

func DefaultParams() Params {
	return Params{
		Infinity:  math.Inf(1),
		Tolerance: CoverageTolerance,
	}
}
