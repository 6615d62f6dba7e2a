package services

import "route-verifier-service/internal/domain"

// Coverage lists the workers that are not within reach of the route, in
// input order.
type Coverage struct {
	Uncovered []domain.UncoveredWorker
}

func (c Coverage) UncoveredCount() int { return len(c.Uncovered) }

// CheckCoverage compares each worker's distance to the route against its
// radius: worker k is covered iff dist[location] <= radius + params.Tolerance.
// Locations outside dist are treated as unreachable.
func CheckCoverage(dist []float64, workers []domain.Worker, params Params) Coverage {
	var uncovered []domain.UncoveredWorker

	for k, w := range workers {
		d := params.Infinity
		if w.Location >= 0 && w.Location < len(dist) {
			d = dist[w.Location]
		}

		if d > w.Radius+params.Tolerance {
			uncovered = append(uncovered, domain.UncoveredWorker{
				Index:    k,
				Location: w.Location,
				Radius:   w.Radius,
				Distance: d,
			})
		}
	}

	return Coverage{Uncovered: uncovered}
}
