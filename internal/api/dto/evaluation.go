package dto

import (
	"math"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/services"
)

type EdgeRequest struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

type WorkerRequest struct {
	Location int     `json:"location"`
	Radius   float64 `json:"radius"`
}

type EvaluationRequest struct {
	Edges   []EdgeRequest   `json:"edges"`
	Workers []WorkerRequest `json:"workers"`
	Route   []int           `json:"route"`
}

type UncoveredWorkerResponse struct {
	Index    int      `json:"index"`
	Location int      `json:"location"`
	Radius   float64  `json:"radius"`
	Distance *float64 `json:"distance"`
}

// ResultResponse is the wire form of domain.Result. JSON has no infinity,
// so an infinite cost or distance is encoded as null.
type ResultResponse struct {
	Feasible          bool                      `json:"feasible"`
	Cost              *float64                  `json:"cost"`
	Workers           int                       `json:"workers"`
	Uncovered         int                       `json:"uncovered"`
	Reason            string                    `json:"reason,omitempty"`
	UncoveredExamples []UncoveredWorkerResponse `json:"uncovered_examples,omitempty"`
	Warning           string                    `json:"warning,omitempty"`
}

type InstanceResponse struct {
	Instance int `json:"instance"`
	ResultResponse
}

type SummaryResponse struct {
	Total               int      `json:"total"`
	Feasible            int      `json:"feasible"`
	AverageFeasibleCost *float64 `json:"average_feasible_cost"`
}

type ListEvaluationResponse struct {
	Instances []InstanceResponse `json:"instances"`
	Summary   SummaryResponse    `json:"summary"`
}

type ListInstancesResponse struct {
	Instances []int `json:"instances"`
}

func (r EvaluationRequest) ToDomain() ([]domain.Edge, []domain.Worker, domain.Route) {
	edges := make([]domain.Edge, 0, len(r.Edges))
	for _, e := range r.Edges {
		edges = append(edges, domain.Edge{Source: e.Source, Target: e.Target, Weight: e.Weight})
	}

	workers := make([]domain.Worker, 0, len(r.Workers))
	for _, w := range r.Workers {
		workers = append(workers, domain.Worker{Location: w.Location, Radius: w.Radius})
	}

	return edges, workers, domain.Route(r.Route)
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func FromResult(r domain.Result) ResultResponse {
	res := ResultResponse{
		Feasible:  r.Feasible,
		Cost:      finite(r.Cost),
		Workers:   r.Workers,
		Uncovered: r.Uncovered,
		Reason:    r.Reason,
		Warning:   r.Warning,
	}

	if len(r.UncoveredExamples) > 0 {
		res.UncoveredExamples = make([]UncoveredWorkerResponse, 0, len(r.UncoveredExamples))
		for _, u := range r.UncoveredExamples {
			res.UncoveredExamples = append(res.UncoveredExamples, UncoveredWorkerResponse{
				Index:    u.Index,
				Location: u.Location,
				Radius:   u.Radius,
				Distance: finite(u.Distance),
			})
		}
	}

	return res
}

func FromInstance(r services.InstanceResult) InstanceResponse {
	return InstanceResponse{Instance: r.Index, ResultResponse: FromResult(r.Result)}
}

func FromBatch(results []services.InstanceResult) ListEvaluationResponse {
	res := ListEvaluationResponse{Instances: make([]InstanceResponse, 0, len(results))}
	for _, r := range results {
		res.Instances = append(res.Instances, FromInstance(r))
	}

	s := services.Summarize(results)
	res.Summary = SummaryResponse{Total: s.Total, Feasible: s.Feasible}
	if s.Feasible > 0 {
		avg := s.AverageFeasibleCost
		res.Summary.AverageFeasibleCost = &avg
	}

	return res
}
