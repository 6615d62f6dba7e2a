package dto

import (
	"encoding/json"
	"math"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResultEncodesInfinityAsNull(t *testing.T) {
	res := FromResult(domain.Result{
		Feasible:  false,
		Cost:      math.Inf(1),
		Workers:   2,
		Uncovered: 2,
		Reason:    "missing arc 0->2",
	})

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"feasible":false,"cost":null,"workers":2,"uncovered":2,"reason":"missing arc 0->2"}`, string(b))
}

func TestFromInstanceFlattensResult(t *testing.T) {
	res := FromInstance(services.InstanceResult{
		Index: 4,
		Result: domain.Result{
			Feasible:  false,
			Cost:      5,
			Workers:   2,
			Uncovered: 1,
			UncoveredExamples: []domain.UncoveredWorker{
				{Index: 1, Location: 3, Radius: 1, Distance: math.Inf(1)},
			},
			Warning: "w",
		},
	})

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"instance": 4,
		"feasible": false,
		"cost": 5,
		"workers": 2,
		"uncovered": 1,
		"uncovered_examples": [{"index":1,"location":3,"radius":1,"distance":null}],
		"warning": "w"
	}`, string(b))
}

func TestFromBatchSummary(t *testing.T) {
	batch := FromBatch([]services.InstanceResult{
		{Index: 1, Result: domain.Result{Feasible: true, Cost: 4}},
		{Index: 2, Result: domain.Result{Feasible: true, Cost: 6}},
		{Index: 3, Result: domain.Result{Feasible: false, Cost: math.Inf(1)}},
	})

	require.Len(t, batch.Instances, 3)
	assert.Equal(t, 3, batch.Summary.Total)
	assert.Equal(t, 2, batch.Summary.Feasible)
	require.NotNil(t, batch.Summary.AverageFeasibleCost)
	assert.Equal(t, 5.0, *batch.Summary.AverageFeasibleCost)

	empty := FromBatch(nil)
	assert.Nil(t, empty.Summary.AverageFeasibleCost)
	assert.NotNil(t, empty.Instances)
}

func TestEvaluationRequestToDomain(t *testing.T) {
	var req EvaluationRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"edges": [{"source":0,"target":1,"weight":2.5}],
		"workers": [{"location":1,"radius":3}],
		"route": [0,1]
	}`), &req))

	edges, workers, route := req.ToDomain()
	assert.Equal(t, []domain.Edge{{Source: 0, Target: 1, Weight: 2.5}}, edges)
	assert.Equal(t, []domain.Worker{{Location: 1, Radius: 3}}, workers)
	assert.Equal(t, domain.Route{0, 1}, route)
}
