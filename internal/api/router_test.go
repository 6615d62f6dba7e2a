package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-verifier-service/internal/adapters/memory"
	"route-verifier-service/internal/api/dto"
	"route-verifier-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	src := memory.NewSource(
		[]domain.Edge{
			{Source: 0, Target: 1, Weight: 2},
			{Source: 1, Target: 2, Weight: 3},
			{Source: 2, Target: 0, Weight: 1},
		},
		memory.Instance{Index: 1, Workers: []domain.Worker{{Location: 2, Radius: 0}}, Route: domain.Route{0, 1, 2, 0}},
		memory.Instance{Index: 2, Workers: []domain.Worker{{Location: 2, Radius: 0}}, Route: domain.Route{0, 5}},
	)
	return NewRouter(src, 2)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealthMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPostEvaluation(t *testing.T) {
	body := `{
		"edges": [{"source":0,"target":1,"weight":2},{"source":1,"target":2,"weight":3}],
		"workers": [{"location":2,"radius":6}],
		"route": [0,1,2]
	}`

	rec := do(t, newTestRouter(), http.MethodPost, "/evaluations", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Feasible)
	require.NotNil(t, res.Cost)
	assert.Equal(t, 5.0, *res.Cost)
	assert.Zero(t, res.Uncovered)
	assert.NotEmpty(t, res.Warning)
}

func TestPostEvaluationStructuralDefect(t *testing.T) {
	body := `{"edges":[{"source":0,"target":1,"weight":2},{"source":1,"target":2,"weight":3}],"workers":[{"location":2,"radius":6}],"route":[0,5]}`

	rec := do(t, newTestRouter(), http.MethodPost, "/evaluations", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"feasible": false,
		"cost": null,
		"workers": 1,
		"uncovered": 1,
		"reason": "node out of range in arc 0->5"
	}`, rec.Body.String())
}

func TestPostEvaluationBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "invalid json", body: `{`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"edges":[],"extra":1}`, status: http.StatusBadRequest},
		{name: "trailing object", body: `{"edges":[]}{}`, status: http.StatusBadRequest},
		{name: "empty graph", body: `{"edges":[],"workers":[],"route":[0,1]}`, status: http.StatusUnprocessableEntity},
		{name: "node id too large", body: `{"edges":[{"source":0,"target":9223372036854775807,"weight":1}],"workers":[],"route":[0]}`, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(), http.MethodPost, "/evaluations", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestListInstances(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/instances", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"instances":[1,2]}`, rec.Body.String())
}

func TestGetInstanceEvaluation(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/instances/1/evaluation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"instance":1,"feasible":true,"cost":6,"workers":1,"uncovered":0}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/instances/9/evaluation", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/instances/abc/evaluation", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllEvaluations(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/evaluations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListEvaluationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Instances, 2)
	assert.Equal(t, 1, res.Instances[0].Instance)
	assert.True(t, res.Instances[0].Feasible)
	assert.False(t, res.Instances[1].Feasible)
	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Feasible)
	require.NotNil(t, res.Summary.AverageFeasibleCost)
	assert.Equal(t, 6.0, *res.Summary.AverageFeasibleCost)
}

func TestGetAllEvaluationsEmptyGraph(t *testing.T) {
	h := NewRouter(memory.NewSource(nil), 1)

	rec := do(t, h, http.MethodGet, "/evaluations", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
