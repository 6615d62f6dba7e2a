package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"route-verifier-service/internal/api/dto"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/ports"
	"route-verifier-service/internal/services"
	"strconv"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps ad-hoc evaluation payloads.
const maxBodyBytes = 8 << 20

type EvaluationHandler struct {
	Source  ports.InstanceSource
	Workers int
}

// Evaluate verifies a route supplied inline with its graph and workers.
// An empty edge set is a configuration error (422); every other outcome is
// a 200 with the verdict in the body.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluationRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	edges, workers, route := req.ToDomain()

	g, err := domain.NewGraph(edges)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res := services.Evaluate(g, workers, route)
	writeJSON(w, r, http.StatusOK, dto.FromResult(res))
}

// ListInstances returns the indices available in the configured source.
func (h *EvaluationHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	idx, err := h.Source.ListInstances(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list instances failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListInstancesResponse{Instances: idx})
}

// EvaluateInstance evaluates one stored instance against the stored graph.
func (h *EvaluationHandler) EvaluateInstance(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(mux.Vars(r)["idx"])
	if err != nil || idx < 0 {
		writeError(w, r, http.StatusBadRequest, "instance index must be a non-negative integer")
		return
	}

	g, err := services.LoadGraph(r.Context(), h.Source)
	if err != nil {
		h.writeSourceError(w, r, err)
		return
	}

	res, err := services.EvaluateInstance(r.Context(), h.Source, g, idx, services.DefaultParams())
	if err != nil {
		h.writeSourceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromInstance(res))
}

// EvaluateAll evaluates every stored instance and adds a summary.
func (h *EvaluationHandler) EvaluateAll(w http.ResponseWriter, r *http.Request) {
	results, err := services.EvaluateAll(r.Context(), h.Source, services.EvaluateAllRequest{Workers: h.Workers})
	if err != nil {
		h.writeSourceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromBatch(results))
}

func (h *EvaluationHandler) writeSourceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ports.ErrInstanceNotFound):
		writeError(w, r, http.StatusNotFound, "instance not found")
	case errors.Is(err, domain.ErrConfiguration):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(r.Context(), "evaluation failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
