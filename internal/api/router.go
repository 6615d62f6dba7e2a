package api

import (
	"net/http"
	"route-verifier-service/internal/api/handlers"
	"route-verifier-service/internal/ports"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(source ports.InstanceSource, workers int) http.Handler {
	r := mux.NewRouter()

	evalHandler := &handlers.EvaluationHandler{
		Source:  source,
		Workers: workers,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/evaluations", evalHandler.Evaluate).Methods(http.MethodPost)
	r.HandleFunc("/evaluations", evalHandler.EvaluateAll).Methods(http.MethodGet)
	r.HandleFunc("/instances", evalHandler.ListInstances).Methods(http.MethodGet)
	r.HandleFunc("/instances/{idx:[0-9]+}/evaluation", evalHandler.EvaluateInstance).Methods(http.MethodGet)

	return loggingMiddleware(r)
}
