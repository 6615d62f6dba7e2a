package api

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"route-verifier-service/internal/platform/obs"
	"time"
)

// responseRecorder remembers the first status code and the body size for
// the access log.
type responseRecorder struct {
	http.ResponseWriter
	code int
	size int
}

func (rec *responseRecorder) WriteHeader(code int) {
	if rec.code == 0 {
		rec.code = code
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	if rec.code == 0 {
		rec.code = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

// Status is the code the client saw; a handler that wrote nothing sent 200.
func (rec *responseRecorder) Status() int {
	if rec.code == 0 {
		return http.StatusOK
	}
	return rec.code
}

func (rec *responseRecorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }

func newRequestID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// loggingMiddleware tags each request with an id (honoring X-Request-ID) and
// logs end-to-end duration and response size.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = newRequestID()
		}
		w.Header().Set("X-Request-ID", reqID)
		r = r.WithContext(obs.WithRequestID(r.Context(), reqID))

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		slog.InfoContext(r.Context(), "request",
			"req_id", reqID,
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.Status(),
			"bytes", rec.size,
			"dur_ms", time.Since(start).Milliseconds(),
		)
	})
}
