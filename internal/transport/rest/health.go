package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// CheckFunc probes an optional dependency such as Redis or the broker.
type CheckFunc func(ctx context.Context) error

// HealthHandler serves liveness, readiness and the detailed health report.
type HealthHandler struct {
	db       dbPinger
	version  string
	optional map[string]CheckFunc
}

// NewHealthHandler creates a HealthHandler. Optional checks are reported
// by /health but never fail readiness.
func NewHealthHandler(db dbPinger, version string, optional map[string]CheckFunc) *HealthHandler {
	return &HealthHandler{db: db, version: version, optional: optional}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with its latency. A failing database
// makes the service "down"; a failing optional component "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 1+len(h.optional))
	overall := "ok"

	db := probe(ctx, h.db.Ping)
	components["database"] = db
	if db.Status != "ok" {
		overall = "down"
	}

	names := make([]string, 0, len(h.optional))
	for name := range h.optional {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := probe(ctx, h.optional[name])
		components[name] = c
		if c.Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, check CheckFunc) CompStatus {
	start := time.Now()
	if err := check(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
