package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// pinger is anything the readiness probe can check.
type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a named dependency reported by the health endpoints.
type Component struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []Component
	version    string
	timeout    time.Duration
}

// NewHealthHandler creates a HealthHandler checking the given components in
// order. The database is expected first.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{components: components, version: version, timeout: 3 * time.Second}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Down       []string              `json:"down,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	statuses := h.check(r.Context())

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	for name, st := range statuses {
		if st.Status != "ok" {
			resp.Down = append(resp.Down, name)
		}
	}

	if len(resp.Down) > 0 {
		sort.Strings(resp.Down)
		resp.Status = "down"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health is the full health check with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	statuses := h.check(r.Context())

	overall := "ok"
	for _, st := range statuses {
		if st.Status != "ok" {
			overall = "down"
		}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: statuses,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	out := make(map[string]CompStatus, len(h.components))
	for _, c := range h.components {
		start := time.Now()
		if err := c.Pinger.Ping(ctx); err != nil {
			out[c.Name] = CompStatus{Status: "down"}
			continue
		}
		out[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return out
}
