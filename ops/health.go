package ops

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Health tracks store readiness: ready means the query engine's indexes
// are built and no index rebuild is in progress. A fresh Health starts
// not-ready, matching a store that has not finished its first index build.
type Health struct {
	mu        sync.RWMutex
	ready     bool
	rebuild   bool
	since     time.Time
	lastError string
}

// NewHealth returns a Health in the not-ready state.
func NewHealth() *Health {
	return &Health{since: time.Now()}
}

// SetReady marks the store ready (or not), recording the transition time.
func (h *Health) SetReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ready != ready {
		h.since = time.Now()
	}
	h.ready = ready
}

// SetRebuilding marks whether an index rebuild is in progress. A store
// rebuilding its indexes is reported not-ready regardless of the last
// SetReady call.
func (h *Health) SetRebuilding(rebuilding bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rebuild = rebuilding
}

// SetLastError records the most recent failure observed by the caller, for
// inclusion in the health payload. An empty string clears it.
func (h *Health) SetLastError(err string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastError = err
}

// Status is the health payload served at /healthz.
type Status struct {
	Ready      bool      `json:"ready"`
	Rebuilding bool      `json:"rebuilding"`
	Since      time.Time `json:"since"`
	LastError  string    `json:"last_error,omitempty"`
}

// Snapshot returns the current health status.
func (h *Health) Snapshot() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Status{
		Ready:      h.ready && !h.rebuild,
		Rebuilding: h.rebuild,
		Since:      h.since,
		LastError:  h.lastError,
	}
}

// ServeHTTP serves the health status as JSON, responding 200 when ready and
// 503 otherwise.
func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if !status.Ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}
