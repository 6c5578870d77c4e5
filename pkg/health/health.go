// Package health implements liveness and readiness probe endpoints.
// Liveness answers 200 whenever the process runs; readiness runs the
// registered checks and answers 503 while any of them fails.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// CheckFunc reports whether a single dependency is usable.
type CheckFunc func(ctx context.Context) error

// Status is the probe verdict for a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Response is the JSON body served by both probes.
type Response struct {
	Status    Status                `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
	Checks    map[string]CheckState `json:"checks,omitempty"`
}

// CheckState is the outcome of one named check.
type CheckState struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Probe aggregates named readiness checks.
type Probe struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// New creates a probe with no checks registered.
func New() *Probe {
	return &Probe{checks: make(map[string]CheckFunc)}
}

// Register adds a named readiness check. Registering the same name again
// replaces the previous check.
func (p *Probe) Register(name string, fn CheckFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checks[name] = fn
}

// Live serves the liveness probe.
func (p *Probe) Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProbe(w, http.StatusOK, Response{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
		})
	}
}

// Ready serves the readiness probe, running every registered check with a
// bounded deadline.
func (p *Probe) Ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		p.mu.RLock()
		checks := make(map[string]CheckFunc, len(p.checks))
		for name, fn := range p.checks {
			checks[name] = fn
		}
		p.mu.RUnlock()

		states := make(map[string]CheckState, len(checks))
		overall := StatusUp
		for name, fn := range checks {
			if err := fn(ctx); err != nil {
				states[name] = CheckState{Status: StatusDown, Error: err.Error()}
				overall = StatusDown
			} else {
				states[name] = CheckState{Status: StatusUp}
			}
		}

		code := http.StatusOK
		if overall == StatusDown {
			code = http.StatusServiceUnavailable
		}
		writeProbe(w, code, Response{
			Status:    overall,
			Timestamp: time.Now().UTC(),
			Checks:    states,
		})
	}
}

func writeProbe(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
