package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Checker probes one dependency and returns an error when it is unusable.
type Checker func(ctx context.Context) error

// Status represents the health status of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Response is the JSON body returned by the health endpoints.
type Response struct {
	Status    Status                 `json:"status"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of a single dependency probe.
type CheckResult struct {
	Status  Status `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// Handler serves liveness and readiness endpoints over a set of named
// dependency checkers.
type Handler struct {
	service  string
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewHandler creates a health handler reporting under the given service name.
func NewHandler(service string) *Handler {
	return &Handler{
		service:  service,
		checkers: make(map[string]Checker),
	}
}

// Register adds a named dependency checker.
func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// LivenessHandler reports 200 whenever the process is serving requests.
func (h *Handler) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, Response{
			Status:    StatusUp,
			Service:   h.service,
			Timestamp: time.Now().UTC(),
		})
	}
}

// ReadinessHandler probes all registered dependencies concurrently and
// returns 503 when any of them is down.
func (h *Handler) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		h.mu.RLock()
		snapshot := make(map[string]Checker, len(h.checkers))
		for name, checker := range h.checkers {
			snapshot[name] = checker
		}
		h.mu.RUnlock()

		var (
			wg      sync.WaitGroup
			resMu   sync.Mutex
			checks  = make(map[string]CheckResult, len(snapshot))
			overall = StatusUp
		)
		for name, checker := range snapshot {
			wg.Add(1)
			go func(name string, check Checker) {
				defer wg.Done()
				start := time.Now()
				err := check(ctx)
				result := CheckResult{Status: StatusUp, Latency: time.Since(start).String()}
				if err != nil {
					result.Status = StatusDown
					result.Error = err.Error()
				}

				resMu.Lock()
				checks[name] = result
				if err != nil {
					overall = StatusDown
				}
				resMu.Unlock()
			}(name, checker)
		}
		wg.Wait()

		code := http.StatusOK
		if overall == StatusDown {
			code = http.StatusServiceUnavailable
		}
		writeResponse(w, code, Response{
			Status:    overall,
			Service:   h.service,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		})
	}
}

func writeResponse(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
