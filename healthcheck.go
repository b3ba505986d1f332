package sharetelemetry

import (
	"net/http"
	"runtime"
	"time"
)

var LaunchTime = time.Now()

type HealthCheck struct {
	store Store
}

func NewHealthCheck(store Store) *HealthCheck {
	return &HealthCheck{
		store: store,
	}
}

type HealthCheckResponse struct {
	OK      bool
	Version string

	OS            string
	NumCPU        int
	NumGoroutines int
	Uptime        string
	GoVersion     string

	NumCompetitions int
}

func (h *HealthCheck) serve(w http.ResponseWriter, r *http.Request) {
	competitions, err := h.store.ListCompetitions()

	response := HealthCheckResponse{
		OK:      err == nil,
		Version: BuildVersion,

		OS:            runtime.GOOS,
		NumCPU:        runtime.NumCPU(),
		NumGoroutines: runtime.NumGoroutine(),
		Uptime:        time.Since(LaunchTime).String(),
		GoVersion:     runtime.Version(),

		NumCompetitions: len(competitions),
	}

	renderJSON(w, response)
}
