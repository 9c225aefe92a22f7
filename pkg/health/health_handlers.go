package health

import (
	"encoding/json"
	"net/http"
)

func writeHealthResponse(w http.ResponseWriter, response Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// HTTPHandler serves the full health report. Degraded still answers 200;
// only unhealthy returns 503.
func (hc *HealthChecker) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.Check()

		status := http.StatusOK
		if response.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		writeHealthResponse(w, response, status)
	}
}

// ReadinessHandler answers whether the server should receive traffic.
// Readiness is binary: anything short of healthy is 503.
func (hc *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.CheckReadiness()

		status := http.StatusServiceUnavailable
		if response.Status == StatusHealthy {
			status = http.StatusOK
		}
		writeHealthResponse(w, response, status)
	}
}

// LivenessHandler answers whether the process should be restarted.
func (hc *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.CheckLiveness()

		status := http.StatusServiceUnavailable
		if response.Status == StatusHealthy {
			status = http.StatusOK
		}
		writeHealthResponse(w, response, status)
	}
}
