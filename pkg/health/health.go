// Package health aggregates component probes into health, readiness, and
// liveness reports.
package health

import (
	"time"
)

// NewHealthChecker creates a checker with empty check sets.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks:      make(map[string]CheckFunc),
		readyChecks: make(map[string]CheckFunc),
		liveChecks:  make(map[string]CheckFunc),
		startTime:   time.Now(),
	}
}

// RegisterCheck adds a check to the full health report.
func (hc *HealthChecker) RegisterCheck(name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[name] = check
}

// RegisterReadinessCheck adds a check gating whether traffic should be served.
func (hc *HealthChecker) RegisterReadinessCheck(name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.readyChecks[name] = check
}

// RegisterLivenessCheck adds a check gating whether the process should live.
func (hc *HealthChecker) RegisterLivenessCheck(name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.liveChecks[name] = check
}

// Check runs the full health report.
func (hc *HealthChecker) Check() Response {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.run(hc.checks)
}

// CheckReadiness runs the readiness checks.
func (hc *HealthChecker) CheckReadiness() Response {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.run(hc.readyChecks)
}

// CheckLiveness runs the liveness checks.
func (hc *HealthChecker) CheckLiveness() Response {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.run(hc.liveChecks)
}

// run executes every check in the set. The aggregate status is the worst
// individual status; an empty set reports healthy.
func (hc *HealthChecker) run(set map[string]CheckFunc) Response {
	response := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Checks:    make(map[string]Check, len(set)),
		Uptime:    time.Since(hc.startTime).Seconds(),
	}

	for name, probe := range set {
		start := time.Now()
		check := probe()
		check.LastChecked = start
		check.Duration = time.Since(start)
		response.Checks[name] = check

		if check.Status.rank() > response.Status.rank() {
			response.Status = check.Status
		}
	}

	return response
}
