package health

import (
	"context"
	"time"
)

// Common health check functions

// SimpleCheck creates a simple health check that always returns healthy
func SimpleCheck(name string) Check {
	return Check{
		Name:        name,
		Status:      StatusHealthy,
		LastChecked: time.Now(),
	}
}

// DatabaseCheck creates a health check for topology database connectivity
func DatabaseCheck(pingFunc func(ctx context.Context) error) CheckFunc {
	return func() Check {
		check := Check{
			Name: "database",
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := pingFunc(ctx); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		} else {
			check.Status = StatusHealthy
			check.Message = "Connected"
		}

		return check
	}
}

// TopologyCheck creates a health check that verifies the topology provider
// can resolve at least one node for the given probe region.
func TopologyCheck(region string, nodeCount func(region string) int) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "topology",
			Details: make(map[string]any),
		}

		count := nodeCount(region)
		check.Details["region"] = region
		check.Details["node_count"] = count

		if count == 0 {
			check.Status = StatusDegraded
			check.Message = "Probe region resolved to an empty topology"
		} else {
			check.Status = StatusHealthy
			check.Message = "Topology provider responding"
		}

		return check
	}
}

// EngineCheck creates a health check that runs a small cascade self-test. The
// selfTest function runs a fixed analysis and reports whether the result
// matched expectations.
func EngineCheck(selfTest func() error) CheckFunc {
	return func() Check {
		check := Check{
			Name: "engine",
		}

		if err := selfTest(); err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		} else {
			check.Status = StatusHealthy
			check.Message = "Propagation self-test passed"
		}

		return check
	}
}
