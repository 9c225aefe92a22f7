package metrics

import (
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAnalysis records a completed cascade analysis
func (r *Registry) RecordAnalysis(region, severity, status string, duration time.Duration, affectedNodes, impactScore int) {
	r.AnalysesTotal.WithLabelValues(region, severity, status).Inc()
	r.AnalysisDuration.WithLabelValues(region).Observe(duration.Seconds())
	r.AnalysisAffectedNodes.WithLabelValues(region).Observe(float64(affectedNodes))
	r.AnalysisImpactScore.WithLabelValues(region).Observe(float64(impactScore))
}

// RecordOriginNotFound records an analysis rejected for a missing origin
func (r *Registry) RecordOriginNotFound(region, severity string) {
	r.AnalysesTotal.WithLabelValues(region, severity, "origin_not_found").Inc()
	r.AnalysisOriginNotFound.Inc()
}

// RecordBatch records the size of a batch analysis request
func (r *Registry) RecordBatch(size int) {
	r.BatchSize.Observe(float64(size))
}
