package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_analyses_total",
			Help: "Total number of cascade analyses run",
		},
		[]string{"region", "severity", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cascade_analysis_duration_seconds",
			Help:    "Cascade analysis latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"region"},
	)

	r.AnalysisAffectedNodes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cascade_analysis_affected_nodes",
			Help:    "Number of nodes reached per cascade analysis",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"region"},
	)

	r.AnalysisImpactScore = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cascade_analysis_network_impact_score",
			Help:    "Network impact score distribution per analysis",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"region"},
	)

	r.AnalysisOriginNotFound = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "cascade_analysis_origin_not_found_total",
			Help: "Analyses rejected because the origin node was not in the topology",
		},
	)

	r.BatchSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cascade_batch_size",
			Help:    "Number of analyses per batch request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
}
