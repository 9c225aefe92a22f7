package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration not initialized")
	}
	if r.HTTPRequestsInFlight == nil {
		t.Error("HTTPRequestsInFlight not initialized")
	}
	if r.AnalysesTotal == nil {
		t.Error("AnalysesTotal not initialized")
	}
	if r.AnalysisDuration == nil {
		t.Error("AnalysisDuration not initialized")
	}
	if r.AnalysisOriginNotFound == nil {
		t.Error("AnalysisOriginNotFound not initialized")
	}
	if r.BatchSize == nil {
		t.Error("BatchSize not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("POST", "/api/v1/cascade/analyze", "200", 100*time.Millisecond)
	r.RecordHTTPRequest("POST", "/api/v1/cascade/analyze", "400", 50*time.Millisecond)
	r.RecordHTTPRequest("GET", "/api/v1/regions", "200", 10*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues("POST", "/api/v1/cascade/analyze", "200")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Counter.GetValue() != 1 {
		t.Errorf("Counter value = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("asia", "severe", "ok", 5*time.Millisecond, 6, 48)
	r.RecordAnalysis("asia", "severe", "ok", 8*time.Millisecond, 4, 31)
	r.RecordAnalysis("europe", "minor", "ok", 2*time.Millisecond, 1, 10)

	counter, err := r.AnalysesTotal.GetMetricWithLabelValues("asia", "severe", "ok")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}

	histogram, err := r.AnalysisAffectedNodes.GetMetricWithLabelValues("asia")
	if err != nil {
		t.Fatalf("Failed to get histogram: %v", err)
	}

	var histMetric dto.Metric
	if err := histogram.(prometheus.Metric).Write(&histMetric); err != nil {
		t.Fatalf("Failed to write histogram: %v", err)
	}
	if histMetric.Histogram.GetSampleCount() != 2 {
		t.Errorf("Histogram sample count = %v, want 2", histMetric.Histogram.GetSampleCount())
	}
	if histMetric.Histogram.GetSampleSum() != 10 {
		t.Errorf("Histogram sample sum = %v, want 10", histMetric.Histogram.GetSampleSum())
	}
}

func TestRecordOriginNotFound(t *testing.T) {
	r := NewRegistry()

	r.RecordOriginNotFound("asia", "moderate")
	r.RecordOriginNotFound("asia", "moderate")

	var metric dto.Metric
	if err := r.AnalysisOriginNotFound.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Counter value = %v, want 2", metric.Counter.GetValue())
	}

	counter, err := r.AnalysesTotal.GetMetricWithLabelValues("asia", "moderate", "origin_not_found")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("status counter value = %v, want 2", metric.Counter.GetValue())
	}
}

func TestRecordBatch(t *testing.T) {
	r := NewRegistry()

	r.RecordBatch(5)
	r.RecordBatch(20)

	var metric dto.Metric
	if err := r.BatchSize.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("Histogram sample count = %v, want 2", metric.Histogram.GetSampleCount())
	}
	if metric.Histogram.GetSampleSum() != 25 {
		t.Errorf("Histogram sample sum = %v, want 25", metric.Histogram.GetSampleSum())
	}
}

func TestRegistryGathers(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected gathered metric families")
	}
}
