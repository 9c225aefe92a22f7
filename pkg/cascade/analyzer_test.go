package cascade

import (
	"errors"
	"testing"
	"time"

	"github.com/calder-analytics/cascade/pkg/logging"
)

type stubProvider struct {
	topology []NetworkNode
}

func (p *stubProvider) GetTopology(region string) []NetworkNode {
	return p.topology
}

type stubResolver struct {
	origin string
	calls  int
}

func (r *stubResolver) DefaultOrigin(scenarioType, region string) string {
	r.calls++
	return r.origin
}

func testTopology() []NetworkNode {
	return []NetworkNode{
		{ID: "sup-1", Name: "Supplier One", Type: TypeSupplier, Region: "asia", RiskLevel: RiskMedium, ImpactScore: 85},
		{ID: "mfg-1", Name: "Manufacturer One", Type: TypeManufacturer, Region: "asia", RiskLevel: RiskHigh, ImpactScore: 92},
		{ID: "dist-1", Name: "Distributor One", Type: TypeDistributor, Region: "asia", RiskLevel: RiskMedium, ImpactScore: 78},
	}
}

func TestAnalyzeWithExplicitOrigin(t *testing.T) {
	resolver := &stubResolver{origin: "dist-1"}
	analyzer := NewAnalyzer(&stubProvider{topology: testTopology()}, resolver, logging.NewNopLogger())

	result, err := analyzer.Analyze(AnalysisRequest{
		ScenarioType: "supplier_bankruptcy",
		OriginNode:   "sup-1",
		Region:       "asia",
		Severity:     "severe",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resolver.calls != 0 {
		t.Errorf("resolver was consulted %d times despite an explicit origin", resolver.calls)
	}
	if result.OriginNode != "sup-1" {
		t.Errorf("origin = %s, expected sup-1", result.OriginNode)
	}
	if result.Severity != SeveritySevere {
		t.Errorf("severity = %s, expected severe", result.Severity)
	}
	if result.AnalysisID == "" {
		t.Error("analysis id was not assigned")
	}
	if _, err := time.Parse(time.RFC3339, result.AnalysisTimestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", result.AnalysisTimestamp, err)
	}
	if len(result.AffectedNodes) == 0 {
		t.Error("expected affected nodes in the result")
	}
}

func TestAnalyzeResolvesDefaultOrigin(t *testing.T) {
	resolver := &stubResolver{origin: "sup-1"}
	analyzer := NewAnalyzer(&stubProvider{topology: testTopology()}, resolver, logging.NewNopLogger())

	result, err := analyzer.Analyze(AnalysisRequest{
		ScenarioType: "natural_disaster",
		Region:       "asia",
		Severity:     "moderate",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resolver.calls != 1 {
		t.Errorf("resolver consulted %d times, expected 1", resolver.calls)
	}
	if result.OriginNode != "sup-1" {
		t.Errorf("origin = %s, expected resolver default sup-1", result.OriginNode)
	}
}

func TestAnalyzeUnknownSeverityDefaultsToModerate(t *testing.T) {
	analyzer := NewAnalyzer(&stubProvider{topology: testTopology()}, &stubResolver{}, logging.NewNopLogger())

	result, err := analyzer.Analyze(AnalysisRequest{
		ScenarioType: "port_closure",
		OriginNode:   "sup-1",
		Region:       "asia",
		Severity:     "cataclysmic",
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Severity != SeverityModerate {
		t.Errorf("severity = %s, expected moderate fallback", result.Severity)
	}
}

func TestAnalyzeOriginNotFound(t *testing.T) {
	analyzer := NewAnalyzer(&stubProvider{topology: testTopology()}, &stubResolver{}, logging.NewNopLogger())

	_, err := analyzer.Analyze(AnalysisRequest{
		ScenarioType: "port_closure",
		OriginNode:   "no-such-node",
		Region:       "asia",
	})

	var originErr *OriginNotFoundError
	if !errors.As(err, &originErr) {
		t.Fatalf("expected OriginNotFoundError, got %v", err)
	}
}
