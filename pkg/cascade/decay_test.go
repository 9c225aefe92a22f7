package cascade

import (
	"math"
	"testing"
)

func TestDecayKnownPairs(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		risk     RiskLevel
		from     NodeType
		to       NodeType
		expected float64
	}{
		{"supplier to manufacturer first hop", 1, RiskHigh, TypeSupplier, TypeManufacturer, 0.7 * 0.9 * 0.9},
		{"supplier to distributor first hop", 1, RiskMedium, TypeSupplier, TypeDistributor, 0.7 * 0.7 * 0.4},
		{"manufacturer to distributor second hop", 2, RiskCritical, TypeManufacturer, TypeDistributor, 0.49 * 1.0 * 0.9},
		{"distributor to retailer first hop", 1, RiskLow, TypeDistributor, TypeRetailer, 0.7 * 0.5 * 0.9},
		{"retailer reverse influence is weak", 1, RiskCritical, TypeRetailer, TypeSupplier, 0.7 * 1.0 * 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(tt.depth, tt.risk, tt.from, tt.to)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Decay() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDecayUnknownRiskFallsBackToMedium(t *testing.T) {
	got := Decay(1, RiskLevel("extreme"), TypeSupplier, TypeManufacturer)
	expected := Decay(1, RiskMedium, TypeSupplier, TypeManufacturer)
	if got != expected {
		t.Errorf("unknown risk = %v, expected medium fallback %v", got, expected)
	}
}

func TestDecayUnknownPairUsesDefaultStrength(t *testing.T) {
	got := Decay(1, RiskCritical, NodeType("warehouse"), TypeRetailer)
	expected := 0.7 * 1.0 * 0.3
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("unknown pair = %v, expected default strength %v", got, expected)
	}
}

func TestDecayAttenuatesWithDepth(t *testing.T) {
	prev := math.Inf(1)
	for depth := 1; depth <= 5; depth++ {
		got := Decay(depth, RiskCritical, TypeSupplier, TypeManufacturer)
		if got <= 0 || got > 1 {
			t.Fatalf("Decay(depth=%d) = %v, expected value in (0, 1]", depth, got)
		}
		if got >= prev {
			t.Fatalf("Decay(depth=%d) = %v did not decrease from %v", depth, got, prev)
		}
		prev = got
	}
}
