package cascade

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		affected []NetworkNode
		total    int
		expected int
	}{
		{
			name:     "empty topology",
			affected: nil,
			total:    0,
			expected: 0,
		},
		{
			name:     "no affected nodes",
			affected: nil,
			total:    5,
			expected: 0,
		},
		{
			name: "single fully impacted supplier",
			affected: []NetworkNode{
				{ID: "s", Type: TypeSupplier, ImpactScore: 100},
			},
			total:    1,
			expected: 100,
		},
		{
			name: "all suppliers fully impacted",
			affected: []NetworkNode{
				{ID: "s1", Type: TypeSupplier, ImpactScore: 100},
				{ID: "s2", Type: TypeSupplier, ImpactScore: 100},
				{ID: "s3", Type: TypeSupplier, ImpactScore: 100},
			},
			total:    3,
			expected: 100,
		},
		{
			name: "retailer counts half of a supplier",
			affected: []NetworkNode{
				{ID: "r", Type: TypeRetailer, ImpactScore: 100},
			},
			total:    1,
			expected: 50,
		},
		{
			name: "mixed types are weighted and rounded",
			affected: []NetworkNode{
				{ID: "s", Type: TypeSupplier, ImpactScore: 68},
				{ID: "m", Type: TypeManufacturer, ImpactScore: 41.7312},
				{ID: "d", Type: TypeDistributor, ImpactScore: 12.2304},
			},
			total:    3,
			expected: 38,
		},
		{
			name: "unaffected nodes dilute the score",
			affected: []NetworkNode{
				{ID: "s", Type: TypeSupplier, ImpactScore: 100},
			},
			total:    10,
			expected: 10,
		},
		{
			name: "unknown type gets maximum weight",
			affected: []NetworkNode{
				{ID: "w", Type: NodeType("warehouse"), ImpactScore: 100},
			},
			total:    1,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.affected, tt.total); got != tt.expected {
				t.Errorf("Score() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestScoreNeverExceeds100(t *testing.T) {
	affected := []NetworkNode{
		{ID: "a", Type: NodeType("unknown-heavy"), ImpactScore: 100},
		{ID: "b", Type: NodeType("unknown-heavy"), ImpactScore: 100},
	}
	if got := Score(affected, 1); got != 100 {
		t.Errorf("Score() = %d, expected cap at 100", got)
	}
}
