package cascade

import "math"

// typeWeight is the per-type importance weight used when aggregating affected
// nodes into the network impact score. Suppliers anchor the chain and carry
// the maximum weight.
var typeWeight = map[NodeType]float64{
	TypeSupplier:     1.0,
	TypeManufacturer: 0.9,
	TypeDistributor:  0.7,
	TypeRetailer:     0.5,
}

// maxTypeWeight is the largest entry in typeWeight, used to normalize against
// the theoretical worst case where every node is a fully impacted supplier.
const maxTypeWeight = 1.0

// Score reduces a set of affected nodes to a single 0-100 network impact
// score: each node's adjusted impact weighted by its type, normalized against
// the theoretical maximum for the whole topology. Returns 0 for an empty
// topology.
func Score(affectedNodes []NetworkNode, totalNodeCount int) int {
	if totalNodeCount == 0 {
		return 0
	}

	var weightedImpact float64
	for _, node := range affectedNodes {
		weight, ok := typeWeight[node.Type]
		if !ok {
			weight = maxTypeWeight
		}
		weightedImpact += node.ImpactScore * weight
	}

	maxPossible := float64(totalNodeCount) * 100 * maxTypeWeight
	score := math.Round(math.Min(100, weightedImpact/maxPossible*100))
	return int(score)
}
