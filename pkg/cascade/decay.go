package cascade

import "math"

// depthAttenuation is the fraction of impact magnitude that survives each
// additional hop away from the origin.
const depthAttenuation = 0.7

// defaultRelationshipStrength applies to any (source, destination) type pair
// not present in the relationship table.
const defaultRelationshipStrength = 0.3

// resilienceFactor maps a destination node's risk level to how much incoming
// impact passes through. Lower risk means higher resilience, so a smaller
// fraction survives; critical nodes absorb the full blow.
var resilienceFactor = map[RiskLevel]float64{
	RiskLow:      0.5,
	RiskMedium:   0.7,
	RiskHigh:     0.9,
	RiskCritical: 1.0,
}

// relationshipStrength is a directed transfer-strength table. Forward
// relationships along the supply chain carry most of the impact; reverse
// influence exists but is much weaker.
var relationshipStrength = map[NodeType]map[NodeType]float64{
	TypeSupplier: {
		TypeManufacturer: 0.9,
		TypeDistributor:  0.4,
		TypeRetailer:     0.2,
	},
	TypeManufacturer: {
		TypeSupplier:    0.3,
		TypeDistributor: 0.9,
		TypeRetailer:    0.5,
	},
	TypeDistributor: {
		TypeSupplier:     0.2,
		TypeManufacturer: 0.3,
		TypeRetailer:     0.9,
	},
	TypeRetailer: {
		TypeSupplier:     0.1,
		TypeManufacturer: 0.2,
		TypeDistributor:  0.3,
	},
}

// Decay computes the multiplier applied to an impact magnitude when it crosses
// one edge: 0.7^depth for distance from the origin, times the destination's
// resilience factor, times the directed relationship strength between the two
// node types. All factors are in (0, 1], so the product only ever attenuates.
func Decay(depth int, destinationRisk RiskLevel, sourceType, destinationType NodeType) float64 {
	depthFactor := math.Pow(depthAttenuation, float64(depth))

	resilience, ok := resilienceFactor[destinationRisk]
	if !ok {
		resilience = resilienceFactor[RiskMedium]
	}

	relationship := defaultRelationshipStrength
	if row, ok := relationshipStrength[sourceType]; ok {
		if strength, ok := row[destinationType]; ok {
			relationship = strength
		}
	}

	return depthFactor * resilience * relationship
}
