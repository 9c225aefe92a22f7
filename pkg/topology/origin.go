package topology

import (
	"github.com/calder-analytics/cascade/pkg/cascade"
)

// scenarioOriginType maps a disruption scenario to the node type where that
// kind of disruption typically begins.
var scenarioOriginType = map[string]cascade.NodeType{
	"port_closure":        cascade.TypeDistributor,
	"supplier_bankruptcy": cascade.TypeSupplier,
	"natural_disaster":    cascade.TypeSupplier,
	"logistics_failure":   cascade.TypeDistributor,
	"factory_shutdown":    cascade.TypeManufacturer,
	"demand_surge":        cascade.TypeRetailer,
}

// Resolver picks a default origin node when a request omits one. It consults
// the scenario-to-type table, then falls back to the region's first node.
type Resolver struct {
	provider cascade.TopologyProvider
}

// NewResolver creates a resolver backed by the given topology provider.
func NewResolver(provider cascade.TopologyProvider) *Resolver {
	return &Resolver{provider: provider}
}

// DefaultOrigin returns the id of the first node in the region's roster that
// matches the scenario's preferred type. Unknown scenarios prefer suppliers.
// Returns the first roster node when no type match exists, or "" for an empty
// region (the engine reports that as origin-not-found).
func (r *Resolver) DefaultOrigin(scenarioType, region string) string {
	roster := r.provider.GetTopology(region)
	if len(roster) == 0 {
		return ""
	}

	preferred, ok := scenarioOriginType[scenarioType]
	if !ok {
		preferred = cascade.TypeSupplier
	}

	for _, node := range roster {
		if node.Type == preferred {
			return node.ID
		}
	}
	return roster[0].ID
}
