// Package topology supplies supply-chain node rosters to the cascade engine.
// Providers are read-only data sources: the engine never writes back to them.
package topology

import (
	"sort"

	"github.com/calder-analytics/cascade/pkg/cascade"
)

// StaticProvider serves the built-in per-region rosters. Unknown regions fall
// back to the default roster rather than erroring; an empty region is a valid
// (if degenerate) topology.
type StaticProvider struct {
	regions  map[string][]cascade.NetworkNode
	fallback []cascade.NetworkNode
}

// NewStaticProvider creates a provider over the built-in region rosters.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		regions:  regionTopologies(),
		fallback: fallbackTopology(),
	}
}

// NewStaticProviderWith creates a provider over custom rosters, e.g. loaded
// from a topology file. A nil fallback means unknown regions resolve empty.
func NewStaticProviderWith(regions map[string][]cascade.NetworkNode, fallback []cascade.NetworkNode) *StaticProvider {
	return &StaticProvider{regions: regions, fallback: fallback}
}

// GetTopology returns the roster for a region, or the fallback roster when the
// region is unknown. The returned slice is a copy; callers may not mutate the
// canonical data through it.
func (p *StaticProvider) GetTopology(region string) []cascade.NetworkNode {
	roster, ok := p.regions[region]
	if !ok {
		roster = p.fallback
	}
	out := make([]cascade.NetworkNode, len(roster))
	copy(out, roster)
	return out
}

// Regions returns the region identifiers this provider knows about, sorted
// for stable output.
func (p *StaticProvider) Regions() []string {
	regions := make([]string, 0, len(p.regions))
	for r := range p.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}
