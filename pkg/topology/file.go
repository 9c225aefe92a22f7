package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calder-analytics/cascade/pkg/cascade"
)

// topologyFile is the on-disk shape of a custom topology definition.
type topologyFile struct {
	Regions  map[string][]cascade.NetworkNode `yaml:"regions"`
	Fallback string                           `yaml:"fallbackRegion"`
}

// LoadFile reads a YAML topology definition and returns a provider over it.
// Every node is validated: non-empty id, known type and risk level, impact
// score in [0, 100], a region field matching its roster's key, and an id
// unique across all rosters.
func LoadFile(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology file: %w", err)
	}

	var file topologyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse topology file %s: %w", path, err)
	}
	if len(file.Regions) == 0 {
		return nil, fmt.Errorf("topology file %s defines no regions", path)
	}

	seen := make(map[string]string)
	for region, roster := range file.Regions {
		for i, node := range roster {
			if err := validateNode(node, region); err != nil {
				return nil, fmt.Errorf("topology file %s: region %q node %d: %w", path, region, i, err)
			}
			if prev, dup := seen[node.ID]; dup {
				return nil, fmt.Errorf("topology file %s: region %q node %d: duplicate node id %q (already defined in region %q)", path, region, i, node.ID, prev)
			}
			seen[node.ID] = region
		}
	}

	var fallback []cascade.NetworkNode
	if file.Fallback != "" {
		roster, ok := file.Regions[file.Fallback]
		if !ok {
			return nil, fmt.Errorf("topology file %s: fallbackRegion %q is not a defined region", path, file.Fallback)
		}
		fallback = roster
	}

	return NewStaticProviderWith(file.Regions, fallback), nil
}

func validateNode(node cascade.NetworkNode, region string) error {
	if node.ID == "" {
		return fmt.Errorf("node id is required")
	}
	switch node.Type {
	case cascade.TypeSupplier, cascade.TypeManufacturer, cascade.TypeDistributor, cascade.TypeRetailer:
	default:
		return fmt.Errorf("node %s: unknown type %q", node.ID, node.Type)
	}
	switch node.RiskLevel {
	case cascade.RiskLow, cascade.RiskMedium, cascade.RiskHigh, cascade.RiskCritical:
	default:
		return fmt.Errorf("node %s: unknown risk level %q", node.ID, node.RiskLevel)
	}
	if node.ImpactScore < 0 || node.ImpactScore > 100 {
		return fmt.Errorf("node %s: impact score %.1f outside [0, 100]", node.ID, node.ImpactScore)
	}
	if node.Region != region {
		return fmt.Errorf("node %s: region %q does not match roster region %q", node.ID, node.Region, region)
	}
	return nil
}
