package cascade

import "strings"

// NodeType classifies a supply-chain participant. It determines which other
// node types a disruption can reach and how heavily the node counts in the
// network impact score.
type NodeType string

const (
	TypeSupplier     NodeType = "supplier"
	TypeManufacturer NodeType = "manufacturer"
	TypeDistributor  NodeType = "distributor"
	TypeRetailer     NodeType = "retailer"
)

// RiskLevel expresses a node's resilience to incoming disruption. Higher risk
// means less resilience, so more of an incoming impact passes through.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity scales the magnitude a disruption starts with at its origin node.
type Severity string

const (
	SeverityMinor        Severity = "minor"
	SeverityModerate     Severity = "moderate"
	SeveritySevere       Severity = "severe"
	SeverityCatastrophic Severity = "catastrophic"
)

// ParseSeverity normalizes a severity string. Unknown or empty values fall
// back to moderate; severity is advisory scaling, not a structural field.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMinor:
		return SeverityMinor
	case SeveritySevere:
		return SeveritySevere
	case SeverityCatastrophic:
		return SeverityCatastrophic
	default:
		return SeverityModerate
	}
}

// PropagationType classifies a traversed edge by how far from the origin its
// source node sat: direct (origin itself), indirect (one hop out), or
// cascading (two or more hops out).
type PropagationType string

const (
	PropagationDirect    PropagationType = "direct"
	PropagationIndirect  PropagationType = "indirect"
	PropagationCascading PropagationType = "cascading"
)

// NetworkNode is a participant in the supply-chain network. RiskLevel and
// ImpactScore are read-only inputs owned by the topology provider; the engine
// only ever computes an adjusted copy of ImpactScore in its results.
type NetworkNode struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Type        NodeType  `json:"type" yaml:"type"`
	Region      string    `json:"region" yaml:"region"`
	RiskLevel   RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	ImpactScore float64   `json:"impactScore" yaml:"impactScore"`
}

// PropagationStep is one directed edge actually traversed during a cascade.
// ImpactDelay is the hop count at which the edge fired, not wall-clock time.
type PropagationStep struct {
	FromNode        string          `json:"fromNode"`
	ToNode          string          `json:"toNode"`
	ImpactDelay     int             `json:"impactDelay"`
	ImpactMagnitude float64         `json:"impactMagnitude"`
	PropagationType PropagationType `json:"propagationType"`
}

// CascadeResult is the output of a single propagation run. AffectedNodes
// carries adjusted impact scores; the canonical topology is never mutated.
type CascadeResult struct {
	AffectedNodes      []NetworkNode     `json:"affectedNodes"`
	PropagationPath    []PropagationStep `json:"propagationPath"`
	NetworkImpactScore int               `json:"networkImpactScore"`
}
