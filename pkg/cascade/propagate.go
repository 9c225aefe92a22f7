package cascade

import "fmt"

const (
	// maxDepth is the hard traversal limit: nodes further than this many hops
	// from the origin are dropped without expansion.
	maxDepth = 3

	// magnitudeCutoff is the minimum surviving impact magnitude (0-100 scale)
	// for a node or edge to be recorded. Anything at or below it is treated as
	// no practically relevant impact.
	magnitudeCutoff = 10.0

	// maxImpactScore caps adjusted node impact scores.
	maxImpactScore = 100.0
)

// severityMagnitude maps a disruption severity to the origin node's starting
// impact magnitude on the 0-100 scale.
var severityMagnitude = map[Severity]float64{
	SeverityMinor:        0.3,
	SeverityModerate:     0.6,
	SeveritySevere:       0.8,
	SeverityCatastrophic: 1.0,
}

// OriginNotFoundError reports that the requested origin node does not exist
// in the resolved topology.
type OriginNotFoundError struct {
	OriginID string
}

func (e *OriginNotFoundError) Error() string {
	return fmt.Sprintf("origin node %q not found in topology", e.OriginID)
}

// InitialMagnitude returns the starting impact magnitude for a severity.
// Unknown severities degrade to moderate.
func InitialMagnitude(severity Severity) float64 {
	m, ok := severityMagnitude[severity]
	if !ok {
		m = severityMagnitude[SeverityModerate]
	}
	return m * 100
}

// queueEntry is one pending BFS expansion.
type queueEntry struct {
	node      NetworkNode
	depth     int
	magnitude float64
}

// classifyPropagation maps the source node's depth to an edge classification.
func classifyPropagation(sourceDepth int) PropagationType {
	switch sourceDepth {
	case 0:
		return PropagationDirect
	case 1:
		return PropagationIndirect
	default:
		return PropagationCascading
	}
}

// Propagate runs a breadth-first cascade from originID through the topology.
//
// Each node is processed at most once, on first arrival: a node reachable via
// two paths keeps whichever magnitude reached it first in queue order, not the
// highest. This first-arrival semantic is intentional and test-observable; do
// not replace it with shortest-path style relaxation.
//
// An empty topology yields an empty result rather than an error. A missing
// origin yields an OriginNotFoundError.
func Propagate(topology []NetworkNode, originID string, severity Severity) (*CascadeResult, error) {
	result := &CascadeResult{
		AffectedNodes:   make([]NetworkNode, 0),
		PropagationPath: make([]PropagationStep, 0),
	}
	if len(topology) == 0 {
		return result, nil
	}

	var origin *NetworkNode
	for i := range topology {
		if topology[i].ID == originID {
			origin = &topology[i]
			break
		}
	}
	if origin == nil {
		return nil, &OriginNotFoundError{OriginID: originID}
	}

	visited := map[string]bool{origin.ID: true}
	queue := []queueEntry{{node: *origin, depth: 0, magnitude: InitialMagnitude(severity)}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		affected := current.node
		adjusted := affected.ImpactScore * current.magnitude / 100
		if adjusted > maxImpactScore {
			adjusted = maxImpactScore
		}
		affected.ImpactScore = adjusted
		result.AffectedNodes = append(result.AffectedNodes, affected)

		// Depth cap: nodes this far out are recorded but never expanded, so no
		// step can ever point past the cap and referential integrity holds.
		if current.depth >= maxDepth {
			continue
		}

		for _, neighbor := range FindConnected(current.node, topology) {
			if visited[neighbor.ID] {
				continue
			}

			newMagnitude := current.magnitude * Decay(current.depth+1, neighbor.RiskLevel, current.node.Type, neighbor.Type)
			if newMagnitude <= magnitudeCutoff {
				continue
			}

			visited[neighbor.ID] = true
			result.PropagationPath = append(result.PropagationPath, PropagationStep{
				FromNode:        current.node.ID,
				ToNode:          neighbor.ID,
				ImpactDelay:     current.depth + 1,
				ImpactMagnitude: newMagnitude,
				PropagationType: classifyPropagation(current.depth),
			})
			queue = append(queue, queueEntry{node: neighbor, depth: current.depth + 1, magnitude: newMagnitude})
		}
	}

	result.NetworkImpactScore = Score(result.AffectedNodes, len(topology))
	return result, nil
}
