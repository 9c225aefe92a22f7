package cascade

// connectedTypes defines which node types are reachable from each node type,
// in either direction. Forward flow follows the supply chain; reverse edges
// exist but are heavily attenuated by the relationship table in decay.go.
var connectedTypes = map[NodeType][]NodeType{
	TypeSupplier:     {TypeManufacturer, TypeDistributor, TypeRetailer},
	TypeManufacturer: {TypeSupplier, TypeDistributor, TypeRetailer},
	TypeDistributor:  {TypeSupplier, TypeManufacturer, TypeRetailer},
	TypeRetailer:     {TypeSupplier, TypeManufacturer, TypeDistributor},
}

// ConnectedTypes returns the node types reachable from the given type.
func ConnectedTypes(t NodeType) []NodeType {
	return connectedTypes[t]
}

// FindConnected returns every node in the topology that the given node can
// affect: same region, a reachable type, and not the node itself. Cross-region
// cascades are not modeled. Results preserve the topology's listing order so
// traversal stays deterministic.
func FindConnected(node NetworkNode, topology []NetworkNode) []NetworkNode {
	reachable := make(map[NodeType]bool, 3)
	for _, t := range connectedTypes[node.Type] {
		reachable[t] = true
	}

	var connected []NetworkNode
	for _, candidate := range topology {
		if candidate.ID == node.ID {
			continue
		}
		if candidate.Region != node.Region {
			continue
		}
		if !reachable[candidate.Type] {
			continue
		}
		connected = append(connected, candidate)
	}
	return connected
}
