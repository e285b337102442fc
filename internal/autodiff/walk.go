package autodiff

// Edge connects an operand to the node built from it.
type Edge struct {
	From *Value // child (operand)
	To   *Value // parent (result)
}

// Walk collects the nodes and edges reachable from root, breadth first.
//
// Nodes are returned in discovery order, each once. An operand used twice
// by the same parent (x + x) yields one edge, since edges are deduplicated
// by the (child ID, parent ID) pair.
func Walk(root *Value) ([]*Value, []Edge) {
	type edgeKey struct{ from, to uint64 }

	seen := map[uint64]struct{}{root.id: {}}
	seenEdges := make(map[edgeKey]struct{})
	nodes := []*Value{root}
	var edges []Edge

	for head := 0; head < len(nodes); head++ {
		node := nodes[head]
		for _, child := range node.children {
			key := edgeKey{child.id, node.id}
			if _, ok := seenEdges[key]; !ok {
				seenEdges[key] = struct{}{}
				edges = append(edges, Edge{From: child, To: node})
			}
			if _, ok := seen[child.id]; ok {
				continue
			}
			seen[child.id] = struct{}{}
			nodes = append(nodes, child)
		}
	}
	return nodes, edges
}
