package autodiff

import "slices"

// TopologicalSort returns every node reachable from root exactly once, with
// each parent placed before all of its children.
//
// The order is the reverse of a depth-first post-order. The traversal keeps
// its own stack, so graph depth is not limited by the goroutine stack, and
// nodes reachable along several paths are visited once (keyed by ID).
func TopologicalSort(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next child to descend into
	}

	visited := map[uint64]struct{}{root.id: {}}
	post := make([]*Value, 0, 16)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			if _, seen := visited[child.id]; seen {
				continue
			}
			visited[child.id] = struct{}{}
			stack = append(stack, frame{node: child})
			continue
		}
		post = append(post, top.node)
		stack = stack[:len(stack)-1]
	}

	slices.Reverse(post)
	return post
}
