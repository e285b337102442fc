package autodiff

import "math"

// Backward computes the gradient of v with respect to every node reachable
// from it. See the package-level Backward.
func (v *Value) Backward() {
	Backward(v)
}

// Backward runs reverse-mode differentiation from root.
//
// Algorithm:
//  1. Seed root's gradient with 1.0 (overwrite, not accumulate)
//  2. Order the reachable nodes so every parent precedes its children
//  3. Walk that order, distributing each node's gradient into its children
//
// Gradients accumulate: a node shared by several parents receives the sum of
// their contributions, and calling Backward again without zeroing adds to
// whatever is already there. Zeroing parameters between steps is the
// caller's job.
//
// Returns the topological order that was used.
func Backward(root *Value) []*Value {
	root.grad = 1.0

	order := TopologicalSort(root)
	for _, node := range order {
		if node.IsLeaf() {
			continue
		}
		node.propagate()
	}
	return order
}

// propagate applies the local derivative rule of v to its children, using
// v's gradient, which must already be fully accumulated.
func (v *Value) propagate() {
	g := v.grad
	a := v.operands[0]
	b := v.operands[1]

	switch v.op {
	case OpAdd:
		v.children[0].grad += g
		v.children[1].grad += g
	case OpSub:
		v.children[0].grad += g
		v.children[1].grad -= g
	case OpMul:
		v.children[0].grad += g * b
		v.children[1].grad += g * a
	case OpDiv:
		v.children[0].grad += g / b
		v.children[1].grad -= (g * a) / (b * b)
	case OpPow:
		v.children[0].grad += g * b * math.Pow(a, b-1)
		v.children[1].grad += g * v.data * math.Log(a)
	case OpTanh:
		v.children[0].grad += (1.0 - v.data*v.data) * g
	}
}
