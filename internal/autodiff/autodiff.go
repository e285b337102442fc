// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation on a *Value returns a new *Value that remembers
// its operands and the operator that produced it. The resulting directed
// acyclic graph is differentiated by Backward, which orders the reachable
// nodes so that each parent precedes its children and then runs the local
// derivative rule of every node in that order.
//
// Architecture:
//   - Value: graph vertex holding data, accumulated gradient and provenance
//   - Kind: tagged operator variant; the derivative rule is chosen by Kind
//   - TopologicalSort: iterative post-order DFS, reversed
//   - Backward: seeds the root gradient and propagates it in one linear pass
//
// Usage:
//
//	a := autodiff.NewLabeled("a", 2.0)
//	b := autodiff.NewLabeled("b", -3.0)
//	c := autodiff.Add(a.Mul(b), 10.0)
//	c.Backward()
//	fmt.Println(a.Grad()) // -3
//
// Domain errors are not reported: dividing by zero or taking the logarithm
// of a non-positive base yields NaN or Inf in Data and Grad.
package autodiff

import (
	"fmt"
	"sync/atomic"
)

// nextID hands out node identities. Visited sets key on these instead of
// pointer identity.
var nextID atomic.Uint64

// Value is a node of the computation graph.
//
// Children and Op are fixed at construction. Grad only changes through
// Backward, ZeroGrad, or the root seed; Data only through SetData, which is
// meant for parameter updates between training steps.
type Value struct {
	id       uint64
	data     float64
	grad     float64
	label    string
	op       Kind
	children []*Value
	operands [2]float64 // operand data snapshot taken at construction
}

func newNode(data float64, op Kind, children ...*Value) *Value {
	v := &Value{
		id:   nextID.Add(1),
		data: data,
		op:   op,
	}
	if len(children) > 0 {
		v.children = children
		for i, c := range children {
			v.operands[i] = c.data
		}
	}
	return v
}

// NewValue creates an unlabeled leaf.
func NewValue(data float64) *Value {
	return newNode(data, OpNone)
}

// NewLabeled creates a leaf with a display label.
func NewLabeled(label string, data float64) *Value {
	v := newNode(data, OpNone)
	v.label = label
	return v
}

// Constant creates the zero-gradient leaf used to promote numeric literals.
func Constant(data float64) *Value {
	return newNode(data, OpNone)
}

// Values creates one leaf per element of data.
func Values(data ...float64) []*Value {
	out := make([]*Value, len(data))
	for i, d := range data {
		out[i] = NewValue(d)
	}
	return out
}

// ID returns the node identity. IDs are unique within the process.
func (v *Value) ID() uint64 {
	return v.id
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// Label returns the display label ("" when unset).
func (v *Value) Label() string {
	return v.label
}

// Op returns the operator that produced this node, OpNone for leaves.
func (v *Value) Op() Kind {
	return v.op
}

// Children returns a copy of the operand tuple, in operand order.
func (v *Value) Children() []*Value {
	if len(v.children) == 0 {
		return nil
	}
	out := make([]*Value, len(v.children))
	copy(out, v.children)
	return out
}

// IsLeaf reports whether v has no children and therefore no local rule.
func (v *Value) IsLeaf() bool {
	return v.op == OpNone
}

// SetData overwrites the forward value.
//
// Only parameter leaves should be updated this way, between a backward pass
// and the next forward pass. Nodes already built from v keep the operand
// snapshot taken when they were created.
func (v *Value) SetData(data float64) {
	v.data = data
}

// ZeroGrad resets the accumulated gradient.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// SetLabel sets the display label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("label: %s | data: %g | operation: %s | grad: %g", v.label, v.data, v.op, v.grad)
}
