// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Arithmetic on *Value nodes records a computation graph; Backward fills
// the gradient of every node reachable from the output.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    a := autodiff.NewLabeled("a", 2.0)
//	    b := autodiff.NewLabeled("b", -3.0)
//	    L := autodiff.Mul(autodiff.Add(a.Mul(b), 10.0), -2.0)
//
//	    L.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 6 -4
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Value is a node of the computation graph.
type Value = autodiff.Value

// Kind identifies the operator that produced a node.
type Kind = autodiff.Kind

// Operator kinds.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
	OpPow  = autodiff.OpPow
	OpTanh = autodiff.OpTanh
)

// Operand is a node or a numeric literal.
type Operand = autodiff.Operand

// Number is the set of literal types accepted in place of a node.
type Number = autodiff.Number

// Edge connects an operand to the node built from it.
type Edge = autodiff.Edge

// NewValue creates an unlabeled leaf.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewLabeled creates a leaf with a display label.
func NewLabeled(label string, data float64) *Value {
	return autodiff.NewLabeled(label, data)
}

// Constant creates a zero-gradient literal leaf.
func Constant(data float64) *Value {
	return autodiff.Constant(data)
}

// Values creates one leaf per element of data.
func Values(data ...float64) []*Value {
	return autodiff.Values(data...)
}

// Add returns a + b. Either side may be a literal.
func Add[A, B Operand](a A, b B) *Value {
	return autodiff.Add(a, b)
}

// Sub returns a - b. Either side may be a literal.
func Sub[A, B Operand](a A, b B) *Value {
	return autodiff.Sub(a, b)
}

// Mul returns a * b. Either side may be a literal.
func Mul[A, B Operand](a A, b B) *Value {
	return autodiff.Mul(a, b)
}

// Div returns a / b. Either side may be a literal.
func Div[A, B Operand](a A, b B) *Value {
	return autodiff.Div(a, b)
}

// Pow returns a ** b. Either side may be a literal.
func Pow[A, B Operand](a A, b B) *Value {
	return autodiff.Pow(a, b)
}

// Tanh returns tanh(x).
func Tanh[T Operand](x T) *Value {
	return autodiff.Tanh(x)
}

// Sum adds values left to right.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// Backward computes gradients of root with respect to every reachable node
// and returns the topological order it used.
func Backward(root *Value) []*Value {
	return autodiff.Backward(root)
}

// TopologicalSort orders the nodes reachable from root, parents first.
func TopologicalSort(root *Value) []*Value {
	return autodiff.TopologicalSort(root)
}

// Walk collects the nodes and edges reachable from root, breadth first.
func Walk(root *Value) ([]*Value, []Edge) {
	return autodiff.Walk(root)
}

// GraphFunc builds a scalar expression from fresh input leaves.
type GraphFunc = autodiff.GraphFunc

// CheckGradient compares autodiff gradients with central finite differences.
func CheckGradient(f GraphFunc, x []float64, tol float64) error {
	return autodiff.CheckGradient(f, x, tol)
}
