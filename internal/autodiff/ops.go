package autodiff

import (
	"fmt"
	"math"
)

// Kind identifies the operator that produced a node.
type Kind uint8

// Operator kinds.
const (
	OpNone Kind = iota // leaf: input, parameter or constant
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpTanh
)

var kindNames = [...]string{
	OpNone: "",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpPow:  "^",
	OpTanh: "tanh",
}

// String returns the symbolic operation tag, "" for leaves.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of operands the operator takes.
func (k Kind) Arity() int {
	switch k {
	case OpNone:
		return 0
	case OpTanh:
		return 1
	default:
		return 2
	}
}

// Number is the set of literal types accepted in place of a node.
type Number interface {
	~float64 | ~float32 | ~int | ~int64 | ~int32
}

// Operand is anything that can sit on either side of an operator.
type Operand interface {
	*Value | float64 | float32 | int | int64 | int32
}

// Lift returns x unchanged when it is already a node, and wraps a literal
// in a Constant leaf otherwise.
func Lift[T Operand](x T) *Value {
	switch v := any(x).(type) {
	case *Value:
		return v
	case float64:
		return Constant(v)
	case float32:
		return Constant(float64(v))
	case int:
		return Constant(float64(v))
	case int64:
		return Constant(float64(v))
	case int32:
		return Constant(float64(v))
	}
	panic(fmt.Sprintf("autodiff: unsupported operand type %T", x))
}

// Add returns a + b. Either side may be a literal.
func Add[A, B Operand](a A, b B) *Value {
	return Lift(a).Add(Lift(b))
}

// Sub returns a - b. Either side may be a literal.
func Sub[A, B Operand](a A, b B) *Value {
	return Lift(a).Sub(Lift(b))
}

// Mul returns a * b. Either side may be a literal.
func Mul[A, B Operand](a A, b B) *Value {
	return Lift(a).Mul(Lift(b))
}

// Div returns a / b. Either side may be a literal.
func Div[A, B Operand](a A, b B) *Value {
	return Lift(a).Div(Lift(b))
}

// Pow returns a ** b. Either side may be a literal.
func Pow[A, B Operand](a A, b B) *Value {
	return Lift(a).Pow(Lift(b))
}

// Tanh returns tanh(x).
func Tanh[T Operand](x T) *Value {
	return Lift(x).Tanh()
}

// Sum adds the values left to right. An empty sum is a zero constant.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return Constant(0)
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Add(v)
	}
	return acc
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return newNode(v.data+other.data, OpAdd, v, other)
}

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value {
	return newNode(v.data-other.data, OpSub, v, other)
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return newNode(v.data*other.data, OpMul, v, other)
}

// Div returns v / other. Division by zero yields ±Inf or NaN.
func (v *Value) Div(other *Value) *Value {
	return newNode(v.data/other.data, OpDiv, v, other)
}

// Pow returns v ** other.
//
// The gradient with respect to the exponent contains ln(v), so a
// non-positive base poisons the exponent gradient with NaN or -Inf.
func (v *Value) Pow(other *Value) *Value {
	return newNode(math.Pow(v.data, other.data), OpPow, v, other)
}

// Tanh returns the hyperbolic tangent of v, evaluated from exponentials.
func (v *Value) Tanh() *Value {
	x := v.data
	t := (math.Exp(x) - math.Exp(-x)) / (math.Exp(x) + math.Exp(-x))
	return newNode(t, OpTanh, v)
}
