package viz_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workedExample() (*autodiff.Value, []*autodiff.Value) {
	a := autodiff.NewLabeled("a", 2.0)
	b := autodiff.NewLabeled("b", -3.0)
	c := autodiff.NewLabeled("c", 10.0)
	f := autodiff.NewLabeled("f", -2.0)
	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	L := d.Mul(f).SetLabel("L")
	return L, []*autodiff.Value{a, b, c, f, e, d, L}
}

func TestNodeLabel(t *testing.T) {
	L, _ := workedExample()
	L.Backward()
	assert.Equal(t, "L | data -8.0000 | grad 1.0000", viz.NodeLabel(L))
}

func TestWriteDOT(t *testing.T) {
	L, nodes := workedExample()
	L.Backward()

	var buf bytes.Buffer
	require.NoError(t, viz.WriteDOT(&buf, L))
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, "rankdir")
	assert.Contains(t, out, "record")
	for _, n := range nodes {
		assert.Contains(t, out, viz.NodeLabel(n))
	}
	assert.Contains(t, out, `"*"`)
	assert.Contains(t, out, `"+"`)

	// 6 operand edges plus one op -> result edge per non-leaf node.
	assert.Equal(t, 9, strings.Count(out, "->"))
}

func TestRender_SharedOperand(t *testing.T) {
	x := autodiff.NewLabeled("x", 0.5)
	y := x.Add(x)

	out := viz.Render(y).String()

	// One deduplicated operand edge and the op edge.
	assert.Equal(t, 2, strings.Count(out, "->"))
}

func TestRender_Leaf(t *testing.T) {
	x := autodiff.NewLabeled("x", 0.5)

	out := viz.Render(x).String()

	assert.Contains(t, out, "x | data 0.5000 | grad 0.0000")
	assert.NotContains(t, out, "->")
}
