package autodiff_test

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTopological verifies each reachable node appears once and every
// parent precedes its children.
func assertTopological(t *testing.T, root *autodiff.Value, order []*autodiff.Value) {
	t.Helper()

	index := make(map[uint64]int, len(order))
	for i, n := range order {
		_, dup := index[n.ID()]
		require.False(t, dup, "node %d appears twice", n.ID())
		index[n.ID()] = i
	}

	nodes, edges := autodiff.Walk(root)
	assert.Len(t, order, len(nodes))
	for _, e := range edges {
		pi, ok := index[e.To.ID()]
		require.True(t, ok)
		ci, ok := index[e.From.ID()]
		require.True(t, ok)
		assert.Less(t, pi, ci, "parent %d must precede child %d", e.To.ID(), e.From.ID())
	}
	assert.Same(t, root, order[0])
}

func TestTopologicalSort_WorkedExample(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(-3)
	c := autodiff.NewValue(10)
	f := autodiff.NewValue(-2)
	L := a.Mul(b).Add(c).Mul(f)

	order := autodiff.TopologicalSort(L)
	require.Len(t, order, 7)
	assertTopological(t, L, order)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	x := autodiff.NewValue(1)
	left := x.Mul(autodiff.Constant(2))
	right := x.Tanh()
	top := left.Add(right)

	order := autodiff.TopologicalSort(top)
	assert.Len(t, order, 5)
	assertTopological(t, top, order)
	assert.Same(t, x, order[len(order)-1], "shared leaf comes after both parents")
}

func TestTopologicalSort_RandomDAG(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 20; trial++ {
		pool := autodiff.Values(0.5, -1, 2, 0.25)
		for i := 0; i < 200; i++ {
			a := pool[rng.IntN(len(pool))]
			b := pool[rng.IntN(len(pool))]
			var n *autodiff.Value
			switch rng.IntN(4) {
			case 0:
				n = a.Add(b)
			case 1:
				n = a.Mul(b)
			case 2:
				n = a.Sub(b)
			default:
				n = a.Tanh()
			}
			pool = append(pool, n)
		}
		root := autodiff.Sum(pool[len(pool)-10:]...)

		assertTopological(t, root, autodiff.TopologicalSort(root))
	}
}

func TestTopologicalSort_DeepChain(t *testing.T) {
	const depth = 100_000

	x := autodiff.NewValue(0)
	y := x
	for i := 0; i < depth; i++ {
		y = y.Add(autodiff.Constant(1))
	}

	order := autodiff.Backward(y)
	assert.Len(t, order, 2*depth+1)
	assert.Equal(t, float64(depth), y.Data())
	assert.Equal(t, 1.0, x.Grad())
}

func TestWalk_DeduplicatesEdges(t *testing.T) {
	x := autodiff.NewValue(3)
	y := x.Add(x)

	nodes, edges := autodiff.Walk(y)
	assert.Len(t, nodes, 2)
	require.Len(t, edges, 1)
	assert.Same(t, x, edges[0].From)
	assert.Same(t, y, edges[0].To)
}
