package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds:
//
//	a -> b -> d
//	a -> c -> d
func diamond() *Directed[string] {
	g := NewDirected[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")
	return g
}

func TestComputeDominators_Diamond(t *testing.T) {
	d := ComputeDominators(diamond(), "a")

	// The join node's immediate dominator is the branch node, not either arm.
	idom, ok := d.ImmediateDominator("d")
	require.True(t, ok)
	assert.Equal(t, "a", idom)

	for _, n := range []string{"b", "c"} {
		idom, ok := d.ImmediateDominator(n)
		require.True(t, ok)
		assert.Equal(t, "a", idom)
	}
}

func TestComputeDominators_EntryHasNoImmediateDominator(t *testing.T) {
	d := ComputeDominators(diamond(), "a")

	_, ok := d.ImmediateDominator("a")
	assert.False(t, ok)
	assert.Equal(t, "a", d.Entry())
}

func TestComputeDominators_LinearChain(t *testing.T) {
	g := NewDirected[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	d := ComputeDominators(g, 1)

	assert.Equal(t, []int{4, 3, 2, 1}, d.DominatorsOf(4))
	assert.True(t, d.Dominates(2, 4))
	assert.True(t, d.StrictlyDominates(1, 4))
	assert.False(t, d.Dominates(3, 2))
}

func TestDominators_PartialOrderProperties(t *testing.T) {
	d := ComputeDominators(diamond(), "a")
	nodes := []string{"a", "b", "c", "d"}

	// Reflexivity.
	for _, n := range nodes {
		assert.True(t, d.Dominates(n, n), "node %s", n)
		assert.False(t, d.StrictlyDominates(n, n), "node %s", n)
	}

	// Antisymmetry.
	for _, x := range nodes {
		for _, y := range nodes {
			if x != y && d.Dominates(x, y) {
				assert.False(t, d.Dominates(y, x), "%s and %s", x, y)
			}
		}
	}

	// Transitivity.
	for _, x := range nodes {
		for _, y := range nodes {
			for _, z := range nodes {
				if d.Dominates(x, y) && d.Dominates(y, z) {
					assert.True(t, d.Dominates(x, z), "%s %s %s", x, y, z)
				}
			}
		}
	}

	// Neither branch arm dominates the other.
	assert.False(t, d.Dominates("b", "c"))
	assert.False(t, d.Dominates("c", "b"))
}

func TestDominators_UnreachableNode(t *testing.T) {
	g := diamond()
	g.AddEdge("x", "y") // disconnected from a

	d := ComputeDominators(g, "a")

	assert.False(t, d.Reachable("x"))
	assert.False(t, d.Dominates("a", "x"))
	_, ok := d.ImmediateDominator("x")
	assert.False(t, ok)
	assert.Equal(t, []string{"x"}, d.DominatorsOf("x"))
}

func TestDominators_Loop(t *testing.T) {
	g := NewDirected[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2) // back edge
	g.AddEdge(3, 4)

	d := ComputeDominators(g, 1)

	idom, ok := d.ImmediateDominator(2)
	require.True(t, ok)
	assert.Equal(t, 1, idom)

	// The loop head dominates the loop body and the loop exit.
	assert.True(t, d.Dominates(2, 3))
	assert.True(t, d.Dominates(2, 4))
}

func TestDominators_Tree(t *testing.T) {
	d := ComputeDominators(diamond(), "a")

	tree := d.DominatorTree()
	assert.ElementsMatch(t, []string{"b", "c", "d"}, tree["a"])
	assert.Empty(t, tree["b"])
	assert.Empty(t, tree["c"])
	assert.Empty(t, tree["d"])
}

func TestComputeDominators_SingleNode(t *testing.T) {
	g := NewDirected[string]()
	g.AddNode("only")

	d := ComputeDominators(g, "only")

	assert.True(t, d.Reachable("only"))
	assert.True(t, d.Dominates("only", "only"))
	_, ok := d.ImmediateDominator("only")
	assert.False(t, ok)
}
