package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/predicate"
)

func buildCO(t *testing.T) (*molgraph.Mol, molgraph.VertexHandle, molgraph.VertexHandle, molgraph.EdgeHandle) {
	t.Helper()
	g := molgraph.NewGraph()
	c, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	o, err := g.AddAtom("a2", "O")
	require.NoError(t, err)
	e, err := g.AddBond("a1", "a2", "=")
	require.NoError(t, err)

	return g, c, o, e
}

func TestDefaultVertexPredicate(t *testing.T) {
	g, c, o, _ := buildCO(t)
	require.True(t, predicate.DefaultVertexPredicate(g, c, g, c))
	require.False(t, predicate.DefaultVertexPredicate(g, c, g, o))
}

func TestDefaultEdgePredicate(t *testing.T) {
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("a1", "C")
	_, _ = g.AddAtom("a2", "C")
	_, _ = g.AddAtom("a3", "C")
	single, err := g.AddBond("a1", "a2", "-")
	require.NoError(t, err)
	double, err := g.AddBond("a2", "a3", "=")
	require.NoError(t, err)

	require.True(t, predicate.DefaultEdgePredicate(g, single, g, single))
	require.False(t, predicate.DefaultEdgePredicate(g, single, g, double))
}

func TestVertexTableFallsBackToDefault(t *testing.T) {
	g, c, o, _ := buildCO(t)
	var vt predicate.VertexTable
	require.True(t, vt.Lookup(c)(g, c, g, c))

	vt = predicate.VertexTable{
		c: func(p molgraph.Graph, pv molgraph.VertexHandle, tg molgraph.Graph, tv molgraph.VertexHandle) bool {
			return true // accept anything for pattern vertex c
		},
	}
	require.True(t, vt.Lookup(c)(g, c, g, o))
	require.True(t, vt.Lookup(o)(g, o, g, c) == predicate.DefaultVertexPredicate(g, o, g, c))
}
