package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/fixture"
)

func TestParseSMILESLinearChain(t *testing.T) {
	g, err := fixture.ParseSMILES("CCCC")
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	v1, ok := g.VertexByID("a1")
	require.True(t, ok)
	require.Equal(t, "C", g.VertexLabel(v1))
}

func TestParseSMILESRingClosure(t *testing.T) {
	g, err := fixture.ParseSMILES("C1CCCC1")
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount()) // 4 chain bonds + 1 ring-closure bond
}

func TestParseSMILESBranchAndDoubleBond(t *testing.T) {
	g, err := fixture.ParseSMILES("C(=O)Cl")
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	a1, _ := g.VertexByID("a1")
	a2, _ := g.VertexByID("a2")
	a3, _ := g.VertexByID("a3")
	require.Equal(t, "C", g.VertexLabel(a1))
	require.Equal(t, "O", g.VertexLabel(a2))
	require.Equal(t, "Cl", g.VertexLabel(a3))

	edges := g.EdgesOf(a1)
	require.Len(t, edges, 2)
	require.Equal(t, "=", g.EdgeLabel(edges[0].Edge))
	require.Equal(t, "-", g.EdgeLabel(edges[1].Edge))
}

func TestParseSMILESUnknownElementFails(t *testing.T) {
	_, err := fixture.ParseSMILES("Cx")
	require.ErrorIs(t, err, fixture.ErrUnknownElement)
}

func TestParseSMILESUnmatchedCloseParenFails(t *testing.T) {
	_, err := fixture.ParseSMILES("C)C")
	require.ErrorIs(t, err, fixture.ErrUnexpectedCloseParen)
}

func TestParseSMILESUnclosedRingFails(t *testing.T) {
	_, err := fixture.ParseSMILES("C1CC")
	require.ErrorIs(t, err, fixture.ErrUnclosedRing)
}
