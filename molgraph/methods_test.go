package molgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/molgraph"
)

func TestAddAtomRejectsEmptyID(t *testing.T) {
	g := molgraph.NewGraph()
	_, err := g.AddAtom("", "C")
	require.ErrorIs(t, err, molgraph.ErrEmptyVertexID)
}

func TestAddAtomRejectsDuplicate(t *testing.T) {
	g := molgraph.NewGraph()
	_, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	_, err = g.AddAtom("a1", "N")
	require.ErrorIs(t, err, molgraph.ErrDuplicateVertexID)
}

func TestResolveVertexFindsExistingID(t *testing.T) {
	g := molgraph.NewGraph()
	want, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	got, err := g.ResolveVertex("a1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestResolveVertexRejectsUnknownID(t *testing.T) {
	g := molgraph.NewGraph()
	_, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	_, err = g.ResolveVertex("ghost")
	require.ErrorIs(t, err, molgraph.ErrVertexNotFound)
}

func TestAddBondRejectsMalformedEndpoint(t *testing.T) {
	g := molgraph.NewGraph()
	_, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	_, err = g.AddBond("a1", "ghost", "-")
	require.ErrorIs(t, err, molgraph.ErrMalformedEdge)
	require.True(t, errors.Is(err, molgraph.ErrMalformedEdge))
}

func TestAddBondRejectsLoopByDefault(t *testing.T) {
	g := molgraph.NewGraph()
	_, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	_, err = g.AddBond("a1", "a1", "-")
	require.ErrorIs(t, err, molgraph.ErrLoopNotAllowed)
}

func TestAddBondAllowsLoopWithOption(t *testing.T) {
	g := molgraph.NewGraph(molgraph.WithLoops())
	_, err := g.AddAtom("a1", "C")
	require.NoError(t, err)
	e, err := g.AddBond("a1", "a1", "-")
	require.NoError(t, err)

	incident := g.EdgesOf(0)
	require.Len(t, incident, 1)
	require.Equal(t, e, incident[0].Edge)
}

func TestIncidenceIsUndirectedAndOrdered(t *testing.T) {
	g := molgraph.NewGraph()
	a, _ := g.AddAtom("a1", "C")
	b, _ := g.AddAtom("a2", "C")
	c, _ := g.AddAtom("a3", "O")
	e1, err := g.AddBond("a1", "a2", "-")
	require.NoError(t, err)
	e2, err := g.AddBond("a1", "a3", "=")
	require.NoError(t, err)

	incA := g.EdgesOf(a)
	require.Len(t, incA, 2)
	require.Equal(t, IncidentEdgeView{e1, b}, IncidentEdgeView{incA[0].Edge, incA[0].Other})
	require.Equal(t, IncidentEdgeView{e2, c}, IncidentEdgeView{incA[1].Edge, incA[1].Other})

	incB := g.EdgesOf(b)
	require.Len(t, incB, 1)
	require.Equal(t, a, incB[0].Other)
}

// IncidentEdgeView is a comparable projection of molgraph.IncidentEdge
// for table-style equality assertions in this file.
type IncidentEdgeView struct {
	Edge  molgraph.EdgeHandle
	Other molgraph.VertexHandle
}

func TestVerticesOrderAndLabels(t *testing.T) {
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("a1", "C")
	_, _ = g.AddAtom("a2", "N")
	vs := g.Vertices()
	require.Equal(t, []molgraph.VertexHandle{0, 1}, vs)
	require.Equal(t, "C", g.VertexLabel(0))
	require.Equal(t, "N", g.VertexLabel(1))
}

func TestEndpointsAndEdgeLabel(t *testing.T) {
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("a1", "C")
	_, _ = g.AddAtom("a2", "O")
	e, err := g.AddBond("a1", "a2", "=")
	require.NoError(t, err)
	from, to := g.Endpoints(e)
	require.Equal(t, molgraph.VertexHandle(0), from)
	require.Equal(t, molgraph.VertexHandle(1), to)
	require.Equal(t, "=", g.EdgeLabel(e))
}

func TestGraphImplementsInterface(t *testing.T) {
	var _ molgraph.Graph = molgraph.NewGraph()
}
