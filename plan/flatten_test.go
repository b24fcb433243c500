package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/plan"
)

func linearPattern(t *testing.T, n int) *molgraph.Mol {
	t.Helper()
	g := molgraph.NewGraph()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		ids[i] = id
		_, err := g.AddAtom(id, "C")
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		_, err := g.AddBond(ids[i], ids[i+1], "-")
		require.NoError(t, err)
	}

	return g
}

func TestFlattenRejectsEmptyPattern(t *testing.T) {
	_, err := plan.Flatten(molgraph.NewGraph())
	require.ErrorIs(t, err, plan.ErrEmptyPattern)
}

func TestFlattenLinearChain(t *testing.T) {
	g := linearPattern(t, 2) // "CC"
	p, err := plan.Flatten(g)
	require.NoError(t, err)
	require.Equal(t, 2, p.VertexCount)
	require.Equal(t, 1, p.EdgeCount)
	require.Len(t, p.Steps, 2)
	require.Equal(t, plan.StepAnchor, p.Steps[0].Kind)
	require.Equal(t, molgraph.VertexHandle(0), p.Steps[0].Vertex)
	require.Equal(t, plan.StepEdge, p.Steps[1].Kind)
	require.Equal(t, molgraph.VertexHandle(0), p.Steps[1].From)
	require.Equal(t, molgraph.VertexHandle(1), p.Steps[1].To)
}

func TestFlattenRingClosure(t *testing.T) {
	// A 3-membered ring: a-b, b-c, c-a.
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("a", "C")
	_, _ = g.AddAtom("b", "C")
	_, _ = g.AddAtom("c", "C")
	_, err := g.AddBond("a", "b", "-")
	require.NoError(t, err)
	_, err = g.AddBond("b", "c", "-")
	require.NoError(t, err)
	_, err = g.AddBond("c", "a", "-")
	require.NoError(t, err)

	p, err := plan.Flatten(g)
	require.NoError(t, err)
	require.Equal(t, 3, p.VertexCount)
	require.Equal(t, 3, p.EdgeCount)

	kinds := make([]plan.StepKind, len(p.Steps))
	for i, s := range p.Steps {
		kinds[i] = s.Kind
	}
	require.Equal(t, []plan.StepKind{plan.StepAnchor, plan.StepEdge, plan.StepEdge, plan.StepRingClose}, kinds)
	last := p.Steps[3]
	require.Equal(t, molgraph.VertexHandle(2), last.From)
	require.Equal(t, molgraph.VertexHandle(0), last.To)
}

func TestFlattenDisconnectedPattern(t *testing.T) {
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("a", "C")
	_, _ = g.AddAtom("b", "N")
	// no edges: two singleton components

	p, err := plan.Flatten(g)
	require.NoError(t, err)
	require.Equal(t, 2, p.VertexCount)
	require.Equal(t, 0, p.EdgeCount)
	require.Len(t, p.Steps, 2)
	require.Equal(t, plan.StepAnchor, p.Steps[0].Kind)
	require.Equal(t, plan.StepUnanchoredAnchor, p.Steps[1].Kind)
}

func TestFlattenBranchedPattern(t *testing.T) {
	// a central carbon bonded to three others: a star pattern.
	g := molgraph.NewGraph()
	_, _ = g.AddAtom("center", "C")
	_, _ = g.AddAtom("x", "O")
	_, _ = g.AddAtom("y", "N")
	_, err := g.AddBond("center", "x", "-")
	require.NoError(t, err)
	_, err = g.AddBond("center", "y", "-")
	require.NoError(t, err)

	p, err := plan.Flatten(g)
	require.NoError(t, err)
	require.Equal(t, 3, p.VertexCount)
	require.Equal(t, 2, p.EdgeCount)
	require.Equal(t, plan.StepEdge, p.Steps[1].Kind)
	require.Equal(t, plan.StepEdge, p.Steps[2].Kind)
	require.Equal(t, molgraph.VertexHandle(0), p.Steps[1].From)
	require.Equal(t, molgraph.VertexHandle(0), p.Steps[2].From)
}
