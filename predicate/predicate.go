package predicate

import "github.com/katalvlaran/submatch/molgraph"

// VertexPredicate decides whether a target vertex may stand in for a
// pattern vertex. It is called exactly once per candidate, with the
// pattern side first and the target side second; it must be pure with
// respect to its inputs (spec §5 "Shared data").
type VertexPredicate func(p molgraph.Graph, pattVertex molgraph.VertexHandle, t molgraph.Graph, tgtVertex molgraph.VertexHandle) bool

// EdgePredicate decides whether a target edge may stand in for a pattern
// edge, called pattern side first, target side second.
type EdgePredicate func(p molgraph.Graph, pattEdge molgraph.EdgeHandle, t molgraph.Graph, tgtEdge molgraph.EdgeHandle) bool

// DefaultVertexPredicate accepts a target vertex iff its element label
// equals the pattern vertex's element label.
func DefaultVertexPredicate(p molgraph.Graph, pv molgraph.VertexHandle, t molgraph.Graph, tv molgraph.VertexHandle) bool {
	return p.VertexLabel(pv) == t.VertexLabel(tv)
}

// DefaultEdgePredicate accepts a target edge iff its bond-order label
// equals the pattern edge's bond-order label.
func DefaultEdgePredicate(p molgraph.Graph, pe molgraph.EdgeHandle, t molgraph.Graph, te molgraph.EdgeHandle) bool {
	return p.EdgeLabel(pe) == t.EdgeLabel(te)
}

// VertexTable maps a pattern vertex to its predicate; an absent entry
// means "use DefaultVertexPredicate".
type VertexTable map[molgraph.VertexHandle]VertexPredicate

// EdgeTable maps a pattern edge to its predicate; an absent entry means
// "use DefaultEdgePredicate".
type EdgeTable map[molgraph.EdgeHandle]EdgePredicate

// Lookup returns the predicate registered for v, or DefaultVertexPredicate
// if none was registered.
func (vt VertexTable) Lookup(v molgraph.VertexHandle) VertexPredicate {
	if vt == nil {
		return DefaultVertexPredicate
	}
	if fn, ok := vt[v]; ok && fn != nil {
		return fn
	}

	return DefaultVertexPredicate
}

// Lookup returns the predicate registered for e, or DefaultEdgePredicate
// if none was registered.
func (et EdgeTable) Lookup(e molgraph.EdgeHandle) EdgePredicate {
	if et == nil {
		return DefaultEdgePredicate
	}
	if fn, ok := et[e]; ok && fn != nil {
		return fn
	}

	return DefaultEdgePredicate
}
