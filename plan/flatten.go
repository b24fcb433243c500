package plan

import (
	"fmt"

	"github.com/katalvlaran/submatch/molgraph"
)

// flattener encapsulates state while DFS-walking the pattern, mirroring
// dfs.dfsWalker's shape: a struct carrying the immutable input and the
// result being assembled, with a recursive method that mutates it.
type flattener struct {
	pattern molgraph.Graph
	visited []bool // indexed by VertexHandle
	seenE   []bool // indexed by EdgeHandle
	steps   []Step
}

// Flatten produces the DFS plan for pattern p (spec §4.2). The canonical
// starting vertex of each connected component is its lowest-handle
// unvisited vertex — handles are assigned in insertion order by
// molgraph.Graph, which is exactly "first vertex by stable insertion
// order".
func Flatten(p molgraph.Graph) (*Plan, error) {
	if p == nil {
		return nil, fmt.Errorf("plan: Flatten: %w", ErrEmptyPattern)
	}

	verts := p.Vertices()
	if len(verts) == 0 {
		return nil, fmt.Errorf("plan: Flatten: %w", ErrEmptyPattern)
	}

	edgeCount := countEdges(p, verts)

	maxVertex := 0
	for _, v := range verts {
		if int(v) > maxVertex {
			maxVertex = int(v)
		}
	}
	maxEdge := -1
	for _, v := range verts {
		for _, ie := range p.EdgesOf(v) {
			if int(ie.Edge) > maxEdge {
				maxEdge = int(ie.Edge)
			}
		}
	}

	fl := &flattener{
		pattern: p,
		visited: make([]bool, maxVertex+1),
		seenE:   make([]bool, maxEdge+1),
		steps:   make([]Step, 0, len(verts)+edgeCount),
	}

	first := true
	for _, v := range verts {
		if fl.visited[v] {
			continue
		}
		if first {
			fl.steps = append(fl.steps, Step{Kind: StepAnchor, Vertex: v})
			first = false
		} else {
			fl.steps = append(fl.steps, Step{Kind: StepUnanchoredAnchor, Vertex: v})
		}
		fl.visited[v] = true
		fl.walk(v)
	}

	result := &Plan{Steps: fl.steps, VertexCount: len(verts), EdgeCount: edgeCount}
	if err := result.validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// walk recurses from an already-visited, already-anchored vertex v,
// emitting a StepEdge before descending into each newly discovered
// neighbor and a StepRingClose for each already-visited neighbor reached
// by an edge not yet emitted.
func (fl *flattener) walk(v molgraph.VertexHandle) {
	for _, ie := range fl.pattern.EdgesOf(v) {
		if fl.seenE[ie.Edge] {
			continue
		}
		other := ie.Other
		if !fl.visited[other] {
			fl.seenE[ie.Edge] = true
			fl.steps = append(fl.steps, Step{Kind: StepEdge, Edge: ie.Edge, From: v, To: other})
			fl.visited[other] = true
			fl.walk(other)
		} else {
			// Ring closure: both ends already mapped by the time we reach
			// this edge in the DFS order. A self-loop (other == v) is also
			// a ring closure by this same rule.
			fl.seenE[ie.Edge] = true
			fl.steps = append(fl.steps, Step{Kind: StepRingClose, Edge: ie.Edge, From: v, To: other})
		}
	}
}

// countEdges sums unique edge handles across all vertices' incidence
// lists; an undirected edge appears in two incidence lists (one, for a
// self-loop), so this counts by edge handle rather than by occurrence.
func countEdges(p molgraph.Graph, verts []molgraph.VertexHandle) int {
	seen := make(map[molgraph.EdgeHandle]struct{})
	for _, v := range verts {
		for _, ie := range p.EdgesOf(v) {
			seen[ie.Edge] = struct{}{}
		}
	}

	return len(seen)
}

// validate checks the three invariants spec §3 states for a DFS plan:
// pre-order vertex discovery, single coverage of every pattern edge, and
// that every Edge/RingClose references already-mapped ends. It is a
// defensive check on Flatten's own output, not part of the algorithm.
func (p *Plan) validate() error {
	mapped := make(map[molgraph.VertexHandle]bool)
	edgesSeen := 0

	for i, s := range p.Steps {
		switch s.Kind {
		case StepAnchor, StepUnanchoredAnchor:
			if mapped[s.Vertex] {
				return fmt.Errorf("plan: validate: step %d anchors already-mapped vertex: %w", i, ErrPlanInvariant)
			}
			mapped[s.Vertex] = true
		case StepEdge:
			if !mapped[s.From] {
				return fmt.Errorf("plan: validate: step %d Edge.From unmapped: %w", i, ErrPlanInvariant)
			}
			if mapped[s.To] {
				return fmt.Errorf("plan: validate: step %d Edge.To already mapped: %w", i, ErrPlanInvariant)
			}
			mapped[s.To] = true
			edgesSeen++
		case StepRingClose:
			if !mapped[s.From] || !mapped[s.To] {
				return fmt.Errorf("plan: validate: step %d RingClose ends unmapped: %w", i, ErrPlanInvariant)
			}
			edgesSeen++
		default:
			return fmt.Errorf("plan: validate: step %d unknown kind %v: %w", i, s.Kind, ErrPlanInvariant)
		}
	}

	if len(mapped) != p.VertexCount {
		return fmt.Errorf("plan: validate: mapped %d of %d vertices: %w", len(mapped), p.VertexCount, ErrPlanInvariant)
	}
	if edgesSeen != p.EdgeCount {
		return fmt.Errorf("plan: validate: covered %d of %d edges: %w", edgesSeen, p.EdgeCount, ErrPlanInvariant)
	}

	return nil
}
