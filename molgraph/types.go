package molgraph

import "sync"

// VertexHandle addresses a vertex (atom) within a single Graph's arena.
// Handles are dense, start at 0, and are assigned in insertion order;
// they are only meaningful relative to the Graph that produced them.
type VertexHandle int

// EdgeHandle addresses an edge (bond) within a single Graph's arena.
// Handles are dense, start at 0, and are assigned in insertion order.
type EdgeHandle int

// InvalidVertex and InvalidEdge are returned by lookups that find nothing;
// no valid arena index is ever negative.
const (
	InvalidVertex VertexHandle = -1
	InvalidEdge   EdgeHandle   = -1
)

// IncidentEdge is one entry of a vertex's incidence list: the edge handle
// together with the endpoint reached by crossing it. Graph.EdgesOf returns
// these in stable (insertion) order, which is what makes a Graph's
// candidate enumeration order reproducible per spec §4.3 "Determinism".
type IncidentEdge struct {
	Edge  EdgeHandle
	Other VertexHandle
}

// Graph is the read-only contract the matcher operates against (spec §6
// "Graph inputs"). The concrete *Mol in this package implements it, but
// callers may supply their own implementation wrapping an external
// atom/bond model, provided iteration order is stable across calls — an
// unstable implementation is undefined behavior per spec §7.
type Graph interface {
	// Vertices returns all vertex handles in stable (insertion) order.
	Vertices() []VertexHandle
	// EdgesOf returns the incident edges of v in stable order.
	EdgesOf(v VertexHandle) []IncidentEdge
	// Endpoints returns the two vertex handles an edge connects.
	Endpoints(e EdgeHandle) (VertexHandle, VertexHandle)
	// VertexLabel returns the element label of a vertex (e.g. "C", "O").
	VertexLabel(v VertexHandle) string
	// EdgeLabel returns the bond-order label of an edge (e.g. "-", "=").
	EdgeLabel(e EdgeHandle) string
}

// vertexRecord is one arena slot for a vertex.
type vertexRecord struct {
	id    string
	label string
	edges []IncidentEdge
}

// edgeRecord is one arena slot for an edge.
type edgeRecord struct {
	id    string
	from  VertexHandle
	to    VertexHandle
	label string
}

// GraphOption configures a Graph at construction time, mirroring core.GraphOption.
type GraphOption func(g *Mol)

// WithLoops permits self-loop bonds (AddBond(id, id, ...)).
func WithLoops() GraphOption {
	return func(g *Mol) { g.allowLoops = true }
}

// WithCapacityHint preallocates the vertex and edge arenas. Purely an
// allocation optimization; has no effect on semantics.
func WithCapacityHint(vertices, edges int) GraphOption {
	return func(g *Mol) {
		if vertices > 0 {
			g.vertices = make([]vertexRecord, 0, vertices)
		}
		if edges > 0 {
			g.edges = make([]edgeRecord, 0, edges)
		}
	}
}

// Mol is the concrete, arena-backed, handle-addressed molecule graph
// this package provides: atoms (vertices) carry an element label, bonds
// (edges) carry an order label. It implements Graph. A *Mol is safe for
// concurrent reads, and for concurrent construction calls (AddAtom/
// AddBond use a single mutex), but per spec §5 it is never mutated
// again once bound to a Matcher.
type Mol struct {
	mu sync.RWMutex

	allowLoops bool

	vertices []vertexRecord
	edges    []edgeRecord

	byID map[string]VertexHandle
	eyID map[string]EdgeHandle
}

// NewGraph creates an empty *Mol. By default self-loops are rejected.
func NewGraph(opts ...GraphOption) *Mol {
	g := &Mol{
		byID: make(map[string]VertexHandle),
		eyID: make(map[string]EdgeHandle),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
