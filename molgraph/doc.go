// Package molgraph defines the labeled, undirected graph shape that the
// submatch subgraph-isomorphism matcher operates on: vertices are atoms
// carrying an element label, edges are bonds carrying a bond-order label.
//
// The central concrete type is Mol, an arena-backed structure addressed
// by small integer handles (VertexHandle, EdgeHandle) rather than by
// pointer or by string ID at the hot path. Contiguous arenas keep the
// ownership graph acyclic (no Vertex <-> Edge back-references to manage)
// and let the match package key its paint bitset directly off a handle's
// integer value.
//
// A Mol is immutable once handed to a matcher: nothing under package
// match ever calls AddAtom or AddBond on a bound pattern or target.
// Callers build a Mol once (AddAtom/AddBond), then read it through the
// Graph interface (Vertices/EdgesOf/Endpoints/VertexLabel/EdgeLabel),
// which a caller-supplied implementation may satisfy in place of Mol.
//
// Configuration options:
//
//	WithLoops()   permits self-loop bonds (from == to).
//	WithCapacityHint(vertices, edges) preallocates the backing arenas.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrDuplicateVertexID - AddAtom called twice with the same ID.
//	ErrVertexNotFound    - ResolveVertex given an ID naming no vertex.
//	ErrMalformedEdge     - AddBond references an endpoint ID not in the graph.
//	ErrLoopNotAllowed    - self-loop bond when WithLoops was not given.
package molgraph
