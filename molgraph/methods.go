// File: methods.go
// Role: construction (AddAtom/AddBond) and the Graph interface surface
// (Vertices/EdgesOf/Endpoints/VertexLabel/EdgeLabel) over the arena.
//
// Determinism: Vertices() and EdgesOf() return handles in the order they
// were inserted, which is stable across calls — this is the "stable
// insertion order" spec §4.2/§4.3 requires for the flattener's canonical
// start vertex and the engine's candidate enumeration.
package molgraph

// AddAtom inserts a new vertex with the given ID and element label.
// Complexity: O(1) amortized.
func (g *Mol) AddAtom(id, element string) (VertexHandle, error) {
	if id == "" {
		return InvalidVertex, graphErrorf("AddAtom", ErrEmptyVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.byID[id]; exists {
		return InvalidVertex, graphErrorf("AddAtom", ErrDuplicateVertexID)
	}

	h := VertexHandle(len(g.vertices))
	g.vertices = append(g.vertices, vertexRecord{id: id, label: element})
	g.byID[id] = h

	return h, nil
}

// AddBond inserts a new edge between fromID and toID with the given bond
// order label. Both endpoints must already exist via AddAtom.
// Complexity: O(1) amortized.
func (g *Mol) AddBond(fromID, toID, order string) (EdgeHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.byID[fromID]
	if !ok {
		return InvalidEdge, graphErrorf("AddBond", ErrMalformedEdge)
	}
	to, ok := g.byID[toID]
	if !ok {
		return InvalidEdge, graphErrorf("AddBond", ErrMalformedEdge)
	}
	if from == to && !g.allowLoops {
		return InvalidEdge, graphErrorf("AddBond", ErrLoopNotAllowed)
	}

	e := EdgeHandle(len(g.edges))
	eid := syntheticEdgeID(e)
	g.edges = append(g.edges, edgeRecord{id: eid, from: from, to: to, label: order})
	g.eyID[eid] = e

	// Undirected incidence: both endpoints see this edge, each recording
	// the other as the "other" vertex. A self-loop records one entry,
	// matching core's convention that a loop appears once in Neighbors.
	g.vertices[from].edges = append(g.vertices[from].edges, IncidentEdge{Edge: e, Other: to})
	if from != to {
		g.vertices[to].edges = append(g.vertices[to].edges, IncidentEdge{Edge: e, Other: from})
	}

	return e, nil
}

// syntheticEdgeID produces a stable textual ID ("b0", "b1", ...) for
// internal bookkeeping; callers never need to supply edge IDs since bonds
// are identified by position, unlike core.Graph's caller-visible edge IDs.
func syntheticEdgeID(e EdgeHandle) string {
	const digits = "0123456789"
	if e == 0 {
		return "b0"
	}
	buf := make([]byte, 0, 8)
	buf = append(buf, 'b')
	n := int(e)
	start := len(buf)
	for n > 0 {
		buf = append(buf, digits[n%10])
		n /= 10
	}
	// reverse the digits portion in place
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// VertexByID looks up a vertex handle by its original string ID.
func (g *Mol) VertexByID(id string) (VertexHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h, ok := g.byID[id]

	return h, ok
}

// ResolveVertex looks up a vertex handle by its original string ID,
// failing with ErrVertexNotFound instead of a bare bool — for callers
// that want the lookup to participate in an error chain (e.g. via
// errors.Is), mirroring core.VertexByID's error-returning counterpart.
func (g *Mol) ResolveVertex(id string) (VertexHandle, error) {
	h, ok := g.VertexByID(id)
	if !ok {
		return InvalidVertex, graphErrorf("ResolveVertex", ErrVertexNotFound)
	}

	return h, nil
}

// ID returns the original string ID a vertex handle was created with.
func (g *Mol) ID(v VertexHandle) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(v) < 0 || int(v) >= len(g.vertices) {
		return ""
	}

	return g.vertices[v].id
}

// Vertices returns every vertex handle in insertion order.
func (g *Mol) Vertices() []VertexHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexHandle, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexHandle(i)
	}

	return out
}

// EdgesOf returns the incident edges of v in the order bonds were added.
func (g *Mol) EdgesOf(v VertexHandle) []IncidentEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(v) < 0 || int(v) >= len(g.vertices) {
		return nil
	}

	out := make([]IncidentEdge, len(g.vertices[v].edges))
	copy(out, g.vertices[v].edges)

	return out
}

// Endpoints returns the two vertex handles edge e connects.
func (g *Mol) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(e) < 0 || int(e) >= len(g.edges) {
		return InvalidVertex, InvalidVertex
	}

	return g.edges[e].from, g.edges[e].to
}

// VertexLabel returns the element label of vertex v.
func (g *Mol) VertexLabel(v VertexHandle) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(v) < 0 || int(v) >= len(g.vertices) {
		return ""
	}

	return g.vertices[v].label
}

// EdgeLabel returns the bond-order label of edge e.
func (g *Mol) EdgeLabel(e EdgeHandle) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if int(e) < 0 || int(e) >= len(g.edges) {
		return ""
	}

	return g.edges[e].label
}

// VertexCount returns the number of vertices in the graph.
func (g *Mol) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges in the graph.
func (g *Mol) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
