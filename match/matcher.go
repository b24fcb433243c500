package match

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/plan"
)

// Matcher is the public handle on one pattern's search against
// successive target graphs (spec §4.1's "make_matcher" / "next_match").
// A Matcher is built once from a pattern and reused across any number of
// Bind/Next cycles against different targets; it is not safe for
// concurrent use.
type Matcher struct {
	pattern molgraph.Graph
	plan    *plan.Plan
	cfg     config

	target molgraph.Graph
	eng    *engine
	it     *iterator
	last   *Match
}

// New builds a Matcher for pattern, applying opts (spec §4.1). It fails
// with a *Error{Kind: KindEmptyPattern} if pattern has no vertices, or
// KindMalformedGraph if pattern's incidence lists are inconsistent with
// its own Vertices()/Endpoints() — including the defensive case where
// plan.Flatten's own output fails its internal invariant check, which
// only a structurally inconsistent pattern could trigger.
func New(pattern molgraph.Graph, opts ...Option) (*Matcher, error) {
	if pattern == nil {
		return nil, ErrNilPattern
	}
	if err := checkGraphIntegrity(pattern); err != nil {
		return nil, newError(KindMalformedGraph, err)
	}

	pl, err := plan.Flatten(pattern)
	if err != nil {
		if errors.Is(err, plan.ErrEmptyPattern) {
			return nil, newError(KindEmptyPattern, err)
		}

		return nil, newError(KindMalformedGraph, err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Matcher{pattern: pattern, plan: pl, cfg: cfg}, nil
}

// Bind attaches the Matcher to a new target graph, discarding any
// in-progress search against a previous target (spec §4.1). It fails
// with KindMalformedGraph if target's incidence lists are inconsistent.
func (m *Matcher) Bind(target molgraph.Graph) error {
	if target == nil {
		return ErrNilTarget
	}
	if err := checkGraphIntegrity(target); err != nil {
		return newError(KindMalformedGraph, err)
	}
	if err := checkOptionKeys(m.plan, m.cfg); err != nil {
		return newError(KindUnknownOption, err)
	}

	m.target = target
	m.last = nil
	m.eng = newEngine(m.pattern, target, m.plan, m.cfg.vertexPT, m.cfg.edgePT, m.cfg.logger)
	m.it = newIterator(m.eng, m.cfg.overlap, m.cfg.permute)

	return nil
}

// Next returns the next distinct match, or (nil, nil) once the search
// space is exhausted (spec §4.1's "next_match" — exhaustion is not an
// error). A *Error return indicates a programmer error (spec §7); after
// one, the Matcher is left bound but with no in-progress search, so a
// subsequent Next starts the anchor search over from the beginning.
func (m *Matcher) Next() (*Match, error) {
	if m.target == nil {
		return nil, ErrNotBound
	}

	match, ok, err := m.it.next()
	if err != nil {
		m.eng = newEngine(m.pattern, m.target, m.plan, m.cfg.vertexPT, m.cfg.edgePT, m.cfg.logger)
		m.it = newIterator(m.eng, m.cfg.overlap, m.cfg.permute)

		return nil, newError(KindPredicatePanic, err)
	}
	if !ok {
		return nil, nil
	}
	m.last = match

	return match, nil
}

// CurrentVertexMap returns the vertex map of the most recently yielded
// match, or nil if Next has not yet returned a match for the current
// Bind.
func (m *Matcher) CurrentVertexMap() []molgraph.VertexHandle {
	if m.last == nil {
		return nil
	}
	out := make([]molgraph.VertexHandle, len(m.last.VertexMap))
	copy(out, m.last.VertexMap)

	return out
}

// CurrentEdgeMap returns the edge map of the most recently yielded
// match, or nil if Next has not yet returned a match for the current
// Bind.
func (m *Matcher) CurrentEdgeMap() []molgraph.EdgeHandle {
	if m.last == nil {
		return nil
	}
	out := make([]molgraph.EdgeHandle, len(m.last.EdgeMap))
	copy(out, m.last.EdgeMap)

	return out
}

// checkOptionKeys validates that every WithVertexPredicate/
// WithEdgePredicate handle registered in cfg names an actual vertex/edge
// of pl's pattern — spec §7's "unknown option keys (rejected at bind)".
func checkOptionKeys(pl *plan.Plan, cfg config) error {
	for v := range cfg.vertexPT {
		if int(v) < 0 || int(v) >= pl.VertexCount {
			return fmt.Errorf("%w: vertex %v", ErrUnknownOption, v)
		}
	}
	for e := range cfg.edgePT {
		if int(e) < 0 || int(e) >= pl.EdgeCount {
			return fmt.Errorf("%w: edge %v", ErrUnknownOption, e)
		}
	}

	return nil
}

// checkGraphIntegrity validates that g's incidence lists agree with its
// own Vertices()/Endpoints() — the generic form of spec §7's "malformed
// graph" error, since any caller may supply a molgraph.Graph
// implementation whose internal consistency we cannot otherwise assume.
func checkGraphIntegrity(g molgraph.Graph) error {
	known := make(map[molgraph.VertexHandle]struct{})
	for _, v := range g.Vertices() {
		known[v] = struct{}{}
	}

	for v := range known {
		for _, ie := range g.EdgesOf(v) {
			if _, ok := known[ie.Other]; !ok {
				return fmt.Errorf("%w: edge %v references unknown vertex %v", ErrMalformedGraph, ie.Edge, ie.Other)
			}
			a, b := g.Endpoints(ie.Edge)
			if a != v && b != v {
				return fmt.Errorf("%w: edge %v endpoints (%v,%v) do not include vertex %v", ErrMalformedGraph, ie.Edge, a, b, v)
			}
		}
	}

	return nil
}
