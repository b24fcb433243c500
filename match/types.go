package match

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/predicate"
)

// Match is one mapping from pattern elements to target elements produced
// by Matcher.Next. VertexMap and EdgeMap are indexed by pattern handle:
// VertexMap[v] is the target vertex standing in for pattern vertex v,
// EdgeMap[e] the target edge standing in for pattern edge e. Both slices
// are fully populated (no molgraph.InvalidVertex/InvalidEdge entries) for
// any Match actually returned.
type Match struct {
	VertexMap []molgraph.VertexHandle
	EdgeMap   []molgraph.EdgeHandle
}

// config collects the effect of every Option passed to New. It is
// unexported; callers only ever see the Option constructors, mirroring
// tsp.Options being built up through tsp.Option functions.
type config struct {
	overlap  bool
	permute  bool
	vertexPT predicate.VertexTable
	edgePT   predicate.EdgeTable
	logger   logr.Logger
}

func defaultConfig() config {
	return config{
		overlap: true,
		permute: false,
		logger:  logr.Discard(),
	}
}

// Option configures a Matcher at construction time.
type Option func(*config)

// WithOverlap sets whether two yielded matches may share a target vertex
// (spec §4.4 "overlap option"). Default true.
func WithOverlap(overlap bool) Option {
	return func(c *config) { c.overlap = overlap }
}

// WithPermute sets whether distinct pattern-to-target orderings of the
// same target vertex/edge set are yielded as separate matches, or
// suppressed as duplicates (spec §4.4 "permute option"). Default false.
func WithPermute(permute bool) Option {
	return func(c *config) { c.permute = permute }
}

// WithVertexPredicate overrides the predicate used to accept a candidate
// target vertex for pattern vertex v; unregistered vertices fall back to
// predicate.DefaultVertexPredicate.
func WithVertexPredicate(v molgraph.VertexHandle, pred predicate.VertexPredicate) Option {
	return func(c *config) {
		if c.vertexPT == nil {
			c.vertexPT = make(predicate.VertexTable)
		}
		c.vertexPT[v] = pred
	}
}

// WithEdgePredicate overrides the predicate used to accept a candidate
// target edge for pattern edge e; unregistered edges fall back to
// predicate.DefaultEdgePredicate.
func WithEdgePredicate(e molgraph.EdgeHandle, pred predicate.EdgePredicate) Option {
	return func(c *config) {
		if c.edgePT == nil {
			c.edgePT = make(predicate.EdgeTable)
		}
		c.edgePT[e] = pred
	}
}

// WithLogger installs a logr.Logger the engine uses to trace anchor
// selection at V(1); individual step outcomes and backtracking are not
// logged. The default is logr.Discard(), matching the teacher's pattern
// of silent operation unless a caller opts in.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.logger = l }
}
