package match

import (
	"errors"
	"fmt"
)

// Sentinel errors for Matcher construction and binding.
var (
	// ErrNilPattern indicates New was called with a nil pattern graph.
	ErrNilPattern = errors.New("match: pattern graph is nil")

	// ErrNilTarget indicates Bind was called with a nil target graph.
	ErrNilTarget = errors.New("match: target graph is nil")

	// ErrNotBound indicates Next was called before Bind.
	ErrNotBound = errors.New("match: matcher is not bound to a target")

	// ErrMalformedGraph indicates a graph's EdgesOf/Endpoints are mutually
	// inconsistent — an edge whose endpoints are not among the graph's own
	// Vertices(), or an incidence entry not reflected in Endpoints. This is
	// the "malformed graph" programmer error of spec §7.
	ErrMalformedGraph = errors.New("match: malformed graph")

	// ErrUnknownOption indicates WithVertexPredicate or WithEdgePredicate
	// was given a handle that names no vertex/edge of the bound pattern.
	// This is the "unknown option keys (rejected at bind)" observable
	// failure of spec §7.
	ErrUnknownOption = errors.New("match: option key names no pattern vertex/edge")
)

// Kind classifies a *Error for programmatic branching, per spec §7's
// distinction between exhaustion (not an error) and programmer errors.
type Kind int

const (
	// KindEmptyPattern: the pattern graph has no vertices.
	KindEmptyPattern Kind = iota
	// KindMalformedGraph: pattern or target fails incidence/endpoint consistency.
	KindMalformedGraph
	// KindPredicatePanic: a caller-supplied predicate panicked.
	KindPredicatePanic
	// KindUnknownOption: a WithVertexPredicate/WithEdgePredicate handle
	// names no vertex/edge of the bound pattern.
	KindUnknownOption
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEmptyPattern:
		return "EmptyPattern"
	case KindMalformedGraph:
		return "MalformedGraph"
	case KindPredicatePanic:
		return "PredicatePanic"
	case KindUnknownOption:
		return "UnknownOption"
	default:
		return "Unknown"
	}
}

// Error is the typed failure spec §7 requires: "these terminate the
// current next_match call with a typed failure indicating which kind; no
// partial state is visible to the caller afterwards." Next() discards
// the in-progress engine/iterator and starts a fresh search over the
// same target before returning one of these, so a second call to Next()
// after an Error cannot observe a half-updated map.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("match: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
