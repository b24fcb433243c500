package plan

import (
	"errors"

	"github.com/katalvlaran/submatch/molgraph"
)

// Sentinel errors for plan construction.
var (
	// ErrEmptyPattern indicates the pattern graph has no vertices.
	ErrEmptyPattern = errors.New("plan: pattern graph is empty")

	// ErrPlanInvariant indicates Flatten produced a plan violating one of
	// its own invariants (pre-order, single-coverage, back-reference
	// ordering). This should be unreachable; it exists as a defensive
	// check on the flattener's own output, in the spirit of
	// dfs.DetectCycles validating its traversal result before returning.
	ErrPlanInvariant = errors.New("plan: internal invariant violated")
)

// StepKind discriminates the four step shapes of spec §3's DFS plan.
type StepKind int

const (
	// StepAnchor is the first vertex of the pattern's first connected
	// component; it must be matched against a chosen anchor of the target.
	StepAnchor StepKind = iota

	// StepUnanchoredAnchor is the first vertex of a subsequent connected
	// component, ranging over all currently-unused target vertices.
	StepUnanchoredAnchor

	// StepEdge is a forward DFS edge: From is already mapped, To is not.
	StepEdge

	// StepRingClose is a back edge: both ends are already mapped.
	StepRingClose
)

// String renders a StepKind for diagnostics and logging.
func (k StepKind) String() string {
	switch k {
	case StepAnchor:
		return "Anchor"
	case StepUnanchoredAnchor:
		return "UnanchoredAnchor"
	case StepEdge:
		return "Edge"
	case StepRingClose:
		return "RingClose"
	default:
		return "Unknown"
	}
}

// Step is one instruction of the flattened DFS plan (spec §3).
//
// Which fields are meaningful depends on Kind:
//
//	StepAnchor:           Vertex
//	StepUnanchoredAnchor: Vertex
//	StepEdge:             Edge, From, To (To is newly discovered)
//	StepRingClose:        Edge, From, To (both already mapped)
type Step struct {
	Kind   StepKind
	Vertex molgraph.VertexHandle // valid for StepAnchor / StepUnanchoredAnchor
	Edge   molgraph.EdgeHandle   // valid for StepEdge / StepRingClose
	From   molgraph.VertexHandle // valid for StepEdge / StepRingClose
	To     molgraph.VertexHandle // valid for StepEdge / StepRingClose
}

// Plan is the ordered sequence of Steps produced by Flatten, plus the
// pattern vertex/edge counts the engine uses to size its vertex/edge
// maps. A full mapping is reached once every Step has been satisfied.
type Plan struct {
	Steps       []Step
	VertexCount int
	EdgeCount   int
}
