package match

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/plan"
	"github.com/katalvlaran/submatch/predicate"
)

// result is the outcome of one engine.advance() call (spec §4.3's
// "advance()" contract).
type result int

const (
	resultExhausted result = iota
	resultMatched
)

// frame is one stack entry: which plan step it is trying to satisfy,
// which candidate index to resume from, and what it painted so
// popFrame can undo exactly that and nothing else. Handle fields default
// to their Invalid constants via newFrame, never the zero value 0.
type frame struct {
	stepIdx int
	cand    int

	paintedTargetV molgraph.VertexHandle
	paintedTargetE molgraph.EdgeHandle
	pattV          molgraph.VertexHandle
	pattE          molgraph.EdgeHandle
}

func newFrame(stepIdx int) frame {
	return frame{
		stepIdx:        stepIdx,
		paintedTargetV: molgraph.InvalidVertex,
		paintedTargetE: molgraph.InvalidEdge,
		pattV:          molgraph.InvalidVertex,
		pattE:          molgraph.InvalidEdge,
	}
}

// engine is the stateful backtracking walker of spec §4.3: a DFS plan
// plus a stack of frames tracking how far each step's candidate search
// has progressed, plus a paint set marking target vertices/edges in use
// by the in-progress mapping. It mirrors dfs's explicit-stack walker
// shape, generalized so a single advance() call does one unit of work
// and returns instead of recursing to completion.
type engine struct {
	p      molgraph.Graph
	t      molgraph.Graph
	pl     *plan.Plan
	vertPT predicate.VertexTable
	edgePT predicate.EdgeTable
	logger logr.Logger

	targetVerts []molgraph.VertexHandle
	targetInc   map[molgraph.VertexHandle][]molgraph.IncidentEdge

	vMap []molgraph.VertexHandle // indexed by pattern VertexHandle
	eMap []molgraph.EdgeHandle   // indexed by pattern EdgeHandle

	paintV []bool // indexed by target VertexHandle
	paintE []bool // indexed by target EdgeHandle

	// consumed, when non-nil, additionally excludes target vertices
	// already claimed by a previously yielded match (overlap=false).
	// The iterator owns and mutates this slice; the engine only reads it.
	consumed []bool

	// anchorHandle is the single target vertex bound for plan.StepAnchor,
	// set by resetForAnchor.
	anchorHandle molgraph.VertexHandle

	stack []frame
}

func newEngine(p, t molgraph.Graph, pl *plan.Plan, vertPT predicate.VertexTable, edgePT predicate.EdgeTable, logger logr.Logger) *engine {
	targetVerts := t.Vertices()

	maxV, maxE := -1, -1
	inc := make(map[molgraph.VertexHandle][]molgraph.IncidentEdge, len(targetVerts))
	for _, v := range targetVerts {
		if int(v) > maxV {
			maxV = int(v)
		}
		edges := t.EdgesOf(v)
		inc[v] = edges
		for _, ie := range edges {
			if int(ie.Edge) > maxE {
				maxE = int(ie.Edge)
			}
		}
	}

	return &engine{
		p:           p,
		t:           t,
		pl:          pl,
		vertPT:      vertPT,
		edgePT:      edgePT,
		logger:      logger,
		targetVerts: targetVerts,
		targetInc:   inc,
		vMap:        make([]molgraph.VertexHandle, pl.VertexCount),
		eMap:        make([]molgraph.EdgeHandle, pl.EdgeCount),
		paintV:      make([]bool, maxV+1),
		paintE:      make([]bool, maxE+1),
	}
}

// resetForAnchor clears the in-progress mapping and paint, and pushes a
// fresh frame for plan step 0 trying anchor t0. Paint is always cleared
// here: per-descent paint is purely transient, and overlap=false's
// cross-match exclusion is enforced separately through e.consumed, which
// this call does not touch.
func (e *engine) resetForAnchor(t0 molgraph.VertexHandle) {
	e.anchorHandle = t0
	for i := range e.vMap {
		e.vMap[i] = molgraph.InvalidVertex
	}
	for i := range e.eMap {
		e.eMap[i] = molgraph.InvalidEdge
	}
	for i := range e.paintV {
		e.paintV[i] = false
	}
	for i := range e.paintE {
		e.paintE[i] = false
	}
	e.stack = append(e.stack[:0], newFrame(0))
	e.logger.V(1).Info("anchor reset", "t0", t0)
}

func (e *engine) vertexUsable(tv molgraph.VertexHandle) bool {
	if e.paintV[tv] {
		return false
	}
	if e.consumed != nil && e.consumed[tv] {
		return false
	}

	return true
}

// advance performs backtracking search until the plan is fully satisfied
// (resultMatched — vMap/eMap are a complete mapping) or the engine's
// stack empties (resultExhausted — no more mappings from this anchor).
// Per spec §4.3, a resultMatched frame is left on the stack; the next
// call to advance pops it and resumes the search for alternatives.
func (e *engine) advance() (result, error) {
	for {
		if len(e.stack) == 0 {
			return resultExhausted, nil
		}

		top := &e.stack[len(e.stack)-1]
		if top.stepIdx >= len(e.pl.Steps) {
			e.popFrame()
			continue
		}

		ok, err := e.tryStep(top)
		if err != nil {
			return resultExhausted, err
		}
		if !ok {
			e.popFrame()
			continue
		}

		next := top.stepIdx + 1
		e.stack = append(e.stack, newFrame(next))
		if next >= len(e.pl.Steps) {
			return resultMatched, nil
		}
	}
}

// tryStep advances top.cand until it finds a candidate satisfying the
// step at top.stepIdx, paints and maps it, and returns true — or
// exhausts every candidate and returns false. It never mutates anything
// beyond top's own bookkeeping and the shared paint/map slices, so
// popFrame can cleanly undo exactly what a single call accepted.
func (e *engine) tryStep(top *frame) (bool, error) {
	// Release the candidate this frame accepted on an earlier call before
	// trying the next one, so a retried frame never leaves stale paint.
	if top.paintedTargetV != molgraph.InvalidVertex {
		e.paintV[top.paintedTargetV] = false
		e.vMap[top.pattV] = molgraph.InvalidVertex
		top.paintedTargetV = molgraph.InvalidVertex
	}
	if top.paintedTargetE != molgraph.InvalidEdge {
		e.paintE[top.paintedTargetE] = false
		e.eMap[top.pattE] = molgraph.InvalidEdge
		top.paintedTargetE = molgraph.InvalidEdge
	}

	step := e.pl.Steps[top.stepIdx]

	switch step.Kind {
	case plan.StepAnchor:
		return e.tryAnchor(top, step, e.anchorCandidate)

	case plan.StepUnanchoredAnchor:
		return e.tryAnchor(top, step, nil)

	case plan.StepEdge:
		return e.tryEdge(top, step)

	case plan.StepRingClose:
		return e.tryRingClose(top, step)

	default:
		return false, fmt.Errorf("match: engine: unknown step kind %v", step.Kind)
	}
}

// anchorCandidate returns the single target vertex bound for
// plan.StepAnchor by resetForAnchor. plan.StepUnanchoredAnchor instead
// ranges over every target vertex not already in use.
func (e *engine) anchorCandidate() molgraph.VertexHandle { return e.anchorHandle }

func (e *engine) tryAnchor(top *frame, step plan.Step, fixed func() molgraph.VertexHandle) (bool, error) {
	pred := e.vertPT.Lookup(step.Vertex)

	if fixed != nil {
		// plan.StepAnchor: exactly one candidate, the bound anchor.
		if top.cand > 0 {
			return false, nil
		}
		top.cand = 1
		tv := fixed()
		if !e.vertexUsable(tv) {
			return false, nil
		}
		ok, err := e.callVertexPred(pred, step.Vertex, tv)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		e.acceptVertex(top, step.Vertex, tv)

		return true, nil
	}

	// plan.StepUnanchoredAnchor: range over all target vertices.
	for i := top.cand; i < len(e.targetVerts); i++ {
		tv := e.targetVerts[i]
		top.cand = i + 1
		if !e.vertexUsable(tv) {
			continue
		}
		ok, err := e.callVertexPred(pred, step.Vertex, tv)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		e.acceptVertex(top, step.Vertex, tv)

		return true, nil
	}

	return false, nil
}

func (e *engine) tryEdge(top *frame, step plan.Step) (bool, error) {
	tFrom := e.vMap[step.From]
	incident := e.targetInc[tFrom]
	vpred := e.vertPT.Lookup(step.To)
	epred := e.edgePT.Lookup(step.Edge)

	for i := top.cand; i < len(incident); i++ {
		ie := incident[i]
		top.cand = i + 1
		if e.paintE[ie.Edge] {
			continue
		}
		if !e.vertexUsable(ie.Other) {
			continue
		}
		okE, err := e.callEdgePred(epred, step.Edge, ie.Edge)
		if err != nil {
			return false, err
		}
		if !okE {
			continue
		}
		okV, err := e.callVertexPred(vpred, step.To, ie.Other)
		if err != nil {
			return false, err
		}
		if !okV {
			continue
		}

		e.paintE[ie.Edge] = true
		e.paintV[ie.Other] = true
		e.eMap[step.Edge] = ie.Edge
		e.vMap[step.To] = ie.Other
		top.paintedTargetE = ie.Edge
		top.paintedTargetV = ie.Other
		top.pattE = step.Edge
		top.pattV = step.To

		return true, nil
	}

	return false, nil
}

func (e *engine) tryRingClose(top *frame, step plan.Step) (bool, error) {
	tA := e.vMap[step.From]
	tB := e.vMap[step.To]
	incident := e.targetInc[tA]
	epred := e.edgePT.Lookup(step.Edge)

	for i := top.cand; i < len(incident); i++ {
		ie := incident[i]
		top.cand = i + 1
		if ie.Other != tB {
			continue
		}
		if e.paintE[ie.Edge] {
			continue
		}
		ok, err := e.callEdgePred(epred, step.Edge, ie.Edge)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		e.paintE[ie.Edge] = true
		e.eMap[step.Edge] = ie.Edge
		top.paintedTargetE = ie.Edge
		top.pattE = step.Edge

		return true, nil
	}

	return false, nil
}

func (e *engine) acceptVertex(top *frame, pv molgraph.VertexHandle, tv molgraph.VertexHandle) {
	e.paintV[tv] = true
	e.vMap[pv] = tv
	top.paintedTargetV = tv
	top.pattV = pv
}

// popFrame undoes exactly what the top frame painted/mapped, then
// removes it from the stack.
func (e *engine) popFrame() {
	n := len(e.stack)
	f := e.stack[n-1]
	if f.paintedTargetV != molgraph.InvalidVertex {
		e.paintV[f.paintedTargetV] = false
		e.vMap[f.pattV] = molgraph.InvalidVertex
	}
	if f.paintedTargetE != molgraph.InvalidEdge {
		e.paintE[f.paintedTargetE] = false
		e.eMap[f.pattE] = molgraph.InvalidEdge
	}
	e.stack = e.stack[:n-1]
}

func (e *engine) callVertexPred(pred predicate.VertexPredicate, pv, tv molgraph.VertexHandle) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vertex predicate panicked: %v", r)
		}
	}()
	ok = pred(e.p, pv, e.t, tv)

	return
}

func (e *engine) callEdgePred(pred predicate.EdgePredicate, pe, te molgraph.EdgeHandle) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("edge predicate panicked: %v", r)
		}
	}()
	ok = pred(e.p, pe, e.t, te)

	return
}
