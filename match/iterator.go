package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/submatch/molgraph"
)

// iterator implements the duplicate-suppression and anchor-sequencing
// layer of spec §4.4, sitting on top of engine's raw advance() calls.
// It owns two pieces of state the engine does not: which target vertex
// to try as the next anchor (a FIFO cursor over targetVerts, spec's
// "anchor queue"), and which (overlap=false) target vertices have
// already been claimed by a yielded match.
type iterator struct {
	eng *engine

	overlap bool
	permute bool

	nextAnchorIdx int
	hasActive     bool

	consumed []bool // only populated/consulted when overlap == false
	yielded  map[string]struct{}
}

func newIterator(eng *engine, overlap, permute bool) *iterator {
	it := &iterator{
		eng:     eng,
		overlap: overlap,
		permute: permute,
		yielded: make(map[string]struct{}),
	}
	if !overlap {
		// consumed is indexed by target VertexHandle, so it must be sized
		// like paintV, not like targetVerts (handles need not be dense
		// here if a caller's Graph implementation ever diverges).
		it.consumed = make([]bool, len(eng.paintV))
		eng.consumed = it.consumed
	}

	return it
}

// next drives the engine forward until it produces a genuinely new
// match (by the permute-sensitive key) or the anchor queue is
// exhausted, in which case it returns (nil, false).
func (it *iterator) next() (*Match, bool, error) {
	for {
		if !it.hasActive {
			if !it.advanceAnchor() {
				return nil, false, nil
			}
		}

		res, err := it.eng.advance()
		if err != nil {
			return nil, false, err
		}
		if res == resultExhausted {
			it.hasActive = false
			continue
		}

		key := it.matchKey()
		if _, dup := it.yielded[key]; dup {
			continue
		}
		it.yielded[key] = struct{}{}

		m := it.snapshot()
		if !it.overlap {
			for _, tv := range m.VertexMap {
				it.consumed[tv] = true
			}
			// Per spec §4.4: after yielding, abandon this anchor's
			// remaining alternatives entirely and move on.
			it.hasActive = false
		}

		return m, true, nil
	}
}

func (it *iterator) advanceAnchor() bool {
	for it.nextAnchorIdx < len(it.eng.targetVerts) {
		tv := it.eng.targetVerts[it.nextAnchorIdx]
		it.nextAnchorIdx++
		if !it.overlap && it.consumed[tv] {
			continue
		}
		it.eng.resetForAnchor(tv)
		it.hasActive = true

		return true
	}

	return false
}

func (it *iterator) snapshot() *Match {
	vm := make([]molgraph.VertexHandle, len(it.eng.vMap))
	copy(vm, it.eng.vMap)
	em := make([]molgraph.EdgeHandle, len(it.eng.eMap))
	copy(em, it.eng.eMap)

	return &Match{VertexMap: vm, EdgeMap: em}
}

// matchKey canonicalizes the current vMap ∪ eMap into a dedup key (spec
// §4.4): the ordered tuple of target identities, v_map followed by
// e_map, in pattern insertion order when permute is true; the same
// tuple sorted when permute is false, so distinct pattern-to-target
// orderings covering the same target vertices/edges collapse to one
// key. Vertex and edge handles are kept in separate segments — sorting
// the two halves independently, rather than as one merged sequence —
// since a VertexHandle and an EdgeHandle with the same integer value
// are not the same target identity.
func (it *iterator) matchKey() string {
	vVals := make([]int, len(it.eng.vMap))
	for i, v := range it.eng.vMap {
		vVals[i] = int(v)
	}
	eVals := make([]int, len(it.eng.eMap))
	for i, e := range it.eng.eMap {
		eVals[i] = int(e)
	}
	if !it.permute {
		sort.Ints(vVals)
		sort.Ints(eVals)
	}

	var b strings.Builder
	for i, v := range vVals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('v')
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(';')
	for i, e := range eVals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(e))
	}

	return b.String()
}
