// Package submatch is a deterministic, resumable subgraph-isomorphism
// matcher for labeled graphs — atoms carrying element labels, bonds
// carrying bond-order labels — with tunable duplicate-suppression
// policy and pluggable per-vertex/per-edge predicates.
//
// 🔍 What is submatch?
//
//	A small, dependency-light engine that answers "does this pattern
//	occur in this target, and where" one match at a time:
//
//	  • molgraph  — arena-backed, handle-addressed graph model
//	  • predicate — pluggable vertex/edge acceptance rules
//	  • plan      — flattens a pattern into a linear DFS plan once
//	  • match     — the backtracking engine and dedup/iterator layer
//
// The core never mutates its input graphs, never recurses to completion
// in one call, and never allocates per candidate — all in-progress state
// lives in a handle-indexed stack of frames owned by a *match.Matcher.
//
// Quick usage:
//
//	pattern := molgraph.NewGraph()
//	_, _ = pattern.AddAtom("p1", "C")
//	_, _ = pattern.AddAtom("p2", "O")
//	_, _ = pattern.AddBond("p1", "p2", "=")
//
//	m, err := match.New(pattern)
//	if err != nil { ... }
//	if err := m.Bind(target); err != nil { ... }
//	for {
//		mt, err := m.Next()
//		if err != nil { ... }
//		if mt == nil { break } // exhausted
//		// use mt.VertexMap / mt.EdgeMap
//	}
//
// The fixture package (test-only) builds graphs from an organic-subset
// SMILES notation instead of calling AddAtom/AddBond directly, for
// readability in tests.
package submatch
