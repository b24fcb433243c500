// Package predicate defines the per-vertex and per-edge label predicates
// the submatch matcher consults while walking a DFS plan (spec §4.1).
//
// A predicate is a pure function of (pattern side, target side) — always
// called in that order, never reversed (spec §9 Open Question). When a
// pattern vertex or edge carries no caller-supplied predicate, the
// matcher falls back to DefaultVertexPredicate / DefaultEdgePredicate,
// which compare element / bond-order labels for equality.
package predicate
