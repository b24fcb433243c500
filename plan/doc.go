// Package plan implements the flattener (spec §4.2): it turns a pattern
// molgraph.Graph into a linear DFS plan, an ordered sequence of Steps the
// match engine walks iteratively. Flattening once, rather than recursing
// over the pattern at match time, is what makes the engine resumable —
// the plan's position is just an index the engine's exploration stack can
// save and restore (spec §4.3).
//
// Flatten chooses a canonical starting vertex (the pattern's first vertex
// by insertion/handle order), DFS-walks the pattern, emits Edge steps
// before descending into a newly discovered vertex, emits RingClose steps
// on revisiting an already-discovered vertex, and emits an
// UnanchoredAnchor step to resume DFS from the next unvisited vertex when
// the pattern is disconnected.
//
// Invariants (validated by Plan.validate, run once inside Flatten):
//   - pattern vertices appear in DFS pre-order;
//   - every pattern edge appears exactly once, as Edge or RingClose;
//   - every Edge's from_end and every RingClose's two ends were already
//     mapped earlier in the plan.
package plan
