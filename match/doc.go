// Package match implements the search engine and iterator layer (spec
// §4.3, §4.4): given a flattened plan.Plan and a bound target
// molgraph.Graph, it backtracks over candidate vertex/edge assignments
// and yields one subgraph isomorphism at a time through Matcher.Next.
//
// The engine (engine.go) is a stack of frames, one per plan step
// in progress; each frame remembers which candidate index to resume
// from and exactly what it painted, so backtracking never rescans work
// already done and always undoes precisely what it did. The iterator
// (iterator.go) sits above the engine: it sequences which target vertex
// is tried as the next anchor, and suppresses matches already yielded
// under the permute option's notion of equality, and — when overlap is
// false — additionally excludes target vertices already claimed by a
// previous match.
//
// Matcher (matcher.go) is the package's only exported entry point:
// New builds one from a pattern, Bind attaches it to a target, and
// repeated Next calls walk the match stream to exhaustion.
package match
