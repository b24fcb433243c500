// Package fixture is test-only tooling: a minimal organic-subset SMILES
// parser that builds molgraph.Graph values, and a reader for the
// scenario file format — pattern string, options string, target string,
// one expected match per line, terminated by an empty-list sentinel
// "()" — so the concrete scenarios a matcher must satisfy can be
// expressed as data instead of Go literals.
//
// Neither piece is imported by molgraph, predicate, plan, or match:
// fixture depends on them, never the reverse, the same direction the
// teacher's builder package depends on core/dfs/dijkstra without ever
// being imported back.
package fixture
