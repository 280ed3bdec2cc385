// Package condense collapses a graph.Graph into the DAG of its strongly
// connected components via Tarjan's algorithm, and builds a super-arc
// index over the inter-component edges so search can route at the
// component level without re-walking every internal node.
//
// Complexity:
//
//   - Time:   O(V + E) for the Tarjan pass, plus O(E) to build super-arcs.
//   - Memory: O(V) for the index/lowLink/onStack slices and the DFS stack.
package condense
