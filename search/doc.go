// Package search implements the node-level route search family: one
// generic traversal skeleton parameterized by direction
// (forward/reverse/bidirectional), frontier discipline
// (stack/queue/min-heap/max-heap), and heuristic (none/greedy/A*),
// dispatched through a twenty-one-entry Mode table (eighteen real
// algorithms plus three JPS placeholders).
//
// Every algorithm shares the same per-query bookkeeping: a visited flag,
// a predecessor index, and an entering move, one array of each sized to
// the graph's node count and discarded when Search returns.
package search
