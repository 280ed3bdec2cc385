package search

import (
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/frontier"
	"github.com/katalvlaran/voxellath/graph"
)

// qItem is one frontier entry: a node's arena index plus the priority a
// heap discipline orders it by. Stack and queue disciplines ignore
// priority.
type qItem struct {
	node     int
	priority int
}

func newFrontier(d discipline, priority func(int) int) frontier.Frontier[qItem] {
	switch d {
	case disciplineStack:
		return frontier.NewStack[qItem]()
	case disciplineQueue:
		return frontier.NewQueue[qItem]()
	case disciplineMaxHeap:
		return frontier.NewMaxHeap(func(a, b qItem) bool { return a.priority < b.priority })
	default:
		return frontier.NewMinHeap(func(a, b qItem) bool { return a.priority < b.priority })
	}
}

// priorityFunc builds the per-node priority used to seed frontier
// entries. farEndpoint is the coordinate a greedy walk steers toward
// (the opposite endpoint in the direction of travel); A* always uses the
// literal source/target regardless of direction, per spec.md §4.4.
func priorityFunc(h heuristicKind, g *graph.Graph, sourceCoord, targetCoord, farEndpoint coordinate.Coordinate) func(int) int {
	switch h {
	case heuristicGreedy:
		return func(node int) int {
			return g.Nodes[node].Coordinate.Manhattan(farEndpoint)
		}
	case heuristicAStar:
		return func(node int) int {
			c := g.Nodes[node].Coordinate
			return sourceCoord.Manhattan(c) + c.Manhattan(targetCoord)
		}
	default:
		return func(int) int { return 0 }
	}
}

// arcsOf returns the arc list a walk in direction dir follows out of
// node idx: outgoing arcs going forward, incoming arcs going reverse.
func arcsOf(nodes []graph.Node, idx int, dir direction) []graph.Arc {
	if dir == reverse {
		return nodes[idx].In
	}
	return nodes[idx].Out
}

// expand pushes every unvisited neighbor of from onto fr, recording its
// predecessor and the move that reached it.
func expand(nodes []graph.Node, from int, dir direction, visited []bool, pred []int, move []coordinate.Move, fr frontier.Frontier[qItem], priority func(int) int) {
	for _, arc := range arcsOf(nodes, from, dir) {
		if !visited[arc.To] {
			visited[arc.To] = true
			pred[arc.To] = from
			move[arc.To] = arc.Move
			fr.Push(qItem{node: arc.To, priority: priority(arc.To)})
		}
	}
}

// reconstruct walks the predecessor chain from goal back to start,
// collecting the move that entered each node. A forward walk collects
// moves in target-to-source order and must be reversed to read
// source-to-target; a reverse walk's collection order is already
// correct (spec.md §4.4).
func reconstruct(pred []int, move []coordinate.Move, start, goal int, dir direction) []coordinate.Move {
	moves := make([]coordinate.Move, 0)
	for cur := goal; cur != start; cur = pred[cur] {
		moves = append(moves, move[cur])
	}
	if dir == forward {
		for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
			moves[i], moves[j] = moves[j], moves[i]
		}
	}
	return moves
}

// runDirectional walks from seed toward goal following dir, returning
// the route and true on success, or false once the frontier is
// exhausted without reaching goal.
func runDirectional(nodes []graph.Node, seed, goal int, dir direction, disc discipline, priority func(int) int) ([]coordinate.Move, bool) {
	n := len(nodes)
	visited := make([]bool, n)
	pred := make([]int, n)
	move := make([]coordinate.Move, n)

	visited[seed] = true
	fr := newFrontier(disc, priority)
	expand(nodes, seed, dir, visited, pred, move, fr, priority)

	for {
		item, ok := fr.Pop()
		if !ok {
			return nil, false
		}
		if item.node == goal {
			return reconstruct(pred, move, seed, goal, dir), true
		}
		expand(nodes, item.node, dir, visited, pred, move, fr, priority)
	}
}

// runBidirectional alternates one pop per side between a forward walk
// rooted at source and a reverse walk rooted at target, stitching a
// route together the first time either side's pop lands on a node the
// other side has already visited.
func runBidirectional(nodes []graph.Node, source, target int, disc discipline, fwdPriority, revPriority func(int) int) ([]coordinate.Move, bool) {
	n := len(nodes)
	fwdVisited := make([]bool, n)
	fwdPred := make([]int, n)
	fwdMove := make([]coordinate.Move, n)
	revVisited := make([]bool, n)
	revPred := make([]int, n)
	revMove := make([]coordinate.Move, n)

	fwdVisited[source] = true
	revVisited[target] = true
	fwdFrontier := newFrontier(disc, fwdPriority)
	revFrontier := newFrontier(disc, revPriority)
	expand(nodes, source, forward, fwdVisited, fwdPred, fwdMove, fwdFrontier, fwdPriority)
	expand(nodes, target, reverse, revVisited, revPred, revMove, revFrontier, revPriority)

	stitch := func(meet int) []coordinate.Move {
		prefix := reconstruct(fwdPred, fwdMove, source, meet, forward)
		suffix := reconstruct(revPred, revMove, target, meet, reverse)
		return append(prefix, suffix...)
	}

	for {
		fItem, fOk := fwdFrontier.Pop()
		if fOk {
			if revVisited[fItem.node] {
				return stitch(fItem.node), true
			}
			expand(nodes, fItem.node, forward, fwdVisited, fwdPred, fwdMove, fwdFrontier, fwdPriority)
		}
		rItem, rOk := revFrontier.Pop()
		if rOk {
			if fwdVisited[rItem.node] {
				return stitch(rItem.node), true
			}
			expand(nodes, rItem.node, reverse, revVisited, revPred, revMove, revFrontier, revPriority)
		}
		if !fOk && !rOk {
			return nil, false
		}
	}
}
