package search

// direction selects which side of a node's arc list a walk follows.
type direction int

const (
	forward direction = iota
	reverse
	bidirectional
)

// discipline selects the frontier's pop order.
type discipline int

const (
	disciplineStack discipline = iota
	disciplineQueue
	disciplineMinHeap
	disciplineMaxHeap
)

// heuristicKind selects how a frontier entry's priority is computed.
// Stack and queue disciplines ignore it.
type heuristicKind int

const (
	heuristicNone heuristicKind = iota
	heuristicGreedy
	heuristicAStar
)

// config is one dispatch-table entry: the direction/discipline/heuristic
// triple a Mode expands to, or jps for the three placeholder entries.
type config struct {
	direction  direction
	discipline discipline
	heuristic  heuristicKind
	jps        bool
}

func cfg(d direction, f discipline, h heuristicKind) config {
	return config{direction: d, discipline: f, heuristic: h}
}

var dispatch = map[Mode]config{
	DFS:              cfg(forward, disciplineStack, heuristicNone),
	ReverseDFS:       cfg(reverse, disciplineStack, heuristicNone),
	BidirectionalDFS: cfg(bidirectional, disciplineStack, heuristicNone),

	BFS:              cfg(forward, disciplineQueue, heuristicNone),
	ReverseBFS:       cfg(reverse, disciplineQueue, heuristicNone),
	BidirectionalBFS: cfg(bidirectional, disciplineQueue, heuristicNone),

	GBFS:              cfg(forward, disciplineMinHeap, heuristicGreedy),
	ReverseGBFS:       cfg(reverse, disciplineMinHeap, heuristicGreedy),
	BidirectionalGBFS: cfg(bidirectional, disciplineMinHeap, heuristicGreedy),

	AStar:              cfg(forward, disciplineMinHeap, heuristicAStar),
	ReverseAStar:       cfg(reverse, disciplineMinHeap, heuristicAStar),
	BidirectionalAStar: cfg(bidirectional, disciplineMinHeap, heuristicAStar),

	NegativeGBFS:              cfg(forward, disciplineMaxHeap, heuristicGreedy),
	ReverseNegativeGBFS:       cfg(reverse, disciplineMaxHeap, heuristicGreedy),
	BidirectionalNegativeGBFS: cfg(bidirectional, disciplineMaxHeap, heuristicGreedy),

	NegativeAStar:              cfg(forward, disciplineMaxHeap, heuristicAStar),
	ReverseNegativeAStar:       cfg(reverse, disciplineMaxHeap, heuristicAStar),
	BidirectionalNegativeAStar: cfg(bidirectional, disciplineMaxHeap, heuristicAStar),

	JPS:              {jps: true},
	ReverseJPS:        {jps: true},
	BidirectionalJPS: {jps: true},
}
