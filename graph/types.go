package graph

import "github.com/katalvlaran/voxellath/coordinate"

// Arc is one directed edge, naming the neighbor's arena index and the
// move that traverses it.
type Arc struct {
	To   int
	Move coordinate.Move
}

// Node is one standable voxel. Out holds arcs leaving the node; In holds
// arcs arriving at it, each carrying the move that would traverse it
// forward (the move is not inverted, so reverse search can replay it).
// Super is the arena index of the SuperNode this node condenses into; it
// is -1 until condense.Build runs.
type Node struct {
	Coordinate coordinate.Coordinate
	Out        []Arc
	In         []Arc
	Super      int
}

// Graph is the directed motion graph lifted from one schematic.
type Graph struct {
	Nodes []Node
	index map[coordinate.Coordinate]int
}

// NodeAt returns the arena index of the node standing at c, if any.
func (g *Graph) NodeAt(c coordinate.Coordinate) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}
