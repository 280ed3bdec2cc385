package condense

import "github.com/katalvlaran/voxellath/graph"

// SuperArc is one directed edge between super-nodes. Exit names the
// member node on this side of the crossing (the node leaving its
// super-node for an Out arc, or the node receiving traffic for an In
// arc); Link is the underlying graph arc, whose To/Move name the node
// and move on the far side.
type SuperArc struct {
	To   int
	Exit int
	Link graph.Arc
}

// SuperNode is one strongly connected component: its member node arena
// indices, plus the super-arcs crossing its boundary.
type SuperNode struct {
	Members []int
	Out, In []SuperArc
}

// SuperGraph is the condensation DAG of a Graph.
type SuperGraph struct {
	Supers []SuperNode
}
