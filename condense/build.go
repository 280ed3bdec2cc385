package condense

import "github.com/katalvlaran/voxellath/graph"

// tarjanWalker encapsulates state during Tarjan's algorithm, mirroring
// the walker-struct shape used throughout this codebase's traversals.
type tarjanWalker struct {
	graph      *graph.Graph
	index      []int
	lowLink    []int
	onStack    []bool
	visited    []bool
	stack      []int
	time       int
	components [][]int
}

// Build condenses g into its strongly-connected-component DAG and sets
// Super on every one of g's nodes to its component's index.
func Build(g *graph.Graph) *SuperGraph {
	w := &tarjanWalker{
		graph:   g,
		index:   make([]int, len(g.Nodes)),
		lowLink: make([]int, len(g.Nodes)),
		onStack: make([]bool, len(g.Nodes)),
		visited: make([]bool, len(g.Nodes)),
	}
	for i := range g.Nodes {
		if !w.visited[i] {
			w.strongconnect(i)
		}
	}

	sg := &SuperGraph{Supers: make([]SuperNode, len(w.components))}
	for superIdx, members := range w.components {
		sg.Supers[superIdx].Members = members
		for _, nodeIdx := range members {
			g.Nodes[nodeIdx].Super = superIdx
		}
	}

	for superIdx := range sg.Supers {
		for _, nodeIdx := range sg.Supers[superIdx].Members {
			node := &g.Nodes[nodeIdx]
			for _, arc := range node.Out {
				if g.Nodes[arc.To].Super != superIdx {
					sg.Supers[superIdx].Out = append(sg.Supers[superIdx].Out, SuperArc{
						To: g.Nodes[arc.To].Super, Exit: nodeIdx, Link: arc,
					})
				}
			}
			for _, arc := range node.In {
				if g.Nodes[arc.To].Super != superIdx {
					sg.Supers[superIdx].In = append(sg.Supers[superIdx].In, SuperArc{
						To: g.Nodes[arc.To].Super, Exit: nodeIdx, Link: arc,
					})
				}
			}
		}
	}

	return sg
}

// callFrame is one emulated strongconnect(u) activation: u itself plus
// the index of the next Out arc still to be examined. frames replaces
// the call stack a recursive strongconnect would use, so a voxel world
// deep enough to overflow Go's goroutine stack still condenses cleanly.
type callFrame struct {
	node   int
	arcIdx int
}

// strongconnect runs Tarjan's algorithm over u's reachable successors
// with an explicit frame stack in place of recursion, popping a fresh
// component whenever a frame's node turns out to be a component root
// (lowLink == index).
func (w *tarjanWalker) strongconnect(u int) {
	w.index[u] = w.time
	w.lowLink[u] = w.time
	w.time++
	w.visited[u] = true
	w.stack = append(w.stack, u)
	w.onStack[u] = true

	frames := []callFrame{{node: u}}
	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		cur := top.node

		if top.arcIdx < len(w.graph.Nodes[cur].Out) {
			arc := w.graph.Nodes[cur].Out[top.arcIdx]
			top.arcIdx++
			v := arc.To
			switch {
			case !w.visited[v]:
				w.index[v] = w.time
				w.lowLink[v] = w.time
				w.time++
				w.visited[v] = true
				w.stack = append(w.stack, v)
				w.onStack[v] = true
				frames = append(frames, callFrame{node: v})
			case w.onStack[v]:
				w.lowLink[cur] = min(w.lowLink[cur], w.index[v])
			}
			continue
		}

		frames = frames[:len(frames)-1]
		if w.lowLink[cur] == w.index[cur] {
			var component []int
			for {
				n := len(w.stack) - 1
				v := w.stack[n]
				w.stack = w.stack[:n]
				w.onStack[v] = false
				component = append(component, v)
				if v == cur {
					break
				}
			}
			w.components = append(w.components, component)
		}
		if len(frames) > 0 {
			parent := frames[len(frames)-1].node
			w.lowLink[parent] = min(w.lowLink[parent], w.lowLink[cur])
		}
	}
}
