package supersearch

import (
	"github.com/katalvlaran/voxellath/condense"
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/frontier"
	"github.com/katalvlaran/voxellath/graph"
	"github.com/katalvlaran/voxellath/search"
)

// superItem is one super-frontier entry.
type superItem struct {
	super    int
	priority int
}

func newSuperFrontier(d search.Discipline, priority func(int) int) frontier.Frontier[superItem] {
	switch d {
	case search.DisciplineStack:
		return frontier.NewStack[superItem]()
	case search.DisciplineQueue:
		return frontier.NewQueue[superItem]()
	case search.DisciplineMaxHeap:
		return frontier.NewMaxHeap(func(a, b superItem) bool { return a.priority < b.priority })
	default:
		return frontier.NewMinHeap(func(a, b superItem) bool { return a.priority < b.priority })
	}
}

// superPriority builds the priority function for a candidate super-arc,
// keyed on the coordinate of its entry node rather than a super-node
// centroid (spec.md §4.5).
func superPriority(h search.Heuristic, sourceCoord, targetCoord, farEndpoint coordinate.Coordinate, g *graph.Graph) func(entryNode int) int {
	switch h {
	case search.HeuristicGreedy:
		return func(entryNode int) int {
			return g.Nodes[entryNode].Coordinate.Manhattan(farEndpoint)
		}
	case search.HeuristicAStar:
		return func(entryNode int) int {
			c := g.Nodes[entryNode].Coordinate
			return sourceCoord.Manhattan(c) + c.Manhattan(targetCoord)
		}
	default:
		return func(int) int { return 0 }
	}
}

// runForward walks Out super-arcs from sourceSuper toward targetSuper.
// Per-super bookkeeping mirrors original_source's super_bfs: predecessor,
// the exit node local to the predecessor, the entry node local to the
// arrived-at super, and the move character, all harvested lazily as the
// frontier expands. Materialization runs the recorded chain back to
// sourceSuper once targetSuper is popped, calling subMode across each
// traversed super-node in turn.
func runForward(g *graph.Graph, sg *condense.SuperGraph, source, target, sourceSuper, targetSuper int, disc search.Discipline, priority func(int) int, subMode search.Mode) ([]coordinate.Move, error) {
	n := len(sg.Supers)
	touched := make([]bool, n)
	last := make([]int, n)
	exitIdx := make([]int, n)
	entryIdx := make([]int, n)
	move := make([]coordinate.Move, n)
	fr := newSuperFrontier(disc, priority)

	seed := func(from int) {
		for _, arc := range sg.Supers[from].Out {
			if touched[arc.To] {
				continue
			}
			touched[arc.To] = true
			last[arc.To] = from
			exitIdx[arc.To] = arc.Exit
			entryIdx[arc.To] = arc.Link.To
			move[arc.To] = arc.Link.Move
			fr.Push(superItem{super: arc.To, priority: priority(arc.Link.To)})
		}
	}
	touched[sourceSuper] = true
	seed(sourceSuper)

	for {
		item, ok := fr.Pop()
		if !ok {
			return nil, &search.ErrUntraversable{Source: g.Nodes[source].Coordinate, Target: g.Nodes[target].Coordinate}
		}
		if item.super == targetSuper {
			entryIdx[sourceSuper] = source
			route, err := search.Search(g, search.Plan{
				Source: g.Nodes[entryIdx[item.super]].Coordinate,
				Target: g.Nodes[target].Coordinate,
			}, subMode)
			if err != nil {
				return nil, err
			}
			cur := item.super
			for cur != sourceSuper {
				tempExit := exitIdx[cur]
				route = append([]coordinate.Move{move[cur]}, route...)
				cur = last[cur]
				leg, err := search.Search(g, search.Plan{
					Source: g.Nodes[entryIdx[cur]].Coordinate,
					Target: g.Nodes[tempExit].Coordinate,
				}, subMode)
				if err != nil {
					return nil, err
				}
				route = append(leg, route...)
			}
			return route, nil
		}
		seed(item.super)
	}
}

// runReverse walks In super-arcs from targetSuper outward toward
// sourceSuper, the mirror of runForward (original_source's super_rbfs).
func runReverse(g *graph.Graph, sg *condense.SuperGraph, source, target, sourceSuper, targetSuper int, disc search.Discipline, priority func(int) int, subMode search.Mode) ([]coordinate.Move, error) {
	n := len(sg.Supers)
	touched := make([]bool, n)
	last := make([]int, n)
	exitIdx := make([]int, n)
	entryIdx := make([]int, n)
	move := make([]coordinate.Move, n)
	fr := newSuperFrontier(disc, priority)

	seed := func(from int) {
		for _, arc := range sg.Supers[from].In {
			if touched[arc.To] {
				continue
			}
			touched[arc.To] = true
			last[arc.To] = from
			entryIdx[arc.To] = arc.Exit
			exitIdx[arc.To] = arc.Link.To
			move[arc.To] = arc.Link.Move
			fr.Push(superItem{super: arc.To, priority: priority(arc.Link.To)})
		}
	}
	touched[targetSuper] = true
	seed(targetSuper)

	for {
		item, ok := fr.Pop()
		if !ok {
			return nil, &search.ErrUntraversable{Source: g.Nodes[source].Coordinate, Target: g.Nodes[target].Coordinate}
		}
		if item.super == sourceSuper {
			exitIdx[targetSuper] = target
			route, err := search.Search(g, search.Plan{
				Source: g.Nodes[source].Coordinate,
				Target: g.Nodes[exitIdx[item.super]].Coordinate,
			}, subMode)
			if err != nil {
				return nil, err
			}
			cur := item.super
			for cur != targetSuper {
				tempEntry := entryIdx[cur]
				route = append(route, move[cur])
				cur = last[cur]
				leg, err := search.Search(g, search.Plan{
					Source: g.Nodes[tempEntry].Coordinate,
					Target: g.Nodes[exitIdx[cur]].Coordinate,
				}, subMode)
				if err != nil {
					return nil, err
				}
				route = append(route, leg...)
			}
			return route, nil
		}
		seed(item.super)
	}
}

// runBidirectional alternates one pop per side between a forward walk
// rooted at sourceSuper and a reverse walk rooted at targetSuper.
//
// On meeting, it runs exactly one sub-search call across the meeting
// super-node itself, using the forward side's recorded entry and the
// reverse side's recorded exit. The prefix/suffix reconstructions are
// no-ops when the meeting super-node is sourceSuper or targetSuper
// itself, so that case needs no special branch -- this resolves the
// endpoint-meets-its-own-super-node case spec.md §9 flags as a defect
// in the original bidirectional routines.
func runBidirectional(g *graph.Graph, sg *condense.SuperGraph, source, target, sourceSuper, targetSuper int, disc search.Discipline, fwdPriority, revPriority func(int) int, subMode search.Mode) ([]coordinate.Move, error) {
	n := len(sg.Supers)
	touchedF := make([]bool, n)
	lastF := make([]int, n)
	exitF := make([]int, n)
	entryF := make([]int, n)
	moveF := make([]coordinate.Move, n)
	touchedB := make([]bool, n)
	lastB := make([]int, n)
	exitB := make([]int, n)
	entryB := make([]int, n)
	moveB := make([]coordinate.Move, n)

	entryF[sourceSuper] = source
	exitB[targetSuper] = target
	touchedF[sourceSuper] = true
	touchedB[targetSuper] = true

	frF := newSuperFrontier(disc, fwdPriority)
	frB := newSuperFrontier(disc, revPriority)

	seedF := func(from int) {
		for _, arc := range sg.Supers[from].Out {
			if touchedF[arc.To] {
				continue
			}
			touchedF[arc.To] = true
			lastF[arc.To] = from
			exitF[arc.To] = arc.Exit
			entryF[arc.To] = arc.Link.To
			moveF[arc.To] = arc.Link.Move
			frF.Push(superItem{super: arc.To, priority: fwdPriority(arc.Link.To)})
		}
	}
	seedB := func(from int) {
		for _, arc := range sg.Supers[from].In {
			if touchedB[arc.To] {
				continue
			}
			touchedB[arc.To] = true
			lastB[arc.To] = from
			entryB[arc.To] = arc.Exit
			exitB[arc.To] = arc.Link.To
			moveB[arc.To] = arc.Link.Move
			frB.Push(superItem{super: arc.To, priority: revPriority(arc.Link.To)})
		}
	}
	seedF(sourceSuper)
	seedB(targetSuper)

	prefixTo := func(meet int) ([]coordinate.Move, error) {
		var route []coordinate.Move
		cur := meet
		for cur != sourceSuper {
			tempExit := exitF[cur]
			route = append([]coordinate.Move{moveF[cur]}, route...)
			cur = lastF[cur]
			leg, err := search.Search(g, search.Plan{
				Source: g.Nodes[entryF[cur]].Coordinate,
				Target: g.Nodes[tempExit].Coordinate,
			}, subMode)
			if err != nil {
				return nil, err
			}
			route = append(leg, route...)
		}
		return route, nil
	}
	suffixFrom := func(meet int) ([]coordinate.Move, error) {
		var route []coordinate.Move
		cur := meet
		for cur != targetSuper {
			tempEntry := entryB[cur]
			route = append(route, moveB[cur])
			cur = lastB[cur]
			leg, err := search.Search(g, search.Plan{
				Source: g.Nodes[tempEntry].Coordinate,
				Target: g.Nodes[exitB[cur]].Coordinate,
			}, subMode)
			if err != nil {
				return nil, err
			}
			route = append(route, leg...)
		}
		return route, nil
	}
	stitch := func(meet int) ([]coordinate.Move, error) {
		prefix, err := prefixTo(meet)
		if err != nil {
			return nil, err
		}
		mid, err := search.Search(g, search.Plan{
			Source: g.Nodes[entryF[meet]].Coordinate,
			Target: g.Nodes[exitB[meet]].Coordinate,
		}, subMode)
		if err != nil {
			return nil, err
		}
		suffix, err := suffixFrom(meet)
		if err != nil {
			return nil, err
		}
		route := append(prefix, mid...)
		return append(route, suffix...), nil
	}

	for {
		fItem, fOk := frF.Pop()
		if fOk {
			if touchedB[fItem.super] {
				return stitch(fItem.super)
			}
			seedF(fItem.super)
		}
		bItem, bOk := frB.Pop()
		if bOk {
			if touchedF[bItem.super] {
				return stitch(bItem.super)
			}
			seedB(bItem.super)
		}
		if !fOk && !bOk {
			return nil, &search.ErrUntraversable{Source: g.Nodes[source].Coordinate, Target: g.Nodes[target].Coordinate}
		}
	}
}
