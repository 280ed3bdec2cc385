package search

import (
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/graph"
)

// Search finds a route from plan.Source to plan.Target in g under mode,
// returning the moves in source-to-target order.
func Search(g *graph.Graph, plan Plan, mode Mode) ([]coordinate.Move, error) {
	source, ok := g.NodeAt(plan.Source)
	if !ok {
		return nil, &graph.ErrInvalidSource{Coordinate: plan.Source}
	}
	target, ok := g.NodeAt(plan.Target)
	if !ok {
		return nil, &graph.ErrInvalidTarget{Coordinate: plan.Target}
	}
	if source == target {
		return []coordinate.Move{}, nil
	}

	c, ok := dispatch[mode]
	if !ok {
		return nil, &ErrInvalidSearchMode{Value: mode}
	}
	if c.jps {
		return nil, ErrUnfinishedAlgorithm
	}

	var route []coordinate.Move
	var found bool
	switch c.direction {
	case forward:
		priority := priorityFunc(c.heuristic, g, plan.Source, plan.Target, plan.Target)
		route, found = runDirectional(g.Nodes, source, target, forward, c.discipline, priority)
	case reverse:
		priority := priorityFunc(c.heuristic, g, plan.Source, plan.Target, plan.Source)
		route, found = runDirectional(g.Nodes, target, source, reverse, c.discipline, priority)
	default:
		fwdPriority := priorityFunc(c.heuristic, g, plan.Source, plan.Target, plan.Target)
		revPriority := priorityFunc(c.heuristic, g, plan.Source, plan.Target, plan.Source)
		route, found = runBidirectional(g.Nodes, source, target, c.discipline, fwdPriority, revPriority)
	}
	if !found {
		return nil, &ErrUntraversable{Source: plan.Source, Target: plan.Target}
	}
	return route, nil
}
