package supersearch

import (
	"github.com/katalvlaran/voxellath/condense"
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/graph"
	"github.com/katalvlaran/voxellath/search"
)

// Search finds a route from plan.Source to plan.Target by walking the
// condensed super-graph under superMode, materializing each crossed
// super-node's segment with subMode. When source and target share a
// super-node, it calls search.Search directly (spec.md §4.5).
func Search(g *graph.Graph, sg *condense.SuperGraph, plan search.Plan, superMode, subMode search.Mode) ([]coordinate.Move, error) {
	source, ok := g.NodeAt(plan.Source)
	if !ok {
		return nil, &graph.ErrInvalidSource{Coordinate: plan.Source}
	}
	target, ok := g.NodeAt(plan.Target)
	if !ok {
		return nil, &graph.ErrInvalidTarget{Coordinate: plan.Target}
	}

	subCfg, ok := search.ConfigFor(subMode)
	if !ok {
		return nil, &search.ErrInvalidSearchMode{Value: subMode}
	}
	if subCfg.JPS {
		return nil, search.ErrUnfinishedAlgorithm
	}

	sourceSuper := g.Nodes[source].Super
	targetSuper := g.Nodes[target].Super
	if sourceSuper == targetSuper {
		return search.Search(g, plan, subMode)
	}

	superCfg, ok := search.ConfigFor(superMode)
	if !ok {
		return nil, &search.ErrInvalidSearchMode{Value: superMode}
	}
	if superCfg.JPS {
		return nil, search.ErrUnfinishedAlgorithm
	}

	switch superCfg.Direction {
	case search.Forward:
		priority := superPriority(superCfg.Heuristic, plan.Source, plan.Target, plan.Target, g)
		return runForward(g, sg, source, target, sourceSuper, targetSuper, superCfg.Discipline, priority, subMode)
	case search.Reverse:
		priority := superPriority(superCfg.Heuristic, plan.Source, plan.Target, plan.Source, g)
		return runReverse(g, sg, source, target, sourceSuper, targetSuper, superCfg.Discipline, priority, subMode)
	default:
		fwdPriority := superPriority(superCfg.Heuristic, plan.Source, plan.Target, plan.Target, g)
		revPriority := superPriority(superCfg.Heuristic, plan.Source, plan.Target, plan.Source, g)
		return runBidirectional(g, sg, source, target, sourceSuper, targetSuper, superCfg.Discipline, fwdPriority, revPriority, subMode)
	}
}
