package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxellath/condense"
	"github.com/katalvlaran/voxellath/graph"
	"github.com/katalvlaran/voxellath/search"
	"github.com/katalvlaran/voxellath/supersearch"
)

// Verify runs mode over every ordered pair of nodes in g, replaying
// every non-Untraversable route through g.Travel (spec.md §4.6).
func Verify(g *graph.Graph, mode search.Mode) (bool, error) {
	for i := range g.Nodes {
		for j := range g.Nodes {
			if i == j {
				continue
			}
			source := g.Nodes[i].Coordinate
			target := g.Nodes[j].Coordinate

			route, err := search.Search(g, search.Plan{Source: source, Target: target}, mode)
			if err != nil {
				var untraversable *search.ErrUntraversable
				if errors.As(err, &untraversable) {
					continue
				}
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: err}
			}

			dest, err := g.Travel(source, route)
			if err != nil {
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: err}
			}
			if dest != target {
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: fmt.Errorf("route arrived at %s", dest)}
			}
		}
	}
	return true, nil
}

// SuperVerify mirrors Verify at the super-node level: every ordered
// pair of super-nodes, using the source super-node's first member and
// the target super-node's last member as endpoints (spec.md §4.6).
func SuperVerify(sg *condense.SuperGraph, g *graph.Graph, superMode, subMode search.Mode) (bool, error) {
	for i := range sg.Supers {
		for j := range sg.Supers {
			if i == j {
				continue
			}
			sourceMembers := sg.Supers[i].Members
			targetMembers := sg.Supers[j].Members
			source := g.Nodes[sourceMembers[0]].Coordinate
			target := g.Nodes[targetMembers[len(targetMembers)-1]].Coordinate

			route, err := supersearch.Search(g, sg, search.Plan{Source: source, Target: target}, superMode, subMode)
			if err != nil {
				var untraversable *search.ErrUntraversable
				if errors.As(err, &untraversable) {
					continue
				}
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: err}
			}

			dest, err := g.Travel(source, route)
			if err != nil {
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: err}
			}
			if dest != target {
				return false, &ErrVerificationFailed{Source: source, Target: target, Cause: fmt.Errorf("route arrived at %s", dest)}
			}
		}
	}
	return true, nil
}
