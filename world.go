package voxellath

import (
	"errors"

	"github.com/katalvlaran/voxellath/condense"
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/graph"
	"github.com/katalvlaran/voxellath/schematic"
	"github.com/katalvlaran/voxellath/search"
	"github.com/katalvlaran/voxellath/supersearch"
	"github.com/katalvlaran/voxellath/verify"
)

// ErrNotCondensed is returned by the super-level operations when
// Condense has not yet been called.
var ErrNotCondensed = errors.New("voxellath: world has not been condensed; call Condense first")

// World is a decoded voxel world and its derived motion graph. The
// super-graph is nil until Condense runs.
type World struct {
	Graph      *graph.Graph
	SuperGraph *condense.SuperGraph
}

// Load decodes a .vox-format world and builds its motion graph.
func Load(data []byte) (*World, error) {
	s, err := schematic.Decode(data)
	if err != nil {
		return nil, err
	}
	g, err := graph.Build(s)
	if err != nil {
		return nil, err
	}
	return &World{Graph: g}, nil
}

// Condense computes the world's super-graph, replacing any previous one.
func (w *World) Condense() {
	w.SuperGraph = condense.Build(w.Graph)
}

// Search finds a route between plan's endpoints under mode.
func (w *World) Search(plan search.Plan, mode search.Mode) ([]coordinate.Move, error) {
	return search.Search(w.Graph, plan, mode)
}

// SuperSearch finds a route between plan's endpoints by walking the
// super-graph under superMode, materializing each crossed super-node's
// segment with subMode.
func (w *World) SuperSearch(plan search.Plan, superMode, subMode search.Mode) ([]coordinate.Move, error) {
	if w.SuperGraph == nil {
		return nil, ErrNotCondensed
	}
	return supersearch.Search(w.Graph, w.SuperGraph, plan, superMode, subMode)
}

// Travel replays route starting at source.
func (w *World) Travel(source coordinate.Coordinate, route []coordinate.Move) (coordinate.Coordinate, error) {
	return w.Graph.Travel(source, route)
}

// Verify exhaustively checks mode's soundness over every node pair.
func (w *World) Verify(mode search.Mode) (bool, error) {
	return verify.Verify(w.Graph, mode)
}

// SuperVerify exhaustively checks the superMode/subMode pair's
// soundness over every super-node pair.
func (w *World) SuperVerify(superMode, subMode search.Mode) (bool, error) {
	if w.SuperGraph == nil {
		return false, ErrNotCondensed
	}
	return verify.SuperVerify(w.SuperGraph, w.Graph, superMode, subMode)
}
