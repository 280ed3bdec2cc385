package voxellath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxellath"
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/graph"
	"github.com/katalvlaran/voxellath/search"
)

func mustLoad(t *testing.T, body string) *voxellath.World {
	t.Helper()
	w, err := voxellath.Load([]byte(body))
	require.NoError(t, err)
	return w
}

// spec.md §8 scenario #1/#2: a flat 4x1 floor, walking east then west.
func TestWorld_FlatFloorEastAndWest(t *testing.T) {
	w := mustLoad(t, "4 1 2\nf\n0\n")

	route, err := w.Search(search.Plan{Source: coordinate.New(0, 0, 1), Target: coordinate.New(3, 0, 1)}, search.BFS)
	require.NoError(t, err)
	require.Equal(t, "eee", coordinate.MovesToString(route))

	route, err = w.Search(search.Plan{Source: coordinate.New(3, 0, 1), Target: coordinate.New(0, 0, 1)}, search.BFS)
	require.NoError(t, err)
	require.Equal(t, "www", coordinate.MovesToString(route))
}

// spec.md §8 scenario #3 / property 6: triviality.
func TestWorld_Triviality(t *testing.T) {
	w := mustLoad(t, "4 1 2\nf\n0\n")
	here := coordinate.New(1, 0, 1)

	route, err := w.Search(search.Plan{Source: here, Target: here}, search.DFS)
	require.NoError(t, err)
	require.Empty(t, route)

	dest, err := w.Travel(here, nil)
	require.NoError(t, err)
	require.Equal(t, here, dest)
}

// spec.md §8 scenario #4: a one-move climb around a solid block,
// verified end to end through the World facade rather than the graph
// package directly.
func TestWorld_AStarClimbIncludesWestMove(t *testing.T) {
	w := mustLoad(t, "4 1 3\nf\n8\n0\n")

	route, err := w.Search(search.Plan{Source: coordinate.New(1, 0, 1), Target: coordinate.New(0, 0, 2)}, search.AStar)
	require.NoError(t, err)
	require.Contains(t, route, coordinate.West)

	dest, err := w.Travel(coordinate.New(1, 0, 1), route)
	require.NoError(t, err)
	require.Equal(t, coordinate.New(0, 0, 2), dest)
}

// spec.md §8 scenario #5.
func TestWorld_DisconnectedIslandsAreUntraversable(t *testing.T) {
	w := mustLoad(t, "5 1 2\nd8\n00\n")
	_, err := w.Search(search.Plan{Source: coordinate.New(0, 0, 1), Target: coordinate.New(3, 0, 1)}, search.BFS)
	require.Error(t, err)
	var untraversable *search.ErrUntraversable
	require.ErrorAs(t, err, &untraversable)
}

// spec.md §8 scenario #6.
func TestWorld_InvalidSource(t *testing.T) {
	w := mustLoad(t, "4 1 2\nf\n0\n")
	_, err := w.Search(search.Plan{Source: coordinate.New(-1, 0, 0), Target: coordinate.New(0, 0, 1)}, search.BFS)
	require.Error(t, err)
	var srcErr *graph.ErrInvalidSource
	require.ErrorAs(t, err, &srcErr)
}

// property 1: route soundness, exhaustively over the flat floor's node
// pairs.
func TestWorld_RouteSoundnessProperty(t *testing.T) {
	w := mustLoad(t, "4 1 2\nf\n0\n")
	ok, err := w.Verify(search.BFS)
	require.NoError(t, err)
	require.True(t, ok)
}

// property 2: super-route soundness.
func TestWorld_SuperRouteSoundnessProperty(t *testing.T) {
	w := mustLoad(t, "2 1 4\nc\n8\n8\n0\n")
	w.Condense()
	ok, err := w.SuperVerify(search.BFS, search.BFS)
	require.NoError(t, err)
	require.True(t, ok)
}

// property 3: condensation partitioning. Every node belongs to exactly
// one super-node; the one-way split world's two nodes land in distinct
// super-nodes with only the forward direction traversable.
func TestWorld_CondensationPartitioningProperty(t *testing.T) {
	w := mustLoad(t, "2 1 4\nc\n8\n8\n0\n")
	w.Condense()

	for i := range w.Graph.Nodes {
		require.GreaterOrEqualf(t, w.Graph.Nodes[i].Super, 0, "node %d never assigned a super-node", i)
	}

	high := coordinate.New(0, 0, 3)
	low := coordinate.New(1, 0, 1)
	highIdx, _ := w.Graph.NodeAt(high)
	lowIdx, _ := w.Graph.NodeAt(low)
	require.NotEqual(t, w.Graph.Nodes[highIdx].Super, w.Graph.Nodes[lowIdx].Super)

	_, err := w.Search(search.Plan{Source: high, Target: low}, search.BFS)
	require.NoError(t, err)
	_, err = w.Search(search.Plan{Source: low, Target: high}, search.BFS)
	require.Error(t, err)
}

// property 4: super-graph acyclicity.
func TestWorld_SuperGraphAcyclicityProperty(t *testing.T) {
	w := mustLoad(t, "2 1 4\nc\n8\n8\n0\n")
	w.Condense()

	visiting := make([]bool, len(w.SuperGraph.Supers))
	visited := make([]bool, len(w.SuperGraph.Supers))
	var dfs func(u int) bool
	dfs = func(u int) bool {
		visiting[u] = true
		for _, arc := range w.SuperGraph.Supers[u].Out {
			if visiting[arc.To] {
				return true
			}
			if !visited[arc.To] && dfs(arc.To) {
				return true
			}
		}
		visiting[u] = false
		visited[u] = true
		return false
	}
	for i := range w.SuperGraph.Supers {
		if !visited[i] {
			require.Falsef(t, dfs(i), "cycle reachable from super-node %d", i)
		}
	}
}

// property 5: reverse symmetry.
func TestWorld_ReverseSymmetryProperty(t *testing.T) {
	pairs := []struct{ forward, reverse search.Mode }{
		{search.DFS, search.ReverseDFS},
		{search.BFS, search.ReverseBFS},
		{search.GBFS, search.ReverseGBFS},
		{search.AStar, search.ReverseAStar},
	}
	w := mustLoad(t, "5 1 2\nd8\n00\n")
	plan := search.Plan{Source: coordinate.New(0, 0, 1), Target: coordinate.New(3, 0, 1)}
	for _, p := range pairs {
		_, fwdErr := w.Search(plan, p.forward)
		_, revErr := w.Search(plan, p.reverse)
		require.Equal(t, fwdErr == nil, revErr == nil)
	}
}

func TestWorld_SuperOperationsRequireCondense(t *testing.T) {
	w := mustLoad(t, "4 1 2\nf\n0\n")
	plan := search.Plan{Source: coordinate.New(0, 0, 1), Target: coordinate.New(3, 0, 1)}

	_, err := w.SuperSearch(plan, search.BFS, search.BFS)
	require.ErrorIs(t, err, voxellath.ErrNotCondensed)

	_, err = w.SuperVerify(search.BFS, search.BFS)
	require.ErrorIs(t, err, voxellath.ErrNotCondensed)
}
