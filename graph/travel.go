package graph

import "github.com/katalvlaran/voxellath/coordinate"

// Travel replays route starting from source and returns the coordinate
// reached, without mutating the graph.
func (g *Graph) Travel(source coordinate.Coordinate, route []coordinate.Move) (coordinate.Coordinate, error) {
	idx, ok := g.index[source]
	if !ok {
		return coordinate.Coordinate{}, &ErrInvalidSource{Coordinate: source}
	}
	for i, move := range route {
		next := -1
		for _, arc := range g.Nodes[idx].Out {
			if arc.Move == move {
				next = arc.To
				break
			}
		}
		if next == -1 {
			return coordinate.Coordinate{}, &ErrInvalidRoute{Move: move, Index: i}
		}
		idx = next
	}
	return g.Nodes[idx].Coordinate, nil
}
