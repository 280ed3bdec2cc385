package graph

import (
	"github.com/katalvlaran/voxellath/coordinate"
	"github.com/katalvlaran/voxellath/schematic"
)

// Build lifts a decoded schematic into a Graph. Every NewNodeTag voxel
// becomes a node; TwoWayTag and OneWayTag voxels contribute no node of
// their own but drive the climb and fall arcs into and out of their
// neighbors, per spec.md §4.2.
func Build(s *schematic.Schematic) (*Graph, error) {
	x, y, z := s.Dims()
	g := &Graph{index: make(map[coordinate.Coordinate]int)}

	// Pass 1: allocate one arena slot per standable voxel. Scanning in
	// ascending z, y, x order makes arc emission below always find a
	// west/north neighbor's node already allocated.
	for layer := 0; layer < z; layer++ {
		for row := 0; row < y; row++ {
			for col := 0; col < x; col++ {
				if s.TagAt(col, row, layer) == schematic.NewNodeTag {
					c := coordinate.New(col, row, layer)
					g.index[c] = len(g.Nodes)
					g.Nodes = append(g.Nodes, Node{Coordinate: c, Super: -1})
				}
			}
		}
	}

	// land falls from c until it reaches the node anchoring its column.
	land := func(c coordinate.Coordinate) int {
		for s.TagAt(c.X, c.Y, c.Z) != schematic.NewNodeTag {
			c = c.Down()
		}
		return g.index[c]
	}
	link := func(from, to int, move coordinate.Move) {
		g.Nodes[from].Out = append(g.Nodes[from].Out, Arc{To: to, Move: move})
		g.Nodes[to].In = append(g.Nodes[to].In, Arc{To: from, Move: move})
	}

	// Pass 2: emit arcs.
	for layer := 0; layer < z; layer++ {
		for row := 0; row < y; row++ {
			for col := 0; col < x; col++ {
				c := coordinate.New(col, row, layer)
				switch s.TagAt(col, row, layer) {
				case schematic.NewNodeTag:
					u := g.index[c]
					if col != 0 {
						if wTag := s.TagAt(col-1, row, layer); wTag.HasAdjacency() {
							v := land(c.West())
							link(u, v, coordinate.West)
							if wTag != schematic.OneWayTag {
								link(v, u, coordinate.East)
							}
						}
					}
					if row != 0 {
						if nTag := s.TagAt(col, row-1, layer); nTag.HasAdjacency() {
							v := land(c.North())
							link(u, v, coordinate.North)
							if nTag != schematic.OneWayTag {
								link(v, u, coordinate.South)
							}
						}
					}
				case schematic.TwoWayTag:
					u := g.index[c.Down()]
					if col != 0 && s.TagAt(col-1, row, layer) == schematic.NewNodeTag {
						v := g.index[c.West()]
						link(u, v, coordinate.West)
						link(v, u, coordinate.East)
					}
					if row != 0 && s.TagAt(col, row-1, layer) == schematic.NewNodeTag {
						v := g.index[c.North()]
						link(u, v, coordinate.North)
						link(v, u, coordinate.South)
					}
				case schematic.OneWayTag:
					u := land(c.Down().Down())
					if col != 0 && s.TagAt(col-1, row, layer) == schematic.NewNodeTag {
						v := g.index[c.West()]
						link(v, u, coordinate.East)
					}
					if row != 0 && s.TagAt(col, row-1, layer) == schematic.NewNodeTag {
						v := g.index[c.North()]
						link(v, u, coordinate.South)
					}
				}
			}
		}
	}

	return g, nil
}
