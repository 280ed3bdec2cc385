package search

import "github.com/katalvlaran/voxellath/coordinate"

// Plan names the two endpoints of a route query.
type Plan struct {
	Source coordinate.Coordinate
	Target coordinate.Coordinate
}
