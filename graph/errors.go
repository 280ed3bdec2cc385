package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxellath/coordinate"
)

// ErrNoStandableNode is the sentinel every "coordinate isn't a node"
// error wraps, so callers can errors.Is the general case without
// matching ErrInvalidSource vs. ErrInvalidTarget.
var ErrNoStandableNode = errors.New("graph: not a standable node")

// ErrRoutePlayback is the sentinel ErrInvalidRoute wraps, so callers
// can errors.Is a failed Travel without matching its Move/Index fields.
var ErrRoutePlayback = errors.New("graph: route playback failed")

// ErrInvalidSource reports a query anchored at a coordinate with no
// standable node.
type ErrInvalidSource struct {
	Coordinate coordinate.Coordinate
}

func (e *ErrInvalidSource) Error() string {
	return fmt.Sprintf("graph: %s is not a standable node", e.Coordinate)
}

func (e *ErrInvalidSource) Unwrap() error { return ErrNoStandableNode }

// ErrInvalidTarget reports a query whose target has no standable node.
type ErrInvalidTarget struct {
	Coordinate coordinate.Coordinate
}

func (e *ErrInvalidTarget) Error() string {
	return fmt.Sprintf("graph: %s is not a standable node", e.Coordinate)
}

func (e *ErrInvalidTarget) Unwrap() error { return ErrNoStandableNode }

// ErrInvalidRoute reports a route containing a move with no matching arc
// out of the node reached by the moves before it.
type ErrInvalidRoute struct {
	Move  coordinate.Move
	Index int
}

func (e *ErrInvalidRoute) Error() string {
	return fmt.Sprintf("graph: move %q at route index %d has no matching arc", e.Move, e.Index)
}

func (e *ErrInvalidRoute) Unwrap() error { return ErrRoutePlayback }
