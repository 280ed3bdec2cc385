package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxellath/coordinate"
)

// ErrUnfinishedAlgorithm is returned by the three JPS dispatch entries,
// explicit placeholders rather than real implementations.
var ErrUnfinishedAlgorithm = errors.New("search: Unfinished Algorithm")

// ErrBadMode is the sentinel ErrInvalidSearchMode wraps, so callers can
// errors.Is an unrecognized Mode without matching its Value field.
var ErrBadMode = errors.New("search: invalid search mode")

// ErrNoRoute is the sentinel ErrUntraversable wraps, so callers can
// errors.Is a failed search without matching its endpoint fields.
var ErrNoRoute = errors.New("search: no route between endpoints")

// ErrInvalidSearchMode reports a Mode value outside the closed
// enumeration.
type ErrInvalidSearchMode struct {
	Value Mode
}

func (e *ErrInvalidSearchMode) Error() string {
	return fmt.Sprintf("search: invalid search mode %d", e.Value)
}

func (e *ErrInvalidSearchMode) Unwrap() error { return ErrBadMode }

// ErrUntraversable reports a frontier exhausted without ever reaching
// the opposite endpoint.
type ErrUntraversable struct {
	Source coordinate.Coordinate
	Target coordinate.Coordinate
}

func (e *ErrUntraversable) Error() string {
	return fmt.Sprintf("search: no route from %s to %s", e.Source, e.Target)
}

func (e *ErrUntraversable) Unwrap() error { return ErrNoRoute }
