package verify

import (
	"fmt"

	"github.com/katalvlaran/voxellath/coordinate"
)

// ErrVerificationFailed reports the first offending pair found: either
// the search or the replayed travel did not behave as the search's own
// contract promises.
type ErrVerificationFailed struct {
	Source coordinate.Coordinate
	Target coordinate.Coordinate
	Cause  error
}

func (e *ErrVerificationFailed) Error() string {
	return fmt.Sprintf("verify: %s -> %s: %v", e.Source, e.Target, e.Cause)
}

func (e *ErrVerificationFailed) Unwrap() error {
	return e.Cause
}
