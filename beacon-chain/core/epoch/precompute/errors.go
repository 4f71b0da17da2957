package precompute

import (
	"fmt"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
)

// ErrValidatorStatusesInconsistent is returned when the precomputed validator records do not
// line up with the state registries.
var ErrValidatorStatusesInconsistent = errors.New("precomputed registries not consistent with state registries")

// DeltaOutOfBoundsError is returned when a validator record refers to an index outside of the
// delta table. It is a kind of ErrValidatorStatusesInconsistent.
type DeltaOutOfBoundsError struct {
	Index types.ValidatorIndex
}

func (e *DeltaOutOfBoundsError) Error() string {
	return fmt.Sprintf("delta index %d out of bounds", e.Index)
}

// Unwrap makes an out of bounds record match ErrValidatorStatusesInconsistent.
func (e *DeltaOutOfBoundsError) Unwrap() error {
	return ErrValidatorStatusesInconsistent
}
