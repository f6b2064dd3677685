package cycle

import (
	"errors"
	"fmt"
)

// ErrNegativeSteps is returned for a negative step count.
var ErrNegativeSteps = errors.New("cycle: negative step count")

// Cycle describes an eventually periodic sequence: after Offset steps the
// states repeat every Period steps, i.e. state(Offset+k) == state(Offset+k+Period)
// for every k ≥ 0.
type Cycle struct {
	Offset int
	Period int
}

// Reduce returns the smallest step count whose state equals the state after
// n steps: n itself inside the tail, otherwise Offset + (n-Offset) mod Period.
func (c Cycle) Reduce(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSteps, n)
	}
	if n < c.Offset || c.Period <= 0 {
		return n, nil
	}
	return c.Offset + (n-c.Offset)%c.Period, nil
}

// String renders "offset=O period=P".
func (c Cycle) String() string {
	return fmt.Sprintf("offset=%d period=%d", c.Offset, c.Period)
}
