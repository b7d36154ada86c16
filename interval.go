package spatial

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned when an Interval is constructed with bounds
// that do not satisfy lower < upper.
var ErrInvalidInterval = errors.New("spatial: interval lower bound must be strictly less than upper bound")

// Interval represents a bounded numeric range with the structural invariant
// lower < upper, checked at construction. It is used for clamping and for the
// clipping-plane ranges of the projection matrices.
type Interval struct {
	lower float64
	upper float64
}

// NewInterval creates an Interval from the given bounds, returning
// ErrInvalidInterval if lower >= upper.
func NewInterval(lower, upper float64) (Interval, error) {
	if lower >= upper {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lower, upper)
	}
	return Interval{lower: lower, upper: upper}, nil
}

// MustInterval creates an Interval from the given bounds and panics if they
// are invalid. It is intended for literals whose bounds are known constants.
func MustInterval(lower, upper float64) Interval {
	interval, err := NewInterval(lower, upper)
	if err != nil {
		panic(err)
	}
	return interval
}

// Lower returns the Interval's lower bound.
func (interval Interval) Lower() float64 {
	return interval.lower
}

// Upper returns the Interval's upper bound.
func (interval Interval) Upper() float64 {
	return interval.upper
}

// Length returns the distance between the Interval's bounds.
func (interval Interval) Length() float64 {
	return interval.upper - interval.lower
}

// Contains returns true if the value lies within the Interval, bounds included.
func (interval Interval) Contains(value float64) bool {
	return value >= interval.lower && value <= interval.upper
}

// Clamp returns the value limited to the Interval: the lower bound if the value
// falls below it, the upper bound if the value exceeds it, and the value
// unchanged otherwise.
func (interval Interval) Clamp(value float64) float64 {
	return clampFloat(value, interval.lower, interval.upper)
}
