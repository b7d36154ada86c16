package spatial

import "math"

type angleUnit uint8

const (
	unitRadians angleUnit = iota
	unitDegrees
)

// Angle represents a planar angle tagged with the unit it was constructed in,
// either radians or degrees. The zero value is an angle of 0 radians.
// Every trigonometric computation in this package goes through Radians(), so a
// degree-valued Angle never reaches math.Sin or math.Cos directly.
type Angle struct {
	value float64
	unit  angleUnit
}

// Radians creates an Angle from a value expressed in radians.
func Radians(value float64) Angle {
	return Angle{value: value}
}

// Degrees creates an Angle from a value expressed in degrees.
func Degrees(value float64) Angle {
	return Angle{value: value, unit: unitDegrees}
}

// Radians returns the Angle's value in radians. This is the single point of
// unit conversion in the package.
func (angle Angle) Radians() float64 {
	if angle.unit == unitDegrees {
		return angle.value * math.Pi / 180
	}
	return angle.value
}

// Degrees returns the Angle's value in degrees, for human readability.
func (angle Angle) Degrees() float64 {
	if angle.unit == unitDegrees {
		return angle.value
	}
	return angle.value / math.Pi * 180
}

// Add returns the sum of the two Angles. The result carries the calling Angle's unit.
func (angle Angle) Add(other Angle) Angle {
	if angle.unit == unitDegrees {
		return Degrees(angle.Degrees() + other.Degrees())
	}
	return Radians(angle.Radians() + other.Radians())
}

// Scale returns the Angle multiplied by the scalar provided.
func (angle Angle) Scale(scalar float64) Angle {
	angle.value *= scalar
	return angle
}

// Negate returns the Angle with its sign flipped.
func (angle Angle) Negate() Angle {
	angle.value = -angle.value
	return angle
}

// Equals returns true if the two Angles represent the same angle, regardless of unit.
func (angle Angle) Equals(other Angle) bool {
	return math.Abs(angle.Radians()-other.Radians()) <= epsilon
}
