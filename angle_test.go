package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversion(t *testing.T) {

	assert.InDelta(t, math.Pi, Degrees(180).Radians(), 1e-15)
	assert.InDelta(t, math.Pi/2, Degrees(90).Radians(), 1e-15)
	assert.InDelta(t, 180, Radians(math.Pi).Degrees(), 1e-12)

	// Radians pass through untouched.
	assert.Equal(t, 1.234, Radians(1.234).Radians())

	// The zero value is an angle of zero radians.
	assert.Equal(t, 0.0, Angle{}.Radians())

}

func TestAngleArithmetic(t *testing.T) {

	sum := Degrees(90).Add(Radians(math.Pi / 2))
	assert.InDelta(t, math.Pi, sum.Radians(), 1e-12)
	assert.InDelta(t, 180, sum.Degrees(), 1e-12)

	assert.InDelta(t, math.Pi, Degrees(90).Scale(2).Radians(), 1e-12)
	assert.InDelta(t, -math.Pi/2, Degrees(90).Negate().Radians(), 1e-12)

	assert.True(t, Degrees(180).Equals(Radians(math.Pi)))
	assert.False(t, Degrees(180).Equals(Radians(math.Pi/2)))

}

func TestAngleInTrigContexts(t *testing.T) {

	// The same rotation expressed in either unit produces the same matrix.
	assert.True(t, NewMatrix4RotateY(Degrees(90)).Equals(NewMatrix4RotateY(Radians(math.Pi/2))))

	quatDeg := NewQuaternionFromAxisAngle(Degrees(60), VecZ)
	quatRad := NewQuaternionFromAxisAngle(Radians(math.Pi/3), VecZ)
	assert.True(t, quatDeg.Equals(quatRad))

}
