package spatial

import "math"

// Quaternion represents a rotation (or, more generally, an element of the
// quaternion ring) as W + Xi + Yj + Zk. A Quaternion is not forced to be of
// unit length; operations that apply it as a rotation (RotateVec, ToMatrix4,
// the Euler extractions, Slerp) normalize internally to compensate.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the x, y, z, and w components provided.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionIdentity returns the identity Quaternion (1, 0i, 0j, 0k),
// representing no rotation. It is the multiplicative unity of the quaternion
// ring; the zero value of the Quaternion struct is the additive identity.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromAxisAngle creates a rotation Quaternion of the given angle
// about the given axis, as (cos(θ/2), sin(θ/2)·axis). The axis must be a unit
// vector; no normalization is performed on it.
func NewQuaternionFromAxisAngle(angle Angle, axis Vector3) Quaternion {
	half := angle.Radians() / 2
	s := math.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// NewQuaternionBetween creates the Quaternion rotating the direction of v1
// onto the direction of v2. Antiparallel inputs rotate half a turn about an
// arbitrary axis orthogonal to v1.
func NewQuaternionBetween(v1, v2 Vector3) Quaternion {

	from := v1.Unit()
	to := v2.Unit()

	d := clampFloat(from.Dot(to), -1, 1)
	axis := from.Cross(to)

	if axis.IsZero() {
		if d > 0 {
			return NewQuaternionIdentity()
		}
		// v1 and v2 point in opposite directions; any orthogonal axis works.
		axis = from.Cross(VecX)
		if axis.IsZero() {
			axis = from.Cross(VecY)
		}
	}

	return NewQuaternionFromAxisAngle(Radians(math.Acos(d)), axis.Unit())

}

// NewQuaternionFromEuler creates a Quaternion from the yaw (about +Y), pitch
// (about +X), and roll (about +Z) angles provided, applied in that order, via
// the combined half-angle formula.
func NewQuaternionFromEuler(yaw, pitch, roll Angle) Quaternion {

	hy := yaw.Radians() / 2
	hp := pitch.Radians() / 2
	hr := roll.Radians() / 2

	shy, chy := math.Sin(hy), math.Cos(hy)
	shp, chp := math.Sin(hp), math.Cos(hp)
	shr, chr := math.Sin(hr), math.Cos(hr)

	return Quaternion{
		X: chy*shp*chr + shy*chp*shr,
		Y: shy*chp*chr - chy*shp*shr,
		Z: chy*chp*shr - shy*shp*chr,
		W: chy*chp*chr + shy*shp*shr,
	}

}

// NewQuaternionFromMatrix creates a Quaternion representative of the rotation
// contained in the Matrix4 provided (assuming it is a purely rotational matrix).
func NewQuaternionFromMatrix(matrix Matrix4) Quaternion {

	// The fast path divides by 4w, which vanishes as the trace approaches -1
	// (a half-turn), so it is gated on the trace being strictly positive;
	// near-half-turn rotations recover the dominant axis component directly
	// from the diagonal instead.
	if trace := matrix[0][0] + matrix[1][1] + matrix[2][2]; trace > 0 {
		qw := math.Sqrt(1+trace) / 2
		return Quaternion{
			X: (matrix[2][1] - matrix[1][2]) / (4 * qw),
			Y: (matrix[0][2] - matrix[2][0]) / (4 * qw),
			Z: (matrix[1][0] - matrix[0][1]) / (4 * qw),
			W: qw,
		}
	}

	if matrix[0][0] >= matrix[1][1] && matrix[0][0] >= matrix[2][2] {
		x := math.Sqrt(1+matrix[0][0]-matrix[1][1]-matrix[2][2]) / 2
		return Quaternion{
			X: x,
			Y: (matrix[0][1] + matrix[1][0]) / (4 * x),
			Z: (matrix[0][2] + matrix[2][0]) / (4 * x),
			W: (matrix[2][1] - matrix[1][2]) / (4 * x),
		}
	} else if matrix[1][1] >= matrix[2][2] {
		y := math.Sqrt(1-matrix[0][0]+matrix[1][1]-matrix[2][2]) / 2
		return Quaternion{
			X: (matrix[0][1] + matrix[1][0]) / (4 * y),
			Y: y,
			Z: (matrix[1][2] + matrix[2][1]) / (4 * y),
			W: (matrix[0][2] - matrix[2][0]) / (4 * y),
		}
	}

	z := math.Sqrt(1-matrix[0][0]-matrix[1][1]+matrix[2][2]) / 2
	return Quaternion{
		X: (matrix[0][2] + matrix[2][0]) / (4 * z),
		Y: (matrix[1][2] + matrix[2][1]) / (4 * z),
		Z: z,
		W: (matrix[1][0] - matrix[0][1]) / (4 * z),
	}

}

// Add returns the component-wise sum of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Sub returns the component-wise difference of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	quat.X -= other.X
	quat.Y -= other.Y
	quat.Z -= other.Z
	quat.W -= other.W
	return quat
}

// Mul returns the Hamilton product quat · other: the scalar part is
// w1·w2 − v1·v2 and the vector part is w1·v2 + w2·v1 + v1×v2. Like rotation
// composition, the product is not commutative.
func (quat Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Scale returns the Quaternion with every component multiplied by the scalar provided.
func (quat Quaternion) Scale(scalar float64) Quaternion {
	quat.X *= scalar
	quat.Y *= scalar
	quat.Z *= scalar
	quat.W *= scalar
	return quat
}

// Negate returns the Quaternion with every component negated. A rotation
// Quaternion and its negation represent the same rotation (the double cover).
func (quat Quaternion) Negate() Quaternion {
	return quat.Scale(-1)
}

// Conjugate returns the Quaternion with its vector part negated.
func (quat Quaternion) Conjugate() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Dot returns the four-component dot product of the Quaternion and the other Quaternion provided.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Norm returns the length of the Quaternion taken across all four components.
func (quat Quaternion) Norm() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Unit returns a copy of the Quaternion, normalized. A zero Quaternion is
// returned unchanged.
func (quat Quaternion) Unit() Quaternion {
	n := quat.Norm()
	if n < epsilon {
		return quat
	}
	return quat.Scale(1 / n)
}

// Inverse returns the multiplicative inverse of the Quaternion: its conjugate
// divided by its squared norm. quat.Mul(quat.Inverse()) is the identity for
// any nonzero Quaternion.
func (quat Quaternion) Inverse() Quaternion {
	return quat.Conjugate().Scale(1 / quat.Dot(quat))
}

// Exp returns the quaternion exponential e^quat. For a pure-vector Quaternion
// (W = 0) with vector part θ·axis, the result is the rotation Quaternion of
// angle 2θ about axis; Exp and Log are the basis of Pow.
func (quat Quaternion) Exp() Quaternion {

	v := NewVector3(quat.X, quat.Y, quat.Z)
	a := v.Magnitude()
	ew := math.Exp(quat.W)

	if a < epsilon {
		// sin(a)/a approaches 1 as a approaches 0.
		return Quaternion{X: ew * quat.X, Y: ew * quat.Y, Z: ew * quat.Z, W: ew * math.Cos(a)}
	}

	s := ew * math.Sin(a) / a
	return Quaternion{X: s * quat.X, Y: s * quat.Y, Z: s * quat.Z, W: ew * math.Cos(a)}

}

// Log returns the quaternion logarithm, the inverse of Exp. The Quaternion
// must be nonzero; a zero Quaternion produces -Inf in the scalar part.
func (quat Quaternion) Log() Quaternion {

	n := quat.Norm()
	v := NewVector3(quat.X, quat.Y, quat.Z)
	a := v.Magnitude()

	if a < epsilon {
		return Quaternion{W: math.Log(n)}
	}

	theta := math.Acos(clampFloat(quat.W/n, -1, 1))
	s := theta / a
	return Quaternion{X: s * quat.X, Y: s * quat.Y, Z: s * quat.Z, W: math.Log(n)}

}

// Pow returns the Quaternion raised to the real exponent provided, as
// Exp(exponent · Log(quat)). For a unit rotation Quaternion this scales the
// rotation angle, which makes Pow useful for extrapolating rotations.
func (quat Quaternion) Pow(exponent float64) Quaternion {
	return quat.Log().Scale(exponent).Exp()
}

// RotateVec applies the rotation represented by the Quaternion to the Vector3
// provided, via the sandwich product q·(0,v)·q*. The Quaternion is normalized
// internally first.
func (quat Quaternion) RotateVec(vec Vector3) Vector3 {
	q := quat.Unit()
	p := Quaternion{X: vec.X, Y: vec.Y, Z: vec.Z}
	rotated := q.Mul(p).Mul(q.Conjugate())
	return Vector3{X: rotated.X, Y: rotated.Y, Z: rotated.Z}
}

// ToMatrix4 returns the rotation Matrix4 representing the same rotation as the
// Quaternion. The formula scales by 2/norm², so non-unit Quaternions convert
// correctly without pre-normalization.
func (quat Quaternion) ToMatrix4() Matrix4 {

	s := 2 / quat.Dot(quat)

	xx, yy, zz := quat.X*quat.X, quat.Y*quat.Y, quat.Z*quat.Z
	xy, xz, yz := quat.X*quat.Y, quat.X*quat.Z, quat.Y*quat.Z
	wx, wy, wz := quat.W*quat.X, quat.W*quat.Y, quat.W*quat.Z

	return Matrix4{
		{1 - s*(yy+zz), s * (xy - wz), s * (xz + wy), 0},
		{s * (xy + wz), 1 - s*(xx+zz), s * (yz - wx), 0},
		{s * (xz - wy), s * (yz + wx), 1 - s*(xx+yy), 0},
		{0, 0, 0, 1},
	}

}

// GimbalPole indicates whether a Quaternion sits in one of the two gimbal-lock
// configurations (pitch of ±90 degrees), where the yaw and roll axes align and
// the Euler extraction formulas degenerate.
type GimbalPole int

const (
	GimbalPoleSouth GimbalPole = iota - 1 // Pitch at -90 degrees
	GimbalPoleNone                        // Away from both poles
	GimbalPoleNorth                       // Pitch at +90 degrees
)

// Pole classifies the Quaternion against the two gimbal poles. The test term
// is the half-sine of pitch on the normalized Quaternion, thresholded at
// ±0.499 (just inside sin(±90°)/2) to absorb floating point noise near the poles.
func (quat Quaternion) Pole() GimbalPole {
	q := quat.Unit()
	t := q.W*q.X - q.Y*q.Z
	switch {
	case t > 0.499:
		return GimbalPoleNorth
	case t < -0.499:
		return GimbalPoleSouth
	default:
		return GimbalPoleNone
	}
}

// Yaw extracts the rotation about the +Y axis from the Quaternion. At a gimbal
// pole infinitely many yaw/roll pairs represent the same orientation; the
// canonical choice made here is yaw = 0, with the whole twist reported by Roll.
func (quat Quaternion) Yaw() Angle {
	q := quat.Unit()
	if q.Pole() != GimbalPoleNone {
		return Radians(0)
	}
	return Radians(math.Atan2(2*(q.Y*q.W+q.X*q.Z), 1-2*(q.Y*q.Y+q.X*q.X)))
}

// Pitch extracts the rotation about the +X axis from the Quaternion. At a
// gimbal pole the pitch is exactly ±90 degrees by definition.
func (quat Quaternion) Pitch() Angle {
	q := quat.Unit()
	if pole := q.Pole(); pole != GimbalPoleNone {
		return Radians(float64(pole) * math.Pi / 2)
	}
	return Radians(math.Asin(clampFloat(2*(q.W*q.X-q.Y*q.Z), -1, 1)))
}

// Roll extracts the rotation about the +Z axis from the Quaternion. At a
// gimbal pole the aligned yaw/roll twist is reported entirely as roll.
func (quat Quaternion) Roll() Angle {
	q := quat.Unit()
	if pole := q.Pole(); pole != GimbalPoleNone {
		// At a pole the combined twist recovered by atan2(y, w) is yaw-roll
		// (north) or yaw+roll (south); with yaw canonically 0, the sign flips
		// against the pole multiplier.
		return Radians(float64(pole) * -2 * math.Atan2(q.Y, q.W))
	}
	return Radians(math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Z*q.Z+q.X*q.X)))
}

// AxisAngle returns the rotation the Quaternion represents as an angle about a
// unit axis. The identity rotation reports a zero angle about +X.
func (quat Quaternion) AxisAngle() (Angle, Vector3) {

	q := quat.Unit()
	angle := 2 * math.Acos(clampFloat(q.W, -1, 1))
	s := math.Sqrt(1 - q.W*q.W)

	if s < epsilon {
		return Radians(angle), VecX
	}

	return Radians(angle), NewVector3(q.X/s, q.Y/s, q.Z/s)

}

// Slerp spherically interpolates between the calling Quaternion (at percent 0)
// and the other Quaternion (at percent 1). Both are normalized internally, and
// the shorter of the two arcs is always taken. Nearly-identical inputs fall
// back to linear interpolation plus renormalization, where the spherical
// weights would otherwise divide by a vanishing sine.
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {

	q0 := quat.Unit()
	q1 := other.Unit()

	d := q0.Dot(q1)

	// The double cover means -q1 is the same rotation as q1; flipping it when
	// the dot is negative selects the shorter arc.
	if d < 0 {
		q1 = q1.Negate()
		d = -d
	}

	if d > 0.9995 {
		return q0.Lerp(q1, percent)
	}

	theta := math.Acos(clampFloat(d, -1, 1))
	sinTheta := math.Sin(theta)

	ratioA := math.Sin((1-percent)*theta) / sinTheta
	ratioB := math.Sin(percent*theta) / sinTheta

	return q0.Scale(ratioA).Add(q1.Scale(ratioB))

}

// Lerp linearly interpolates between the calling Quaternion (at percent 0) and
// the other Quaternion (at percent 1), renormalizing the result. It is cheaper
// than Slerp but does not advance at a constant angular velocity.
func (quat Quaternion) Lerp(other Quaternion, percent float64) Quaternion {
	return quat.Add(other.Sub(quat).Scale(percent)).Unit()
}

// Equals returns true if the two Quaternions are close enough in all four components.
func (quat Quaternion) Equals(other Quaternion) bool {
	return math.Abs(quat.X-other.X) <= epsilon &&
		math.Abs(quat.Y-other.Y) <= epsilon &&
		math.Abs(quat.Z-other.Z) <= epsilon &&
		math.Abs(quat.W-other.W) <= epsilon
}

// EquivalentRotation returns true if the two Quaternions represent the same
// rotation, treating q and -q as equal per the double cover.
func (quat Quaternion) EquivalentRotation(other Quaternion) bool {
	q0 := quat.Unit()
	q1 := other.Unit()
	return q0.Equals(q1) || q0.Equals(q1.Negate())
}
