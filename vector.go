package spatial

import "math"

// Vector3 represents a 3D vector, usable for positions, directions, velocities, and so on.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3,
// meaning you can do method chaining easily (e.g. result := a.Add(b).Cross(c).Unit()).
// Vectors are most efficient when copied, so avoid storing pointers to them where possible.
type Vector3 struct {
	X float64 // The X (1st) component of the Vector3
	Y float64 // The Y (2nd) component of the Vector3
	Z float64 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Zero creates a new "zero-ed out" Vector3, with the values of 0, 0, and 0.
func NewVector3Zero() Vector3 {
	return Vector3{}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the
// provided other Vector3, following the right-hand rule.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec

}

// Dot returns the dot product of the Vector3 and the other Vector3 provided.
func (vec Vector3) Dot(other Vector3) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the Euclidean length of the Vector3.
func (vec Vector3) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude()
// as it avoids using math.Sqrt().
func (vec Vector3) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector3 and the other Vector3, interpreting
// both as positions in space.
func (vec Vector3) Distance(other Vector3) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 is returned unchanged, as it has no direction to preserve;
// callers that cannot rule out zero-length input should check IsZero() first.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < epsilon {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales the Vector3 by the scalar provided.
func (vec Vector3) Scale(scalar float64) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides the Vector3 by the scalar provided.
func (vec Vector3) Divide(scalar float64) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Lerp returns a copy of the Vector3, linearly interpolated towards the other Vector3 by
// the percentage given (typically in the 0-1 range).
func (vec Vector3) Lerp(other Vector3, percent float64) Vector3 {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// Angle returns the angle between the calling Vector3 and the provided other Vector3.
func (vec Vector3) Angle(other Vector3) Angle {
	d := clampFloat(vec.Unit().Dot(other.Unit()), -1, 1)
	return Radians(math.Acos(d))
}

// Floats returns a [3]float64 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Homogeneous returns the Vector3 as a Vector4 position in homogeneous coordinates (W = 1).
func (vec Vector3) Homogeneous() Vector4 {
	return Vector4{X: vec.X, Y: vec.Y, Z: vec.Z, W: 1}
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {
	return math.Abs(vec.X-other.X) <= epsilon &&
		math.Abs(vec.Y-other.Y) <= epsilon &&
		math.Abs(vec.Z-other.Z) <= epsilon
}

// IsZero returns true if all of the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	return math.Abs(vec.X) <= epsilon && math.Abs(vec.Y) <= epsilon && math.Abs(vec.Z) <= epsilon
}

// Vector2 represents a 2D vector.
type Vector2 struct {
	X float64
	Y float64
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a copy of the calling Vector2, added together with the other Vector2 provided.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2, with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Scale scales the Vector2 by the scalar provided.
func (vec Vector2) Scale(scalar float64) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Dot returns the dot product of the Vector2 and the other Vector2 provided.
func (vec Vector2) Dot(other Vector2) float64 {
	return vec.X*other.X + vec.Y*other.Y
}

// Magnitude returns the Euclidean length of the Vector2.
func (vec Vector2) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// Unit returns a copy of the Vector2, normalized. A zero-length Vector2 is returned unchanged.
func (vec Vector2) Unit() Vector2 {
	l := vec.Magnitude()
	if l < epsilon {
		return vec
	}
	vec.X, vec.Y = vec.X/l, vec.Y/l
	return vec
}

// Equals returns true if the two Vector2s are close enough in all values.
func (vec Vector2) Equals(other Vector2) bool {
	return math.Abs(vec.X-other.X) <= epsilon && math.Abs(vec.Y-other.Y) <= epsilon
}

// Vector4 represents a 4D vector, used for homogeneous coordinates and matrix rows and columns.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewVector4 creates a new Vector4 with the specified x, y, z, and w components.
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns a copy of the calling Vector4, added together with the other Vector4 provided.
func (vec Vector4) Add(other Vector4) Vector4 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector4, with the other Vector4 subtracted from it.
func (vec Vector4) Sub(other Vector4) Vector4 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Scale scales the Vector4 by the scalar provided.
func (vec Vector4) Scale(scalar float64) Vector4 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

// Dot returns the dot product of the Vector4 and the other Vector4 provided.
func (vec Vector4) Dot(other Vector4) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z + vec.W*other.W
}

// Magnitude returns the Euclidean length of the Vector4 across all four components.
func (vec Vector4) Magnitude() float64 {
	return math.Sqrt(vec.Dot(vec))
}

// Unit returns a copy of the Vector4, normalized across all four components.
// A zero-length Vector4 is returned unchanged.
func (vec Vector4) Unit() Vector4 {
	l := vec.Magnitude()
	if l < epsilon {
		return vec
	}
	return vec.Scale(1 / l)
}

// Vector3 returns the Vector4 truncated to its first three components.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Floats returns a [4]float64 array consisting of the Vector4's contents.
func (vec Vector4) Floats() [4]float64 {
	return [4]float64{vec.X, vec.Y, vec.Z, vec.W}
}

// Equals returns true if the two Vector4s are close enough in all values.
func (vec Vector4) Equals(other Vector4) bool {
	return math.Abs(vec.X-other.X) <= epsilon &&
		math.Abs(vec.Y-other.Y) <= epsilon &&
		math.Abs(vec.Z-other.Z) <= epsilon &&
		math.Abs(vec.W-other.W) <= epsilon
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}
