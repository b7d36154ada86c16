package spatial

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 transformation matrix of float64s in homogeneous
// coordinates. Storage is row-major (matrix[row][column]) and the mathematical
// convention is column-vector: a point is transformed as M·v and the
// translation components live in the fourth column. ColumnMajor() transposes
// on the way out, producing the flat column-major layout graphics APIs expect.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new Matrix4 that translates points by the position provided.
func NewMatrix4Translate(position Vector3) Matrix4 {
	mat := NewMatrix4()
	mat[0][3] = position.X
	mat[1][3] = position.Y
	mat[2][3] = position.Z
	return mat
}

// NewMatrix4Scale returns a new Matrix4 that scales points by the factors provided. 1, 1, 1 is the default.
func NewMatrix4Scale(factors Vector3) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = factors.X
	mat[1][1] = factors.Y
	mat[2][2] = factors.Z
	return mat
}

// NewMatrix4ScaleUniform returns a new Matrix4 that scales points by the same factor on all three axes.
func NewMatrix4ScaleUniform(factor float64) Matrix4 {
	return NewMatrix4Scale(NewVector3(factor, factor, factor))
}

// NewMatrix4RotateX returns a new Matrix4 that rotates points about the +X axis
// by the angle given, following the right-hand rule.
func NewMatrix4RotateX(angle Angle) Matrix4 {
	c, s := math.Cos(angle.Radians()), math.Sin(angle.Radians())
	return Matrix4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateY returns a new Matrix4 that rotates points about the +Y axis
// by the angle given, following the right-hand rule.
func NewMatrix4RotateY(angle Angle) Matrix4 {
	c, s := math.Cos(angle.Radians()), math.Sin(angle.Radians())
	return Matrix4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateZ returns a new Matrix4 that rotates points about the +Z axis
// by the angle given, following the right-hand rule.
func NewMatrix4RotateZ(angle Angle) Matrix4 {
	c, s := math.Cos(angle.Radians()), math.Sin(angle.Radians())
	return Matrix4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Rotate returns a new Matrix4 composing the three per-axis rotations
// as RotateX · RotateY · RotateZ. The order is fixed; matrix multiplication is
// not commutative, so swapping it produces a different orientation.
func NewMatrix4Rotate(x, y, z Angle) Matrix4 {
	return NewMatrix4RotateX(x).Mult(NewMatrix4RotateY(y)).Mult(NewMatrix4RotateZ(z))
}

// NewMatrix4RotateAxis returns a new Matrix4 that rotates points about the arbitrary
// axis given by the angle given. The axis is normalized internally; a zero axis
// defaults to +Y.
func NewMatrix4RotateAxis(axis Vector3, angle Angle) Matrix4 {

	if axis.IsZero() {
		axis = VecY
	}

	mat := NewMatrix4()
	u := axis.Unit()
	s := math.Sin(angle.Radians())
	c := math.Cos(angle.Radians())
	m := 1 - c

	mat[0][0] = m*u.X*u.X + c
	mat[0][1] = m*u.X*u.Y - u.Z*s
	mat[0][2] = m*u.Z*u.X + u.Y*s

	mat[1][0] = m*u.X*u.Y + u.Z*s
	mat[1][1] = m*u.Y*u.Y + c
	mat[1][2] = m*u.Y*u.Z - u.X*s

	mat[2][0] = m*u.Z*u.X - u.Y*s
	mat[2][1] = m*u.Y*u.Z + u.X*s
	mat[2][2] = m*u.Z*u.Z + c

	return mat

}

// NewProjectionOrthographic generates an orthographic projection Matrix4 from the
// horizontal (left to right), vertical (bottom to top), and depth (near to far)
// clipping ranges, using the standard OpenGL formula.
func NewProjectionOrthographic(horizontal, vertical, depth Interval) Matrix4 {

	r, l := horizontal.Upper(), horizontal.Lower()
	t, b := vertical.Upper(), vertical.Lower()
	f, n := depth.Upper(), depth.Lower()

	return Matrix4{
		{2 / (r - l), 0, 0, -(r + l) / (r - l)},
		{0, 2 / (t - b), 0, -(t + b) / (t - b)},
		{0, 0, -2 / (f - n), -(f + n) / (f - n)},
		{0, 0, 0, 1},
	}

}

// NewProjectionPerspective generates a perspective projection Matrix4 from a
// vertical field of view, an aspect ratio (width over height), and the depth
// (near to far) clipping range, assuming a symmetric frustum.
func NewProjectionPerspective(fov Angle, aspect float64, depth Interval) Matrix4 {

	f, n := depth.Upper(), depth.Lower()

	t := n * math.Tan(fov.Radians()/2)
	b := -t
	r := t * aspect
	l := -r

	return Matrix4{
		{(2 * n) / (r - l), 0, (r + l) / (r - l), 0},
		{0, (2 * n) / (t - b), (t + b) / (t - b), 0},
		{0, 0, -(f + n) / (f - n), -(2 * f * n) / (f - n)},
		{0, 0, -1, 0},
	}

}

// NewLookAtMatrix generates a view Matrix4 for a camera placed at eye, aimed at
// center, with the upward direction up. The eye maps to the camera-space origin
// and the center maps onto the +Z axis at the eye-to-center distance, so the
// viewing direction becomes +Z in camera space.
func NewLookAtMatrix(eye, center, up Vector3) Matrix4 {

	// A camera aimed at itself has no defined orientation.
	if eye.Equals(center) {
		return NewMatrix4Translate(eye.Invert())
	}

	forward := eye.Sub(center).Unit()
	up = up.Unit()

	// If the viewing direction is parallel to up, the cross product degenerates,
	// so substitute a different up axis.
	if forward.Equals(up) || forward.Equals(up.Invert()) {
		if !up.Equals(VecX) {
			up = VecX
		} else {
			up = VecZ
		}
	}

	side := forward.Cross(up).Unit()
	trueUp := side.Cross(forward)

	return Matrix4{
		{side.X, side.Y, side.Z, -side.Dot(eye)},
		{trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye)},
		{-forward.X, -forward.Y, -forward.Z, forward.Dot(eye)},
		{0, 0, 0, 1},
	}

}

// NewDefaultViewMatrix returns the view Matrix4 of a camera placed at (0, 0, -1),
// aimed at the origin, with +Y up.
func NewDefaultViewMatrix() Matrix4 {
	return NewLookAtMatrix(NewVector3(0, 0, -1), NewVector3Zero(), VecY)
}

// NewViewTowardMatrix returns the view Matrix4 of a camera placed at the origin,
// aimed along the direction provided, with +Y up.
func NewViewTowardMatrix(direction Vector3) Matrix4 {
	return NewLookAtMatrix(NewVector3Zero(), direction, VecY)
}

// Mult multiplies the Matrix4 by the other Matrix4 provided, returning the
// product matrix · other. In the column-vector convention the right-hand
// matrix applies to a point first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}

	return newMat

}

// MultVec transforms the Vector3 provided as a position in homogeneous
// coordinates (W = 1), applying rotation, scale, and translation.
func (matrix Matrix4) MultVec(vec Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z + matrix[0][3],
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z + matrix[1][3],
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z + matrix[2][3],
	}
}

// MultVec4 transforms the full four-component Vector4 provided, including the
// W component; use this for projective transforms that need the W divide.
func (matrix Matrix4) MultVec4(vec Vector4) Vector4 {
	return Vector4{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z + matrix[0][3]*vec.W,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z + matrix[1][3]*vec.W,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z + matrix[2][3]*vec.W,
		W: matrix[3][0]*vec.X + matrix[3][1]*vec.Y + matrix[3][2]*vec.Z + matrix[3][3]*vec.W,
	}
}

// Add returns the component-wise sum of the Matrix4 and the other Matrix4 provided.
func (matrix Matrix4) Add(other Matrix4) Matrix4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			matrix[i][j] += other[i][j]
		}
	}
	return matrix
}

// Sub returns the component-wise difference of the Matrix4 and the other Matrix4 provided.
func (matrix Matrix4) Sub(other Matrix4) Matrix4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			matrix[i][j] -= other[i][j]
		}
	}
	return matrix
}

// Scale returns the Matrix4 with every component multiplied by the scalar provided.
func (matrix Matrix4) Scale(scalar float64) Matrix4 {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			matrix[i][j] *= scalar
		}
	}
	return matrix
}

// Transposed returns the transpose of the Matrix4, with rows exchanged for columns.
func (matrix Matrix4) Transposed() Matrix4 {
	transposed := Matrix4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			transposed[i][j] = matrix[j][i]
		}
	}
	return transposed
}

// Inverted returns the inverse of the Matrix4, computed through the classic
// submatrix / cofactor expansion. The Matrix4 must be non-singular; a
// degenerate matrix divides by a zero determinant and propagates IEEE Inf/NaN.
func (matrix Matrix4) Inverted() Matrix4 {

	s0 := matrix[0][0]*matrix[1][1] - matrix[1][0]*matrix[0][1]
	s1 := matrix[0][0]*matrix[1][2] - matrix[1][0]*matrix[0][2]
	s2 := matrix[0][0]*matrix[1][3] - matrix[1][0]*matrix[0][3]
	s3 := matrix[0][1]*matrix[1][2] - matrix[1][1]*matrix[0][2]
	s4 := matrix[0][1]*matrix[1][3] - matrix[1][1]*matrix[0][3]
	s5 := matrix[0][2]*matrix[1][3] - matrix[1][2]*matrix[0][3]

	c5 := matrix[2][2]*matrix[3][3] - matrix[3][2]*matrix[2][3]
	c4 := matrix[2][1]*matrix[3][3] - matrix[3][1]*matrix[2][3]
	c3 := matrix[2][1]*matrix[3][2] - matrix[3][1]*matrix[2][2]
	c2 := matrix[2][0]*matrix[3][3] - matrix[3][0]*matrix[2][3]
	c1 := matrix[2][0]*matrix[3][2] - matrix[3][0]*matrix[2][2]
	c0 := matrix[2][0]*matrix[3][1] - matrix[3][0]*matrix[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	invDet := 1 / det

	inverted := Matrix4{}

	inverted[0][0] = (matrix[1][1]*c5 - matrix[1][2]*c4 + matrix[1][3]*c3) * invDet
	inverted[0][1] = (-matrix[0][1]*c5 + matrix[0][2]*c4 - matrix[0][3]*c3) * invDet
	inverted[0][2] = (matrix[3][1]*s5 - matrix[3][2]*s4 + matrix[3][3]*s3) * invDet
	inverted[0][3] = (-matrix[2][1]*s5 + matrix[2][2]*s4 - matrix[2][3]*s3) * invDet

	inverted[1][0] = (-matrix[1][0]*c5 + matrix[1][2]*c2 - matrix[1][3]*c1) * invDet
	inverted[1][1] = (matrix[0][0]*c5 - matrix[0][2]*c2 + matrix[0][3]*c1) * invDet
	inverted[1][2] = (-matrix[3][0]*s5 + matrix[3][2]*s2 - matrix[3][3]*s1) * invDet
	inverted[1][3] = (matrix[2][0]*s5 - matrix[2][2]*s2 + matrix[2][3]*s1) * invDet

	inverted[2][0] = (matrix[1][0]*c4 - matrix[1][1]*c2 + matrix[1][3]*c0) * invDet
	inverted[2][1] = (-matrix[0][0]*c4 + matrix[0][1]*c2 - matrix[0][3]*c0) * invDet
	inverted[2][2] = (matrix[3][0]*s4 - matrix[3][1]*s2 + matrix[3][3]*s0) * invDet
	inverted[2][3] = (-matrix[2][0]*s4 + matrix[2][1]*s2 - matrix[2][3]*s0) * invDet

	inverted[3][0] = (-matrix[1][0]*c3 + matrix[1][1]*c1 - matrix[1][2]*c0) * invDet
	inverted[3][1] = (matrix[0][0]*c3 - matrix[0][1]*c1 + matrix[0][2]*c0) * invDet
	inverted[3][2] = (-matrix[3][0]*s3 + matrix[3][1]*s1 - matrix[3][2]*s0) * invDet
	inverted[3][3] = (matrix[2][0]*s3 - matrix[2][1]*s1 + matrix[2][2]*s0) * invDet

	return inverted

}

// ColumnMajor returns the Matrix4 as a flat sequence of 16 values in
// column-major order (transposed from the row-major storage). This is the
// layout a standard graphics API's uniform-upload call expects; the transpose
// is a wire-format contract, not a convenience.
func (matrix Matrix4) ColumnMajor() [16]float64 {
	flat := [16]float64{}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			flat[c*4+r] = matrix[r][c]
		}
	}
	return flat
}

// ColumnMajorSlice returns the same flat column-major sequence as ColumnMajor,
// but as a newly allocated slice for APIs that take []float64.
func (matrix Matrix4) ColumnMajorSlice() []float64 {
	flat := matrix.ColumnMajor()
	return flat[:]
}

// ToQuaternion returns a Quaternion representative of the Matrix4's rotation
// (assuming the Matrix4 is purely rotational).
func (matrix Matrix4) ToQuaternion() Quaternion {
	return NewQuaternionFromMatrix(matrix)
}

// Row returns the indexed row of the Matrix4 as a Vector4.
func (matrix Matrix4) Row(rowIndex int) Vector4 {
	return Vector4{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
		W: matrix[rowIndex][3],
	}
}

// Column returns the indexed column of the Matrix4 as a Vector4.
func (matrix Matrix4) Column(columnIndex int) Vector4 {
	return Vector4{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
		W: matrix[3][columnIndex],
	}
}

// Equals returns true if the Matrix4 contains the same values as the other
// Matrix4 provided, within floating point tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := 1e-6
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the Matrix4 is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, row := range matrix {
		for _, value := range row {
			s += strconv.FormatFloat(value, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
