package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixIdentityColumnMajor(t *testing.T) {

	flat := NewMatrix4().ColumnMajor()

	expected := [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	assert.Equal(t, expected, flat, "column-major of the identity should equal its row-major layout")

}

func TestMatrixColumnMajorTransposes(t *testing.T) {

	mat := NewMatrix4Translate(NewVector3(2, 3, 4))

	flat := mat.ColumnMajor()

	// Translation lives in the fourth column mathematically, so after the
	// transpose it must occupy the tail of the flat sequence (OpenGL layout).
	assert.Equal(t, 2.0, flat[12])
	assert.Equal(t, 3.0, flat[13])
	assert.Equal(t, 4.0, flat[14])
	assert.Equal(t, 1.0, flat[15])
	assert.Equal(t, 0.0, flat[3])

	assert.Equal(t, flat[:], mat.ColumnMajorSlice())

}

func TestMatrixTranslateAndScale(t *testing.T) {

	p := NewVector3(1, -2, 0.5)

	moved := NewMatrix4Translate(p).MultVec(NewVector3Zero())
	assert.True(t, moved.Equals(p))

	scaled := NewMatrix4Scale(NewVector3(2, 3, 4)).MultVec(NewVector3(1, 1, 1))
	assert.True(t, scaled.Equals(NewVector3(2, 3, 4)))

	uniform := NewMatrix4ScaleUniform(2).MultVec(NewVector3(1, 2, 3))
	assert.True(t, uniform.Equals(NewVector3(2, 4, 6)))

}

func TestMatrixAxisRotations(t *testing.T) {

	quarter := Degrees(90)

	// Right-handed rotations: +X by 90 carries +Y onto +Z, and so on around.
	assert.True(t, NewMatrix4RotateX(quarter).MultVec(VecY).Equals(VecZ))
	assert.True(t, NewMatrix4RotateY(quarter).MultVec(VecZ).Equals(VecX))
	assert.True(t, NewMatrix4RotateZ(quarter).MultVec(VecX).Equals(VecY))

}

func TestMatrixCompositeRotationOrder(t *testing.T) {

	x, y, z := Radians(0.3), Radians(-1.1), Radians(0.7)

	composite := NewMatrix4Rotate(x, y, z)
	manual := NewMatrix4RotateX(x).Mult(NewMatrix4RotateY(y)).Mult(NewMatrix4RotateZ(z))

	assert.True(t, composite.Equals(manual))

	// The reversed composition differs; the order is load-bearing.
	reversed := NewMatrix4RotateZ(z).Mult(NewMatrix4RotateY(y)).Mult(NewMatrix4RotateX(x))
	assert.False(t, composite.Equals(reversed))

}

func TestMatrixRotateAxisMatchesSingleAxis(t *testing.T) {

	angle := Radians(0.83)

	assert.True(t, NewMatrix4RotateAxis(VecX, angle).Equals(NewMatrix4RotateX(angle)))
	assert.True(t, NewMatrix4RotateAxis(VecY, angle).Equals(NewMatrix4RotateY(angle)))
	assert.True(t, NewMatrix4RotateAxis(VecZ, angle).Equals(NewMatrix4RotateZ(angle)))

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4RotateY(Radians(0.1)),
		NewMatrix4Translate(NewVector3(-10, 0.1, 3232.1976)),
		NewMatrix4Scale(NewVector3(10, 0.1, -0.45)),
		NewMatrix4Translate(NewVector3(-1, -1, -1)).
			Mult(NewMatrix4RotateAxis(NewVector3(1, 0, 0.1), Radians(0.334))).
			Mult(NewMatrix4Scale(NewVector3(10, 1, 2))),
	}

	for i, mat := range matrices {
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}
	}

}

func TestMatrixTransposed(t *testing.T) {

	mat := NewMatrix4Translate(NewVector3(5, 6, 7))
	tr := mat.Transposed()

	assert.Equal(t, mat.Row(0).Floats(), tr.Column(0).Floats())
	assert.True(t, tr.Transposed().Equals(mat))

}

func TestLookAtMatrixDefaultView(t *testing.T) {

	view := NewDefaultViewMatrix()

	// The eye maps to the camera-space origin.
	eye := NewVector3(0, 0, -1)
	assert.True(t, view.MultVec(eye).Equals(NewVector3Zero()))

	// The center maps onto the viewing axis at the eye-to-center distance.
	center := view.MultVec(NewVector3Zero())
	assert.InDelta(t, 0, center.X, 1e-12)
	assert.InDelta(t, 0, center.Y, 1e-12)
	assert.InDelta(t, 1, center.Z, 1e-12)

}

func TestLookAtMatrixArbitrary(t *testing.T) {

	eye := NewVector3(3, 2, -5)
	target := NewVector3(-1, 0, 4)
	view := NewLookAtMatrix(eye, target, VecY)

	assert.True(t, view.MultVec(eye).Equals(NewVector3Zero()))

	mapped := view.MultVec(target)
	assert.InDelta(t, 0, mapped.X, 1e-9)
	assert.InDelta(t, 0, mapped.Y, 1e-9)
	assert.InDelta(t, eye.Distance(target), mapped.Z, 1e-9)

	// A view matrix is a rigid transform, so it preserves distances.
	p, q := NewVector3(1, 2, 3), NewVector3(-4, 0, 2)
	assert.InDelta(t, p.Distance(q), view.MultVec(p).Distance(view.MultVec(q)), 1e-9)

}

func TestViewTowardMatrix(t *testing.T) {

	direction := NewVector3(1, 0, 1)
	view := NewViewTowardMatrix(direction)

	mapped := view.MultVec(direction)
	assert.InDelta(t, 0, mapped.X, 1e-9)
	assert.InDelta(t, 0, mapped.Y, 1e-9)
	assert.InDelta(t, direction.Magnitude(), mapped.Z, 1e-9)

}

func TestProjectionPerspective(t *testing.T) {

	depth, err := NewInterval(0.1, 100)
	require.NoError(t, err)

	proj := NewProjectionPerspective(Degrees(90), 1, depth)

	// A point on the near plane straight ahead (camera looks down -Z for the
	// projection) lands on the near clip boundary after the W divide.
	nearPoint := proj.MultVec4(NewVector4(0, 0, -0.1, 1))
	assert.InDelta(t, -1, nearPoint.Z/nearPoint.W, 1e-9)

	farPoint := proj.MultVec4(NewVector4(0, 0, -100, 1))
	assert.InDelta(t, 1, farPoint.Z/farPoint.W, 1e-9)

	// With a 90 degree vertical fov, the frustum edge at the near plane sits at
	// y = near, which must project onto the top of clip space.
	edge := proj.MultVec4(NewVector4(0, 0.1, -0.1, 1))
	assert.InDelta(t, 1, edge.Y/edge.W, 1e-9)

}

func TestProjectionOrthographic(t *testing.T) {

	horizontal := MustInterval(-2, 2)
	vertical := MustInterval(-1, 1)
	depth := MustInterval(1, 11)

	proj := NewProjectionOrthographic(horizontal, vertical, depth)

	corner := proj.MultVec4(NewVector4(2, 1, -11, 1))
	assert.InDelta(t, 1, corner.X, 1e-9)
	assert.InDelta(t, 1, corner.Y, 1e-9)
	assert.InDelta(t, 1, corner.Z, 1e-9)
	assert.InDelta(t, 1, corner.W, 1e-9)

	middle := proj.MultVec4(NewVector4(0, 0, -6, 1))
	assert.InDelta(t, 0, middle.Z, 1e-9)

}

func TestMatrixToQuaternionRoundTrip(t *testing.T) {

	angles := []Angle{Radians(0.25), Degrees(45), Radians(-1.2), Degrees(170)}

	for _, angle := range angles {
		mat := NewMatrix4RotateY(angle)
		quat := NewQuaternionFromMatrix(mat)
		assert.True(t, quat.ToMatrix4().Equals(mat), "round trip failed for angle %v rad", angle.Radians())
	}

	// A half-turn has a zero trace term and exercises the fallback path.
	half := NewMatrix4RotateX(Degrees(180))
	quat := NewQuaternionFromMatrix(half)
	assert.True(t, quat.ToMatrix4().Equals(half))

}

func TestMatrixToQuaternionHalfTurnDiagonalAxis(t *testing.T) {

	// Half-turns about axes off the coordinate axes leave the matrix trace at
	// -1 only up to rounding, so extraction must not trust the fast path there.
	axes := []Vector3{
		NewVector3(1, 1, 0).Unit(),
		NewVector3(1, 1, 1).Unit(),
		NewVector3(-2, 3, 5).Unit(),
	}

	for _, axis := range axes {
		mat := NewMatrix4RotateAxis(axis, Radians(math.Pi))
		quat := mat.ToQuaternion()
		assert.False(t, math.IsNaN(quat.W), "axis %v produced NaN", axis)
		assert.InDelta(t, 1, quat.Norm(), 1e-9, "axis %v produced a non-unit quaternion", axis)
		assert.True(t, quat.ToMatrix4().Equals(mat), "round trip failed for axis %v", axis)
	}

}

func TestMatrixAddSubScale(t *testing.T) {

	a := NewMatrix4Scale(NewVector3(2, 2, 2))
	b := NewMatrix4()

	assert.True(t, a.Sub(b).Add(b).Equals(a))

	doubled := b.Scale(2)
	assert.Equal(t, 2.0, doubled[0][0])
	assert.Equal(t, 2.0, doubled[3][3])

}

func TestMatrixEqualsTolerance(t *testing.T) {

	a := NewMatrix4()
	b := NewMatrix4()
	b[1][1] += 1e-9

	assert.True(t, a.Equals(b))

	b[1][1] += 1
	assert.False(t, a.Equals(b))
	assert.False(t, b.IsIdentity())

}

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4RotateAxis(NewVector3(0, 1, 0.2), Radians(0.24)).Mult(NewMatrix4Translate(NewVector3(1, 4, -12)))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func BenchmarkMatrixMult(b *testing.B) {

	b.ReportAllocs()

	m1 := NewMatrix4RotateX(Radians(0.5))
	m2 := NewMatrix4Translate(NewVector3(1, 2, 3))

	for i := 0; i < b.N; i++ {
		m1 = m1.Mult(m2)
	}

	_ = math.Abs(m1[0][0])

}
