package spatial

// spatial is a self-contained 3D spatial-math library: vectors, angles,
// 4x4 transformation matrices, and quaternions, along with the conversions
// and interpolation operations between them. Matrices can be exported as a
// flat column-major sequence of 16 values, which is the layout a standard
// graphics API expects for uniform uploads; everything else is plain value
// types that are safe to share between goroutines.

// VecX represents a unit vector in the global direction of +X on the right-handed OpenGL coordinate system (right).
var VecX = NewVector3(1, 0, 0)

// VecY represents a unit vector in the global direction of +Y on the right-handed OpenGL coordinate system (upwards).
var VecY = NewVector3(0, 1, 0)

// VecZ represents a unit vector in the global direction of +Z on the right-handed OpenGL coordinate system (backwards, towards you).
var VecZ = NewVector3(0, 0, 1)

// epsilon is the floating point slack used by the Equals methods in this package.
const epsilon = 1e-8
