package spatial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// QuaternionTween animates a rotation from a starting Quaternion to an ending
// Quaternion over a duration, with the interpolation parameter shaped by an
// easing function. The tween drives Slerp, so the rotation follows the shorter
// great-circle arc throughout.
type QuaternionTween struct {
	start Quaternion
	end   Quaternion
	tween *gween.Tween
}

// NewQuaternionTween creates a QuaternionTween from start to end over the
// duration given (in whatever time unit the caller advances Update with),
// using the provided easing function (e.g. ease.Linear, ease.InOutQuad).
func NewQuaternionTween(start, end Quaternion, duration float32, easing ease.TweenFunc) *QuaternionTween {
	return &QuaternionTween{
		start: start,
		end:   end,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the current interpolated
// rotation, along with whether the tween has finished. After finishing, the
// ending Quaternion is returned.
func (qt *QuaternionTween) Update(dt float32) (Quaternion, bool) {
	percent, finished := qt.tween.Update(dt)
	return qt.start.Slerp(qt.end, float64(percent)), finished
}

// Reset rewinds the tween to its starting rotation.
func (qt *QuaternionTween) Reset() {
	qt.tween.Reset()
}

// Vector3Tween animates a position from a starting Vector3 to an ending
// Vector3 over a duration, with the interpolation parameter shaped by an
// easing function.
type Vector3Tween struct {
	start Vector3
	end   Vector3
	tween *gween.Tween
}

// NewVector3Tween creates a Vector3Tween from start to end over the duration
// given, using the provided easing function.
func NewVector3Tween(start, end Vector3, duration float32, easing ease.TweenFunc) *Vector3Tween {
	return &Vector3Tween{
		start: start,
		end:   end,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the current interpolated
// position, along with whether the tween has finished.
func (vt *Vector3Tween) Update(dt float32) (Vector3, bool) {
	percent, finished := vt.tween.Update(dt)
	return vt.start.Lerp(vt.end, float64(percent)), finished
}

// Reset rewinds the tween to its starting position.
func (vt *Vector3Tween) Reset() {
	vt.tween.Reset()
}
