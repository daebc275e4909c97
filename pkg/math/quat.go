package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return QuatFromMgl(mgl32.QuatRotate(angle, axis.Mgl()))
}

// Add returns the component-wise sum. Together with Scale it lets rotation
// tracks share the generic curve formulas; the result is not normalized.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Scale returns the component-wise product with s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.Dot(q))))
	if length < 0.0001 {
		return QuatIdentity()
	}
	return q.Scale(1 / length)
}

// Slerp performs spherical linear interpolation between two quaternions,
// taking the shorter arc. t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	if q.Dot(other) < 0 {
		other = other.Scale(-1)
	}
	return QuatFromMgl(mgl32.QuatSlerp(q.Mgl(), other.Mgl(), t))
}

// Mgl converts to an mgl32 quaternion.
func (q Quat) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Mat4 returns the rotation matrix of the normalized quaternion.
func (q Quat) Mat4() mgl32.Mat4 {
	return q.Normalize().Mgl().Mat4()
}

// QuatFromMgl converts from an mgl32 quaternion.
func QuatFromMgl(q mgl32.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
