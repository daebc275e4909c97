package math

// Blendable is implemented by every value type an animation track can hold.
// The interpolation engine builds Linear, Bezier and Hermite curves out of
// these two primitives only.
type Blendable[T any] interface {
	Add(other T) T
	Scale(s float32) T
}

// Lerp returns a + (b-a)*t using the Blendable primitives.
func Lerp[T Blendable[T]](a, b T, t float32) T {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Bezier evaluates a cubic Bezier curve with control points p1 and p2.
func Bezier[T Blendable[T]](p0, p1, p2, p3 T, t float32) T {
	inv := 1 - t
	f0 := inv * inv * inv
	f1 := 3 * t * inv * inv
	f2 := 3 * t * t * inv
	f3 := t * t * t
	return p0.Scale(f0).Add(p1.Scale(f1)).Add(p2.Scale(f2)).Add(p3.Scale(f3))
}

// Hermite evaluates a cubic Hermite spline from p0 to p1 with slopes m0 and m1.
func Hermite[T Blendable[T]](p0, m0, m1, p1 T, t float32) T {
	t2 := t * t
	f0 := t2*(2*t-3) + 1
	f1 := t2*(t-2) + t
	f2 := t2 * (t - 1)
	f3 := t2 * (3 - 2*t)
	return p0.Scale(f0).Add(m0.Scale(f1)).Add(m1.Scale(f2)).Add(p1.Scale(f3))
}
