package math

// Float is a scalar animated value.
type Float float32

// Add returns f + other.
func (f Float) Add(other Float) Float {
	return f + other
}

// Scale returns f * s.
func (f Float) Scale(s float32) Float {
	return Float(float32(f) * s)
}
