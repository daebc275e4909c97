package mdlx

import (
	"cmp"
	"fmt"
	stdmath "math"
	"slices"

	"github.com/Faultbox/mdlx/pkg/math"
)

// Interpolation selects how values between two keyframes are computed. The
// numbering follows the file formats.
type Interpolation int32

const (
	InterpolationStep Interpolation = iota
	InterpolationLinear
	InterpolationHermite
	InterpolationBezier
)

// String returns the interpolation name as written in the text format.
func (i Interpolation) String() string {
	switch i {
	case InterpolationStep:
		return "DontInterp"
	case InterpolationLinear:
		return "Linear"
	case InterpolationHermite:
		return "Hermite"
	case InterpolationBezier:
		return "Bezier"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(i))
	}
}

// HasTangents reports whether keyframes carry in and out tangents.
func (i Interpolation) HasTangents() bool {
	return i == InterpolationHermite || i == InterpolationBezier
}

// Interval is a closed time range in milliseconds.
type Interval struct {
	Start int32
	End   int32
}

// Duration returns End - Start.
func (iv Interval) Duration() int32 { return iv.End - iv.Start }

// Contains reports whether t lies in [Start, End].
func (iv Interval) Contains(t int32) bool { return t >= iv.Start && t <= iv.End }

// Keyframe is one sample of an animated value. Tangents are only
// meaningful for Hermite and Bezier tracks.
type Keyframe[T any] struct {
	Time   int32
	Value  T
	InTan  T
	OutTan T
}

// animatorState is swapped as a whole by field commands so a track edit is
// undone in one step.
type animatorState[T any] struct {
	static        bool
	value         T
	interpolation Interpolation
	keyframes     []Keyframe[T]
}

// Animator holds one animatable attribute: either a static value or a
// time-sorted track of keyframes with unique times.
type Animator[T math.Blendable[T]] struct {
	model          *Model
	name           string
	defaultValue   T
	state          animatorState[T]
	globalSequence *Reference[*GlobalSequence]
}

// NewAnimator creates a static animator holding def. def is also the value
// returned when a query has no lower keyframe.
func NewAnimator[T math.Blendable[T]](m *Model, name string, def T) *Animator[T] {
	return &Animator[T]{
		model:          m,
		name:           name,
		defaultValue:   def,
		state:          animatorState[T]{static: true, value: def},
		globalSequence: NewReference[*GlobalSequence](m),
	}
}

// Name returns the attribute name.
func (a *Animator[T]) Name() string { return a.name }

// Default returns the fallback value.
func (a *Animator[T]) Default() T { return a.defaultValue }

// IsStatic reports whether the animator holds a single value.
func (a *Animator[T]) IsStatic() bool { return a.state.static }

// Value returns the static value. For animated tracks it returns the default.
func (a *Animator[T]) Value() T {
	if a.state.static {
		return a.state.value
	}
	return a.defaultValue
}

// Interpolation returns the interpolation mode of an animated track.
func (a *Animator[T]) Interpolation() Interpolation { return a.state.interpolation }

// GlobalSequence returns the optional global sequence link.
func (a *Animator[T]) GlobalSequence() *Reference[*GlobalSequence] { return a.globalSequence }

// GlobalSequenceId returns the linked global sequence's ObjectId, or InvalidId.
func (a *Animator[T]) GlobalSequenceId() ObjectId { return a.globalSequence.TargetObjectId() }

// Len returns the number of keyframes.
func (a *Animator[T]) Len() int { return len(a.state.keyframes) }

// Keyframes returns the track in time order. The slice is a copy.
func (a *Animator[T]) Keyframes() []Keyframe[T] {
	return slices.Clone(a.state.keyframes)
}

// MakeStatic discards any track and holds v.
func (a *Animator[T]) MakeStatic(v T) {
	setField(a.model, a.name, &a.state, animatorState[T]{static: true, value: v})
}

// MakeAnimated switches to an empty track with the given interpolation.
func (a *Animator[T]) MakeAnimated(mode Interpolation) {
	setField(a.model, a.name, &a.state, animatorState[T]{interpolation: mode})
}

// SetInterpolation changes the mode of an animated track.
func (a *Animator[T]) SetInterpolation(mode Interpolation) error {
	if a.state.static {
		return ErrStaticAnimator
	}
	next := a.state
	next.interpolation = mode
	setField(a.model, a.name, &a.state, next)
	return nil
}

// Insert adds kf, keeping the track sorted. A keyframe already at kf.Time
// is replaced.
func (a *Animator[T]) Insert(kf Keyframe[T]) error {
	if a.state.static {
		return fmt.Errorf("inserting keyframe into %s: %w", a.name, ErrStaticAnimator)
	}
	keys := slices.Clone(a.state.keyframes)
	i, found := a.search(kf.Time)
	if found {
		keys[i] = kf
	} else {
		keys = slices.Insert(keys, i, kf)
	}
	next := a.state
	next.keyframes = keys
	setField(a.model, a.name, &a.state, next)
	return nil
}

// Remove deletes the keyframe at time t.
func (a *Animator[T]) Remove(t int32) bool {
	i, found := a.search(t)
	if !found {
		return false
	}
	next := a.state
	next.keyframes = slices.Delete(slices.Clone(a.state.keyframes), i, i+1)
	setField(a.model, a.name, &a.state, next)
	return true
}

func (a *Animator[T]) search(t int32) (int, bool) {
	return slices.BinarySearchFunc(a.state.keyframes, t, func(k Keyframe[T], t int32) int {
		return cmp.Compare(k.Time, t)
	})
}

// LowerKeyframe returns the keyframe at t, or the last one before t as long
// as it is not before iv.Start.
func (a *Animator[T]) LowerKeyframe(t int32, iv Interval) (Keyframe[T], bool) {
	i, found := a.search(t)
	if found {
		return a.state.keyframes[i], true
	}
	if i-1 >= 0 && a.state.keyframes[i-1].Time >= iv.Start {
		return a.state.keyframes[i-1], true
	}
	return Keyframe[T]{}, false
}

// UpperKeyframe returns the keyframe at t, or the first one after t as long
// as it is not after iv.End.
func (a *Animator[T]) UpperKeyframe(t int32, iv Interval) (Keyframe[T], bool) {
	i, found := a.search(t)
	if found {
		return a.state.keyframes[i], true
	}
	if i < len(a.state.keyframes) && a.state.keyframes[i].Time <= iv.End {
		return a.state.keyframes[i], true
	}
	return Keyframe[T]{}, false
}

// ValueAt interpolates the track at t without reaching outside iv.
func (a *Animator[T]) ValueAt(t int32, iv Interval) T {
	if a.state.static {
		return a.state.value
	}
	lo, ok := a.LowerKeyframe(t, iv)
	if !ok {
		return a.defaultValue
	}
	hi, ok := a.UpperKeyframe(t, iv)
	if !ok || lo.Time >= hi.Time {
		return lo.Value
	}
	f := float32(t-lo.Time) / float32(hi.Time-lo.Time)
	return interpolate(a.state.interpolation, lo, hi, f)
}

// Sample evaluates the track for an animation sequence. When a global
// sequence with a positive duration is linked, its own time axis is used
// instead: globalTime wraps into [0, duration]. Durations beyond the int32
// key range are clamped to it after wrapping.
func (a *Animator[T]) Sample(seq Interval, t, globalTime int32) T {
	if gs, ok := a.globalSequence.Target(); ok && gs.Duration() > 0 {
		d := int64(gs.Duration())
		local := int64(globalTime) % d
		if local < 0 {
			local += d
		}
		end := min(d, stdmath.MaxInt32)
		return a.ValueAt(int32(min(local, end)), Interval{Start: 0, End: int32(end)})
	}
	return a.ValueAt(t, seq)
}

// interpolate blends two bounding keyframes with 0 < f < 1. Rotation tracks
// use the same component-wise formulas as vectors; no shortest-arc
// correction is applied here.
func interpolate[T math.Blendable[T]](mode Interpolation, lo, hi Keyframe[T], f float32) T {
	switch mode {
	case InterpolationLinear:
		return math.Lerp(lo.Value, hi.Value, f)
	case InterpolationBezier:
		return math.Bezier(lo.Value, lo.OutTan, hi.InTan, hi.Value, f)
	case InterpolationHermite:
		return math.Hermite(lo.Value, lo.OutTan, hi.InTan, hi.Value, f)
	default:
		return lo.Value
	}
}
