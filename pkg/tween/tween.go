package tween

import (
	"golang.org/x/exp/constraints"
)

// Number bounds both the interpolated value and the time axis: any integer
// or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tween is a stateless easing capability. Run maps an elapsed time in
// [0, Duration()) to an interpolated value; callers must check completion
// with Complete before calling Run — a driver never calls Run once the
// elapsed time has reached the duration, it substitutes FinalValue.
type Tween[V, T Number] interface {
	// Duration is the total time the tween spans.
	Duration() T
	// Run returns the interpolated value at elapsed time.
	Run(elapsed T) V
	// FinalValue returns the value the tween rests at on completion.
	FinalValue() V
}

// Percent returns elapsed as a fraction of duration.
func Percent[T Number](elapsed, duration T) float64 {
	return float64(elapsed) / float64(duration)
}

// Scale multiplies v by a floating-point factor, truncating toward zero for
// integer value types.
func Scale[V Number](v V, factor float64) V {
	return V(float64(v) * factor)
}

// Complete reports whether elapsed has met or exceeded duration. The
// boundary counts as complete, so a zero-duration tween is complete on its
// first step.
func Complete[T Number](elapsed, duration T) bool {
	return elapsed >= duration
}

type reversed[V, T Number] struct {
	inner Tween[V, T]
}

// Reverse returns the time-reversed counterpart of a tween: it plays the
// inner curve backwards over the same duration, ending where the inner
// tween starts. The inner tween is wrapped, not mutated, so the original
// stays independently usable.
func Reverse[V, T Number](inner Tween[V, T]) Tween[V, T] {
	return reversed[V, T]{inner: inner}
}

func (r reversed[V, T]) Duration() T {
	return r.inner.Duration()
}

func (r reversed[V, T]) Run(elapsed T) V {
	return r.inner.Run(r.inner.Duration() - elapsed)
}

func (r reversed[V, T]) FinalValue() V {
	var zero T
	return r.inner.Run(zero)
}
