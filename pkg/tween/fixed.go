package tween

import "iter"

// FixedTweener drives a tween by the same delta on every pull, which suits
// fixed-step update loops: instead of passing a delta per call, you set it
// once and treat the tweener as a finite lazy sequence of values.
//
// Completion follows Tweener exactly: the pull where the elapsed time first
// meets or exceeds the duration yields FinalValue once, after which the
// sequence is exhausted for good.
type FixedTweener[V, T Number] struct {
	tween    Tween[V, T]
	lastTime T
	delta    T
	fused    bool
}

// NewFixed creates a FixedTweener that advances by delta per pull.
func NewFixed[V, T Number](tw Tween[V, T], delta T) *FixedTweener[V, T] {
	return &FixedTweener[V, T]{tween: tw, delta: delta}
}

// Tween allows inspection of the owned tween.
func (f *FixedTweener[V, T]) Tween() Tween[V, T] {
	return f.tween
}

// CurrentTime is the elapsed time so far.
func (f *FixedTweener[V, T]) CurrentTime() T {
	return f.lastTime
}

// Next advances by the fixed delta and returns the next value. It returns
// false once the sequence is exhausted.
func (f *FixedTweener[V, T]) Next() (V, bool) {
	if f.fused {
		var zero V
		return zero, false
	}

	f.lastTime += f.delta

	if Complete(f.lastTime, f.tween.Duration()) {
		f.fused = true
		f.lastTime = f.tween.Duration()
		return f.tween.FinalValue(), true
	}
	return f.tween.Run(f.lastTime), true
}

// Values returns the remaining values as a single-use sequence. Ranging over
// it drains the tweener; it is not restartable after exhaustion.
func (f *FixedTweener[V, T]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := f.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Looper converts this tweener into a FixedLooper. The tweener must not be
// used afterwards; the looper becomes its sole owner.
func (f *FixedTweener[V, T]) Looper() *FixedLooper[V, T] {
	return NewFixedLooper(f)
}

// Oscillator converts this tweener into a FixedOscillator, deriving the
// falling side as the time-reverse of the owned tween, driven by the same
// delta. The tweener must not be used afterwards.
func (f *FixedTweener[V, T]) Oscillator() *FixedOscillator[V, T] {
	return NewFixedOscillator(f)
}

// OscillatorWith converts this tweener and an explicit falling tweener into
// a FixedOscillator. The two sides may use different deltas. Neither tweener
// may be used afterwards.
func (f *FixedTweener[V, T]) OscillatorWith(falling *FixedTweener[V, T]) *FixedOscillator[V, T] {
	return NewFixedOscillatorWith(f, falling)
}

func (f *FixedTweener[V, T]) reset() {
	var zero T
	f.lastTime = zero
	f.fused = false
}
