package tween

// Tweener drives a tween with variable deltas: each Update call advances the
// elapsed time by the delta you pass in, which suits loops that run as fast
// as they can and measure real frame times. For a fixed-step loop see
// FixedTweener.
//
// The step where the elapsed time first meets or exceeds the duration yields
// FinalValue exactly once, however far the delta overshoots; after that the
// fuse is tripped and every Update reports no value. A Tweener does not
// reset itself — wrap it in a Looper or Oscillator for repetition.
//
// Negative deltas are the caller's responsibility and are not checked.
type Tweener[V, T Number] struct {
	tween    Tween[V, T]
	lastTime T
	fused    bool
}

// New creates a Tweener owning the given tween.
func New[V, T Number](tw Tween[V, T]) *Tweener[V, T] {
	return &Tweener[V, T]{tween: tw}
}

// Update drives the tweener forward by delta.
//
// It returns the interpolated value and true while the tween is running,
// FinalValue and true on the completing step, and the zero value and false
// forever after.
func (t *Tweener[V, T]) Update(delta T) (V, bool) {
	if t.fused {
		var zero V
		return zero, false
	}

	t.lastTime += delta

	if Complete(t.lastTime, t.tween.Duration()) {
		t.fused = true
		t.lastTime = t.tween.Duration()
		return t.tween.FinalValue(), true
	}
	return t.tween.Run(t.lastTime), true
}

// Looper converts this tweener into a Looper. The tweener must not be used
// afterwards; the looper becomes its sole owner.
func (t *Tweener[V, T]) Looper() *Looper[V, T] {
	return NewLooper(t)
}

// Oscillator converts this tweener into an Oscillator, deriving the falling
// side as the time-reverse of the owned tween. The tweener must not be used
// afterwards.
func (t *Tweener[V, T]) Oscillator() *Oscillator[V, T] {
	return NewOscillator(t)
}

// OscillatorWith converts this tweener and an explicit falling tweener into
// an Oscillator. Arbitrary rising/falling pairs allow piece-wise curves.
// Neither tweener may be used afterwards.
func (t *Tweener[V, T]) OscillatorWith(falling *Tweener[V, T]) *Oscillator[V, T] {
	return NewOscillatorWith(t, falling)
}

func (t *Tweener[V, T]) reset() {
	var zero T
	t.lastTime = zero
	t.fused = false
}
