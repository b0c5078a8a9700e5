package tween

// Looper repeats a Tweener forever: whenever the inner fuse has tripped, the
// next Update resets the inner driver to time zero before advancing. The
// output is periodic with period equal to the tween's duration, and the
// boundary value appears exactly once per cycle.
type Looper[V, T Number] struct {
	inner *Tweener[V, T]
}

// NewLooper wraps a Tweener. The looper becomes the sole owner; an already
// exhausted tweener is simply restarted on the first Update.
func NewLooper[V, T Number](inner *Tweener[V, T]) *Looper[V, T] {
	return &Looper[V, T]{inner: inner}
}

// Update drives the looper forward by delta. It always produces a value;
// the only termination is the caller no longer calling.
func (l *Looper[V, T]) Update(delta T) V {
	if l.inner.fused {
		l.inner.reset()
	}
	v, _ := l.inner.Update(delta)
	return v
}

// FixedLooper repeats a FixedTweener forever, producing an infinite
// fixed-step sequence with the same per-cycle shape as the inner tweener.
type FixedLooper[V, T Number] struct {
	inner *FixedTweener[V, T]
}

// NewFixedLooper wraps a FixedTweener. The looper becomes the sole owner.
func NewFixedLooper[V, T Number](inner *FixedTweener[V, T]) *FixedLooper[V, T] {
	return &FixedLooper[V, T]{inner: inner}
}

// Next advances by the inner delta and returns the next value. The sequence
// never exhausts.
func (l *FixedLooper[V, T]) Next() V {
	if l.inner.fused {
		l.inner.reset()
	}
	v, _ := l.inner.Next()
	return v
}
