package tween

// Direction is the side of an oscillator currently being driven.
type Direction int

const (
	// Rising is the initial direction: the rising tween is active.
	Rising Direction = iota
	// Falling means the falling tween is active.
	Falling
)

func (d Direction) String() string {
	if d == Falling {
		return "falling"
	}
	return "rising"
}

// Oscillator bounces between a rising and a falling Tweener. Each Update
// advances only the active side; the step that completes the active side
// emits its final value, flips the direction, and resets the side that just
// completed so it is ready for its next turn. An oscillator never exhausts.
type Oscillator[V, T Number] struct {
	rising    *Tweener[V, T]
	falling   *Tweener[V, T]
	direction Direction
}

// NewOscillator wraps a rising tweener, deriving the falling side as the
// time-reverse of its tween. The oscillator becomes the sole owner of the
// tweener; if it is already complete it is reset.
func NewOscillator[V, T Number](rising *Tweener[V, T]) *Oscillator[V, T] {
	return NewOscillatorWith(rising, New(Reverse(rising.tween)))
}

// NewOscillatorWith wraps an explicit rising/falling pair, allowing
// piece-wise oscillations. Both tweeners are reset and owned exclusively by
// the oscillator afterwards.
func NewOscillatorWith[V, T Number](rising, falling *Tweener[V, T]) *Oscillator[V, T] {
	rising.reset()
	falling.reset()
	return &Oscillator[V, T]{rising: rising, falling: falling, direction: Rising}
}

// Direction is the currently active side. It already reflects a flip caused
// by the most recent Update.
func (o *Oscillator[V, T]) Direction() Direction {
	return o.direction
}

// Update drives the active side forward by delta and returns its value. It
// always produces a value.
func (o *Oscillator[V, T]) Update(delta T) V {
	active := o.rising
	if o.direction == Falling {
		active = o.falling
	}

	v, _ := active.Update(delta)

	if active.fused {
		active.reset()
		o.flip()
	}
	return v
}

func (o *Oscillator[V, T]) flip() {
	if o.direction == Rising {
		o.direction = Falling
	} else {
		o.direction = Rising
	}
}

// FixedOscillator is the fixed-delta counterpart of Oscillator: each Next
// advances the active side by its own fixed delta.
type FixedOscillator[V, T Number] struct {
	rising    *FixedTweener[V, T]
	falling   *FixedTweener[V, T]
	direction Direction
}

// NewFixedOscillator wraps a rising fixed tweener, deriving the falling side
// as the time-reverse of its tween, driven by the same delta. The oscillator
// becomes the sole owner; an already complete tweener is reset.
func NewFixedOscillator[V, T Number](rising *FixedTweener[V, T]) *FixedOscillator[V, T] {
	return NewFixedOscillatorWith(rising, NewFixed(Reverse(rising.tween), rising.delta))
}

// NewFixedOscillatorWith wraps an explicit rising/falling pair; the two
// sides may use different deltas. Both tweeners are reset and owned
// exclusively by the oscillator afterwards.
func NewFixedOscillatorWith[V, T Number](rising, falling *FixedTweener[V, T]) *FixedOscillator[V, T] {
	rising.reset()
	falling.reset()
	return &FixedOscillator[V, T]{rising: rising, falling: falling, direction: Rising}
}

// Direction is the currently active side.
func (o *FixedOscillator[V, T]) Direction() Direction {
	return o.direction
}

// Next advances the active side by its fixed delta and returns its value.
// The sequence never exhausts.
func (o *FixedOscillator[V, T]) Next() V {
	active := o.rising
	if o.direction == Falling {
		active = o.falling
	}

	v, _ := active.Next()

	if active.fused {
		active.reset()
		o.flip()
	}
	return v
}

func (o *FixedOscillator[V, T]) flip() {
	if o.direction == Rising {
		o.direction = Falling
	} else {
		o.direction = Rising
	}
}
