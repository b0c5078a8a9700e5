package tween

// Chain drives an ordered sequence of tweens as one continuous timeline.
// Each member keeps its own duration; the chain tracks the current member
// and the elapsed time within it. The members need not agree on start/end
// values — discontinuous jumps at member boundaries are a valid use.
//
// A chain is single-shot: it fuses when the last member completes. Wrap a
// Join of the same members in a Looper or Oscillator for repetition.
type Chain[V, T Number] struct {
	tweens  []Tween[V, T]
	index   int
	elapsed T
	fused   bool
}

// NewChain creates a Chain over the given members, in order. It panics when
// no members are given.
func NewChain[V, T Number](tweens ...Tween[V, T]) *Chain[V, T] {
	if len(tweens) == 0 {
		panic("tween: NewChain with no members")
	}
	return &Chain[V, T]{tweens: tweens}
}

// Duration is the total traversal length: the sum of the member durations.
func (c *Chain[V, T]) Duration() T {
	var total T
	for _, tw := range c.tweens {
		total += tw.Duration()
	}
	return total
}

// Update advances the chain by delta.
//
// A step landing exactly on a member boundary emits that member's final
// value; the next member starts from time zero on the following step. A step
// overshooting a boundary carries the overshoot into the next member,
// crossing as many boundaries as the delta spans, and emits the value where
// the timeline comes to rest. When the last member completes the chain
// fuses: that step emits the last member's final value, every later step
// reports no value.
func (c *Chain[V, T]) Update(delta T) (V, bool) {
	if c.fused {
		var zero V
		return zero, false
	}

	c.elapsed += delta

	for {
		current := c.tweens[c.index]
		duration := current.Duration()

		if !Complete(c.elapsed, duration) {
			return current.Run(c.elapsed), true
		}

		if c.index == len(c.tweens)-1 {
			c.fused = true
			c.elapsed = duration
			return current.FinalValue(), true
		}

		overshoot := c.elapsed - duration
		c.index++
		c.elapsed = overshoot

		var zero T
		if overshoot == zero {
			return current.FinalValue(), true
		}
	}
}

type joined[V, T Number] struct {
	tweens []Tween[V, T]
	total  T
}

// Join concatenates tweens into a single stateless capability spanning the
// sum of their durations, so a whole sequence can be handed to any driver or
// wrapped for repetition. It panics when no members are given.
func Join[V, T Number](tweens ...Tween[V, T]) Tween[V, T] {
	if len(tweens) == 0 {
		panic("tween: Join with no members")
	}
	var total T
	for _, tw := range tweens {
		total += tw.Duration()
	}
	return joined[V, T]{tweens: tweens, total: total}
}

func (j joined[V, T]) Duration() T {
	return j.total
}

func (j joined[V, T]) Run(elapsed T) V {
	last := len(j.tweens) - 1
	for _, tw := range j.tweens[:last] {
		if !Complete(elapsed, tw.Duration()) {
			return tw.Run(elapsed)
		}
		elapsed -= tw.Duration()
	}
	return j.tweens[last].Run(elapsed)
}

func (j joined[V, T]) FinalValue() V {
	return j.tweens[len(j.tweens)-1].FinalValue()
}
