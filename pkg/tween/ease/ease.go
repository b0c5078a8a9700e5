package ease

import (
	"github.com/ib-77/tween3/pkg/tween"
)

// eased binds a scalar curve to a start value, a value delta and a duration,
// forming a tween capability: Run scales the delta by the eased completion
// fraction and offsets it from the start value.
type eased[V, T tween.Number] struct {
	start    V
	delta    V
	duration T
	curve    Curve
}

// Custom builds a tween over a user-supplied curve, moving from start to end
// across duration.
func Custom[V, T tween.Number](curve Curve, start, end V, duration T) tween.Tween[V, T] {
	return &eased[V, T]{
		start:    start,
		delta:    end - start,
		duration: duration,
		curve:    curve,
	}
}

func (e *eased[V, T]) Duration() T {
	return e.duration
}

func (e *eased[V, T]) Run(elapsed T) V {
	p := tween.Percent(elapsed, e.duration)
	return e.start + tween.Scale(e.delta, e.curve(p))
}

func (e *eased[V, T]) FinalValue() V {
	return e.start + e.delta
}

// Linear moves from start to end at constant speed.
func Linear[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(linear, start, end, duration)
}

// QuadIn accelerates quadratically from rest.
func QuadIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quadIn, start, end, duration)
}

// QuadOut decelerates quadratically to rest.
func QuadOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quadOut, start, end, duration)
}

// QuadInOut accelerates in, decelerates out.
func QuadInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quadInOut, start, end, duration)
}

// CubicIn accelerates cubically from rest.
func CubicIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(cubicIn, start, end, duration)
}

// CubicOut decelerates cubically to rest.
func CubicOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(cubicOut, start, end, duration)
}

// CubicInOut accelerates in, decelerates out.
func CubicInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(cubicInOut, start, end, duration)
}

// QuartIn accelerates quartically from rest.
func QuartIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quartIn, start, end, duration)
}

// QuartOut decelerates quartically to rest.
func QuartOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quartOut, start, end, duration)
}

// QuartInOut accelerates in, decelerates out.
func QuartInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quartInOut, start, end, duration)
}

// QuintIn accelerates quintically from rest.
func QuintIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quintIn, start, end, duration)
}

// QuintOut decelerates quintically to rest.
func QuintOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quintOut, start, end, duration)
}

// QuintInOut accelerates in, decelerates out.
func QuintInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(quintInOut, start, end, duration)
}

// SineIn eases in along a quarter sine wave.
func SineIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(sineIn, start, end, duration)
}

// SineOut eases out along a quarter sine wave.
func SineOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(sineOut, start, end, duration)
}

// SineInOut eases in and out along a half sine wave.
func SineInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(sineInOut, start, end, duration)
}

// CircIn eases in along a quarter circle.
func CircIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(circIn, start, end, duration)
}

// CircOut eases out along a quarter circle.
func CircOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(circOut, start, end, duration)
}

// CircInOut eases in and out along circular arcs.
func CircInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(circInOut, start, end, duration)
}

// ExpoIn eases in exponentially.
func ExpoIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(expoIn, start, end, duration)
}

// ExpoOut eases out exponentially.
func ExpoOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(expoOut, start, end, duration)
}

// ExpoInOut eases in and out exponentially.
func ExpoInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(expoInOut, start, end, duration)
}

// BackIn pulls back past the start before moving; undershoots 0.
func BackIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(backIn, start, end, duration)
}

// BackOut overshoots the end before settling; overshoots 1.
func BackOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(backOut, start, end, duration)
}

// BackInOut pulls back and overshoots on the way through.
func BackInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(backInOut, start, end, duration)
}

// ElasticIn springs in with a damped oscillation.
func ElasticIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(elasticIn, start, end, duration)
}

// ElasticOut springs out with a damped oscillation.
func ElasticOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(elasticOut, start, end, duration)
}

// ElasticInOut springs on both ends.
func ElasticInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(elasticInOut, start, end, duration)
}

// BounceIn bounces toward the start of the motion.
func BounceIn[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(bounceIn, start, end, duration)
}

// BounceOut bounces at the end of the motion.
func BounceOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(bounceOut, start, end, duration)
}

// BounceInOut bounces on both ends.
func BounceInOut[V, T tween.Number](start, end V, duration T) tween.Tween[V, T] {
	return Custom(bounceInOut, start, end, duration)
}
