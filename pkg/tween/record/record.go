package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/tween3/pkg/tween"
)

// Recording is an immutable capture of a driver's output sequence, tagged
// with a unique id and its creation time (UTC).
type Recording[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	values    []V
}

func newRecording[V any](values []V) Recording[V] {
	return Recording[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		values:    values,
	}
}

// Capture drains a fixed tweener into a recording. The tweener is exhausted
// afterwards; wrap infinite producers with Sample instead.
func Capture[V, T tween.Number](src *tween.FixedTweener[V, T]) Recording[V] {
	var values []V
	for v := range src.Values() {
		values = append(values, v)
	}
	return newRecording(values)
}

// Sample takes n pulls from a producer, such as the Next method of a
// FixedLooper or FixedOscillator.
func Sample[V any](n int, next func() V) Recording[V] {
	values := make([]V, 0, n)
	for range n {
		values = append(values, next())
	}
	return newRecording(values)
}

// Values returns the captured sequence in emission order.
func (r Recording[V]) Values() []V {
	return r.values
}

// Len is the number of captured values.
func (r Recording[V]) Len() int {
	return len(r.values)
}

// Id identifies this recording.
func (r Recording[V]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the capture time (UTC).
func (r Recording[V]) CreatedAt() time.Time {
	return r.createdAt
}
