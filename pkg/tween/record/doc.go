// Package record captures the value sequences emitted by tween drivers for
// inspection in tests and debugging. A Recording is an immutable snapshot
// carrying a unique id and its creation time.
//
// Common usage:
// - Capture: drain a finite FixedTweener into a Recording
// - Sample: take n pulls from an infinite producer (looper, oscillator)
package record
