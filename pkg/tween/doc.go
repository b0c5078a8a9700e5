// Package tween provides stateful drivers that advance an easing curve
// ("tween") over time and compose the resulting value streams. A tween is a
// stateless capability mapping elapsed time to a value; the drivers own the
// time bookkeeping and the completion semantics.
//
// Key operations:
// - New/Update: drive a tween with variable per-call deltas
// - NewFixed/Next/Values: drive a tween with a constant delta, as a lazy sequence
// - Looper: repeat a driver forever, resetting it on each completion
// - Oscillator: bounce between a rising and a falling driver
// - NewChain: sequence several tweens end-to-end on one timeline
// - Join: concatenate tweens into a single composable capability
//
// Every driver is a value-type state machine with exclusive ownership of its
// tween: no goroutines, no channels, no internal locking. Confine each
// instance to one logical owner at a time.
//
// Curve implementations live in package ease; sequence capture helpers live
// in package record.
package tween
