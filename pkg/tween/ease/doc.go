// Package ease implements the standard easing-curve catalogue as tween
// capabilities: Linear plus the Quad, Cubic, Quart, Quint, Sine, Circ, Expo,
// Back, Elastic and Bounce families, each with In, Out and InOut variants.
//
// Every curve is a stateless scalar function mapping a completion fraction
// to an eased fraction (the easings.net forms); a constructor binds a curve
// to a start value, an end value and a duration, returning a tween.Tween for
// any numeric value and time types. Custom accepts a user-supplied Curve.
package ease
