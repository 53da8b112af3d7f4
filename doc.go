// Package motion describes and evaluates values that change over time. It
// is meant to be driven by rendering and UI loops that sample a value once
// per frame, but it never reads a clock itself: every operation is a pure
// function of a time value supplied by the caller.
//
// # Keyframes and animations
//
// [Keyframes] describe a trajectory independently of when it is played. They
// start with a value ([Seed]) and are extended by segments, each of which
// moves to a target over a duration, shaped by a [Curve]. Keyframes are
// immutable and can be composed: they can be repeated ([Keyframes.Repeat]),
// sliced ([Keyframes.Slice]), reversed, scaled, sequenced ([Sequence]), played
// side by side ([Join]) and nested ([Flatten]).
//
// [Run] binds keyframes to a start time, producing an [Animation]. Evaluating
// an animation before its start or after its end extrapolates the first and
// last segments, so curves that overshoot keep doing so.
//
// # Following a target
//
// [Inertial] models a value that follows a target that may change at any
// time. Retargeting starts a new transition from wherever the value is at
// that moment, so the value never jumps.
//
// # Values and time
//
// Values of any type can be animated, given a [BlendFunc] that interpolates
// between two of them. The package provides blend functions for numbers
// ([Float], [Integer]), for types with a Lerp method ([Lerp]), for values
// without intermediate states ([Discrete]) and for combinations of those
// ([BlendPair], [BlendSlice], [BlendOptional]).
//
// Time is represented by any type satisfying [Instant], notably [time.Time]
// and [Seconds]. Durations are always [time.Duration].
//
// # Curves
//
// [Curve] reshapes the progress of a segment. Besides [Linear], the package
// provides the usual families of easing functions in In, Out and InOut modes,
// [Steps], CSS-style [CubicBezier] curves, curves defined by samples
// ([Tabular]) and damped springs ([Spring]).
//
// Every curve maps 0 to 0 and 1 to 1. Outside of [0, 1], curves extrapolate:
// analytic curves use their closed forms, Bézier curves continue along their
// boundary tangents and tabular curves clamp.
//
// # Paths
//
// [Path] traverses a sequence of lines and curves at constant speed, by
// measuring the path's length once and inverting the distance table on every
// query. [PointPath] builds paths from Bézier paths made of [PathElement]
// values; [NewPathBuilder] and [Polyline] build paths over any point type.
//
// # Errors
//
// Using a combinator incorrectly, such as repeating a timeline that never
// ends, is a programming error and causes a panic with a [*CombinatorError].
// Evaluating anything at any time never panics.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [CSS Easing Functions Level 1]
//   - [Easing Functions Cheat Sheet]
//   - [A Primer on Bézier Curves]
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [CSS Easing Functions Level 1]: https://www.w3.org/TR/css-easing-1/
// [Easing Functions Cheat Sheet]: https://easings.net/
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package motion
