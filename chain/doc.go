// Package chain composes keypads into a relay: a numeric door keypad driven
// by a robot, driven by Layers robots on directional keypads, driven by a
// human on one more directional keypad.
//
// Expand turns target keys into the presses that type them on one keypad.
// Chain.Sequence applies Expand once on the numeric keypad and then once per
// directional layer, producing the literal outermost press sequence.
// Chain.Length returns the size of that sequence without building it, by
// memoising the cost of every (from, to, depth) step, so deep chains such as
// 25 layers stay cheap.
//
// Solve scores a batch of codes with a bounded worker pool and sums the
// results. Logging goes through swamp/logging; counters live in Metrics.
package chain
