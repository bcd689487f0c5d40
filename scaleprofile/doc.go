// Package scaleprofile computes one multiscale noise profile: a
// sequence of statistics on a measured quantity (e.g. digital length)
// parameterized by a scale, and the "noise level" derived from it —
// the smallest analysis scale beyond which the measurement stops
// changing rapidly with scale.
//
// 🚀 What is a scale profile?
//
//	Measure the same location at scales s_1 < s_2 < ... < s_N, fold the
//	per-scale samples into accumulators, and look at the curve
//
//	    ( ln s_i , ln reduce(samples at s_i) )
//
//	For a noisy-but-real feature the curve decays steeply at small
//	scales and flattens once the scale passes the noise; the first
//	flat-enough run of the curve marks where the measurement becomes
//	stable.
//
// ✨ Key operations:
//   - Init / InitCount   — fix the scale sequence, allocate accumulators
//   - AddValue / AddStatistic — feed samples or merge pre-built statistics
//   - Values             — the log–log curve under Mean/Max/Min/Median
//   - MeaningfulScales   — flat-enough intervals: runs of steps with
//     slope within [MinSlope, MaxSlope], at least MinWidth wide
//   - NoiseLevel         — scale at the first interval's start (0 = none)
//   - LowerBoundedNoiseLevel — same, rejecting flatness below an
//     exponential floor lb1·scale^lbSlope
//   - SlopeFromMeaningfulScales — least-squares slope of the first
//     interval, whole-curve fallback
//
// ⚙️ Usage:
//
//	p := scaleprofile.New(scaleprofile.Mean)
//	if err := p.InitCount(10, false); err != nil { ... }
//	for i := 0; i < 10; i++ {
//	    _ = p.AddValue(i, measureAt(i+1))
//	}
//	level, err := p.NoiseLevel(scaleprofile.DefaultOptions())
//	// level == 0 means no stable scale range was found
//
// Every degenerate input (uninitialized profile, empty accumulator,
// non-positive reduction, median without retained samples, fit over a
// single point) surfaces as a sentinel error; an empty interval list is
// a valid outcome, not an error.
//
// Complexity: every operation is a bounded synchronous pass over the N
// configured scales — O(N) for detection, O(N·log N) only when a median
// has to sort retained samples. No goroutines, no I/O.
package scaleprofile
