// Package multiscale provides local multiscale noise analysis for
// digital measurements — profile a single measured location across a
// sequence of analysis scales and decide at which scale the
// measurement stabilizes.
//
// 🚀 What is multiscale?
//
//	A small, focused library that brings together:
//		• stats/        — a mergeable sample accumulator (count, mean,
//		  variance, extrema, optional raw-sample retention + median)
//		• scaleprofile/ — the log–log scale profile: per-scale statistics,
//		  meaningful-scale interval detection, least-squares slope
//		  estimation and noise-level extraction
//
// ✨ Why choose multiscale?
//
//   - Location-local by design – one Profile per measured site, no
//     hidden global state, trivially parallel across sites
//   - Explicit errors – sentinel errors for every degenerate input,
//     matched with errors.Is; no panics, no silent coercion
//   - Pure computation – no I/O, no goroutines, bounded synchronous
//     calls over at most N scales
//
// Typical flow:
//
//	p := scaleprofile.New(scaleprofile.Mean)
//	_ = p.InitCount(10, false)        // scales 1..10
//	_ = p.AddValue(0, length0)        // feed per-scale measurements
//	...
//	level, err := p.NoiseLevel(scaleprofile.DefaultOptions())
//
// See scaleprofile/doc.go for the algorithm walkthrough and the
// example_test.go files for runnable examples.
package multiscale
