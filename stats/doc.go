// Package stats implements a mergeable sample accumulator for
// multiscale analysis.
//
// A Statistic folds floating-point samples into running aggregates:
// count, mean and variance (Welford's algorithm), minimum and maximum.
// Two accumulators can be merged with bag-union semantics, so per-scale
// statistics may be built independently and combined later.
//
// Retention mode:
//
//	Order statistics (the median) need the raw samples. A Statistic is
//	constructed either retaining or discarding them:
//
//	  st := stats.New(true)   // keep raw samples, Median() available
//	  st := stats.New(false)  // moments only, Median() unavailable
//
//	Once all samples are in, TerminateStorage() computes and caches the
//	median, releases the sample slice and switches the accumulator to
//	the non-retaining mode. The transition is explicit and idempotent;
//	retention never changes silently, with one documented exception:
//	merging in a non-retaining, non-empty Statistic makes an exact
//	median impossible, so the receiver drops retention (unless a median
//	is already cached).
//
// Degenerate inputs are reported, never coerced: Mean/Min/Max/Median on
// an empty accumulator return ErrNoSamples, Median without retained or
// cached samples returns ErrMedianUnavailable.
package stats
