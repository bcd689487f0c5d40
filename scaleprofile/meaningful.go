package scaleprofile

import "math"

// MeaningfulScales returns the meaningful scale intervals of the
// profile: maximal runs of consecutive curve steps whose signed slope
// stays within [opts.MinSlope, opts.MaxSlope], merged into closed
// point-index intervals and filtered to width ≥ opts.MinWidth.
//
// Intervals come back in ascending start order. An empty result is a
// valid outcome — "no stable scale range found" — not an error; errors
// are only those of Values.
func (p *Profile) MeaningfulScales(opts Options) ([]Interval, error) {
	xs, ys, err := p.Values()
	if err != nil {
		return nil, err
	}

	return meaningfulIntervals(xs, ys, opts, nil), nil
}

// NoiseLevel estimates the noise level of the measured location: the
// scale value (truncated to uint) at the start of the first meaningful
// interval, i.e. the smallest scale at which the measurement becomes
// stable. Returns the sentinel 0 when no interval qualifies; scales are
// strictly positive, so 0 can never be a legitimate level.
func (p *Profile) NoiseLevel(opts Options) (uint, error) {
	intervals, err := p.MeaningfulScales(opts)
	if err != nil {
		return 0, err
	}
	if len(intervals) == 0 {
		return 0, nil
	}

	return uint(p.scales[intervals[0].Start]), nil
}

// LowerBoundedNoiseLevel is NoiseLevel with an additional per-point
// admissibility filter: a point i may participate in an interval only
// while the raw profile stays above the exponential floor
//
//	LowerBoundAtScale1 · scale[i]^LowerBoundSlope
//
// equivalently y[i] ≥ ln(LowerBoundAtScale1) + LowerBoundSlope·x[i] in
// log space. A step is admissible only when both its endpoints are.
// This rejects apparent flatness caused by the measurement decaying
// into a degenerate floor rather than genuinely stabilizing.
//
// Returns the scale at the first surviving interval's start, or the
// sentinel 0 when none is found. ErrBadLowerBound when
// LowerBoundAtScale1 ≤ 0.
func (p *Profile) LowerBoundedNoiseLevel(opts BoundedOptions) (uint, error) {
	if !(opts.LowerBoundAtScale1 > 0) {
		return 0, ErrBadLowerBound
	}
	xs, ys, err := p.Values()
	if err != nil {
		return 0, err
	}

	logBound := math.Log(opts.LowerBoundAtScale1)
	aboveFloor := func(i int) bool {
		return ys[i] >= logBound+opts.LowerBoundSlope*xs[i]
	}

	intervals := meaningfulIntervals(xs, ys, opts.Options, aboveFloor)
	if len(intervals) == 0 {
		return 0, nil
	}

	return uint(p.scales[intervals[0].Start]), nil
}

// meaningfulIntervals scans the curve steps and merges maximal runs of
// acceptable steps into closed point intervals [start, end], keeping
// those with end-start ≥ MinWidth (clamped to 1). A step i is
// acceptable when its slope lies within [MinSlope, MaxSlope] and, when
// an admissibility filter is given, both endpoints pass it. A run of
// steps i..j covers points i..j+1.
//
// Degenerate steps (duplicate scales yield a ±Inf or NaN slope) never
// satisfy the bounds, so they break runs naturally.
func meaningfulIntervals(xs, ys []float64, opts Options, admissible func(i int) bool) []Interval {
	minWidth := opts.MinWidth
	if minWidth < 1 {
		minWidth = 1
	}

	var intervals []Interval
	runStart := -1 // first point of the current run, -1 when outside a run
	for i := 0; i+1 < len(xs); i++ {
		slope := (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
		ok := slope >= opts.MinSlope && slope <= opts.MaxSlope
		if ok && admissible != nil {
			ok = admissible(i) && admissible(i+1)
		}

		if ok {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			// step i broke the run; the last acceptable step was i-1,
			// so the run covers points runStart..i.
			if i-runStart >= minWidth {
				intervals = append(intervals, Interval{Start: runStart, End: i})
			}
			runStart = -1
		}
	}
	if runStart >= 0 {
		end := len(xs) - 1
		if end-runStart >= minWidth {
			intervals = append(intervals, Interval{Start: runStart, End: end})
		}
	}

	return intervals
}
