package scaleprofile

import "gonum.org/v1/gonum/stat"

// SlopeFromMeaningfulScales refines the profile slope with an ordinary
// least-squares linear fit of y against x.
//
// It runs MeaningfulScales with the given options (use
// DefaultSlopeOptions for the canonical MinWidth=2). When at least one
// interval is found, the fit is restricted to the first interval's
// point range and found is true. Otherwise the whole curve is fitted
// and found is false: the caller learns that no meaningful interval
// exists but still receives a best-effort global slope.
//
// Returns ErrInsufficientPoints when the fit range holds fewer than two
// distinct x values, plus any Values error.
func (p *Profile) SlopeFromMeaningfulScales(opts Options) (found bool, slope float64, err error) {
	xs, ys, err := p.Values()
	if err != nil {
		return false, 0, err
	}

	lo, hi := 0, len(xs) // fallback: the entire curve
	intervals := meaningfulIntervals(xs, ys, opts, nil)
	if len(intervals) > 0 {
		found = true
		lo, hi = intervals[0].Start, intervals[0].End+1
	}

	slope, err = fitSlope(xs[lo:hi], ys[lo:hi])
	if err != nil {
		return false, 0, err
	}

	return found, slope, nil
}

// fitSlope returns the ordinary least-squares slope of y against x.
func fitSlope(xs, ys []float64) (float64, error) {
	if distinct(xs) < 2 {
		return 0, ErrInsufficientPoints
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)

	return beta, nil
}

// distinct counts the distinct values of a sorted-or-not slice; it only
// needs to distinguish "fewer than two", so a linear scan against the
// first element suffices.
func distinct(xs []float64) int {
	if len(xs) == 0 {
		return 0
	}
	for _, x := range xs[1:] {
		if x != xs[0] {
			return 2
		}
	}

	return 1
}
