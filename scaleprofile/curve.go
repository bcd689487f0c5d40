package scaleprofile

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/multiscale/stats"
)

// Values builds the log–log profile curve: for every scale index i,
//
//	x[i] = ln(scale[i])
//	y[i] = ln(reduce(stats[i], mode))
//
// in scale order. The reduction is selected with SetMode (Mean by
// default); Median requires retained samples or medians cached by
// StopStatsSaving.
//
// All-or-nothing: a degenerate index fails the whole call and the
// profile is left untouched. Errors (wrapped with the failing index,
// match with errors.Is):
//   - ErrNotInitialized — Init has not been called.
//   - ErrEmptyStatistic — an accumulator holds no samples.
//   - ErrNonPositiveValue — a reduction is ≤ 0, its log is undefined.
//   - stats.ErrMedianUnavailable — Median mode without retained or
//     cached samples.
func (p *Profile) Values() (xs, ys []float64, err error) {
	if !p.IsValid() {
		return nil, nil, ErrNotInitialized
	}

	xs = make([]float64, len(p.scales))
	ys = make([]float64, len(p.scales))
	for i, st := range p.stats {
		v, err := reduce(st, p.mode)
		if err != nil {
			return nil, nil, fmt.Errorf("scale index %d: %w", i, err)
		}
		if !(v > 0) {
			return nil, nil, fmt.Errorf("scale index %d (%g): %w", i, v, ErrNonPositiveValue)
		}
		xs[i] = math.Log(p.scales[i])
		ys[i] = math.Log(v)
	}

	return xs, ys, nil
}

// reduce collapses one accumulator to a scalar under the given mode.
func reduce(st *stats.Statistic, mode Mode) (float64, error) {
	if st.Count() == 0 {
		return 0, ErrEmptyStatistic
	}

	var (
		v   float64
		err error
	)
	switch mode {
	case Max:
		v, err = st.Max()
	case Min:
		v, err = st.Min()
	case Median:
		v, err = st.Median()
	default: // Mean
		v, err = st.Mean()
	}
	if err != nil {
		// Count was checked above, so the only reachable failure here is
		// a median without retained or cached samples.
		if errors.Is(err, stats.ErrNoSamples) {
			return 0, ErrEmptyStatistic
		}

		return 0, err
	}

	return v, nil
}
