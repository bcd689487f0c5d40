// Package scaleprofile: modes, intervals and option types.
package scaleprofile

// Mode selects how a scale's accumulator is reduced to one scalar when
// building the profile curve (see Profile.Values).
//
//   - Mean   — arithmetic mean of the samples (default)
//   - Max    — largest sample
//   - Min    — smallest sample
//   - Median — empirical median; requires retained samples or a median
//     cached by StopStatsSaving, otherwise Values reports
//     stats.ErrMedianUnavailable
type Mode int

const (
	// Mean reduces each accumulator to its arithmetic mean.
	Mean Mode = iota

	// Max reduces each accumulator to its largest sample.
	Max

	// Min reduces each accumulator to its smallest sample.
	Min

	// Median reduces each accumulator to its empirical median.
	Median
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Mean:
		return "Mean"
	case Max:
		return "Max"
	case Min:
		return "Min"
	case Median:
		return "Median"
	default:
		return "Mode(?)"
	}
}

// Interval is a closed range of point indices [Start, End] on the
// profile curve. An interval spanning steps i..j covers points i..j+1,
// so its width is End-Start.
type Interval struct {
	Start int
	End   int
}

// Width returns End-Start, the number of steps the interval spans.
func (iv Interval) Width() int { return iv.End - iv.Start }

// Options configures meaningful-scale detection.
//
// A step i of the curve is acceptable when its signed slope
// s_i = (y[i+1]-y[i])/(x[i+1]-x[i]) satisfies MinSlope ≤ s_i ≤ MaxSlope:
// a genuinely flattening or controlled-decay step, not near-vertical
// noise and not an upward step. Maximal runs of acceptable steps become
// intervals; those narrower than MinWidth are dropped.
//
//   - MinWidth — minimum interval width (End-Start); values below 1 are
//     treated as 1.
//   - MaxSlope — upper slope bound (e.g. -0.2).
//   - MinSlope — lower slope bound (e.g. -1e10).
type Options struct {
	MinWidth int
	MaxSlope float64
	MinSlope float64
}

// DefaultOptions returns the canonical detection parameters:
// MinWidth=1, MaxSlope=-0.2, MinSlope=-1e10.
func DefaultOptions() Options {
	return Options{MinWidth: 1, MaxSlope: -0.2, MinSlope: -1e10}
}

// DefaultSlopeOptions returns the canonical parameters for
// SlopeFromMeaningfulScales, which requires wider intervals than plain
// detection: MinWidth=2, MaxSlope=-0.2, MinSlope=-1e10.
func DefaultSlopeOptions() Options {
	return Options{MinWidth: 2, MaxSlope: -0.2, MinSlope: -1e10}
}

// BoundedOptions configures LowerBoundedNoiseLevel: plain detection
// parameters plus an exponential floor
//
//	floor(scale) = LowerBoundAtScale1 · scale^LowerBoundSlope
//
// A curve point participates in an interval only while the raw
// (non-log) profile stays above the floor; apparent flatness caused by
// decay into a degenerate floor is rejected.
//
// LowerBoundSlope is, for instance, -1 for digital contours and -3 for
// digital image graphs whose area values are divided by scale³.
type BoundedOptions struct {
	Options
	LowerBoundAtScale1 float64
	LowerBoundSlope    float64
}

// DefaultBoundedOptions returns DefaultOptions plus the canonical
// floor: LowerBoundAtScale1=1, LowerBoundSlope=-2.
func DefaultBoundedOptions() BoundedOptions {
	return BoundedOptions{
		Options:            DefaultOptions(),
		LowerBoundAtScale1: 1.0,
		LowerBoundSlope:    -2.0,
	}
}
