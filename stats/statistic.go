package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoSamples is returned when a reduction (mean, min, max, median)
	// is requested from an accumulator that holds no samples.
	ErrNoSamples = errors.New("stats: no samples accumulated")

	// ErrMedianUnavailable is returned when Median is requested from an
	// accumulator that neither retains raw samples nor cached a median
	// via TerminateStorage.
	ErrMedianUnavailable = errors.New("stats: median unavailable without retained samples")
)

// Statistic accumulates floating-point samples into running aggregates.
//
// Count, mean and variance use Welford's online algorithm, so the
// moments stay numerically stable regardless of insertion order.
// The zero value is a valid, empty, non-retaining accumulator.
//
// A Statistic is not safe for concurrent mutation; give each goroutine
// its own instance and Merge afterwards.
type Statistic struct {
	count uint64
	mean  float64
	m2    float64
	min   float64
	max   float64

	// retention state; see package doc.
	retain       bool
	samples      []float64
	median       float64
	medianCached bool
}

// New returns an empty Statistic. When retain is true, raw samples are
// kept so Median and TerminateStorage become available.
func New(retain bool) *Statistic {
	return &Statistic{retain: retain}
}

// Add folds one sample into the accumulator.
func (s *Statistic) Add(v float64) {
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.count++
	delta := v - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (v - s.mean)
	if s.retain {
		s.samples = append(s.samples, v)
	}
}

// Merge folds another accumulator into s with bag-union semantics:
// counts, moments (parallel Welford merge) and extrema combine as if
// every sample of other had been passed to s.Add.
//
// Retained samples are appended when both sides retain them. Merging a
// non-retaining, non-empty other into a retaining s makes an exact
// median impossible, so s drops retention unless a median is already
// cached. A nil or empty other is a no-op.
func (s *Statistic) Merge(other *Statistic) {
	if other == nil || other.count == 0 {
		return
	}
	if s.count == 0 {
		s.min, s.max = other.min, other.max
	} else {
		if other.min < s.min {
			s.min = other.min
		}
		if other.max > s.max {
			s.max = other.max
		}
	}

	total := s.count + other.count
	delta := other.mean - s.mean
	s.m2 += other.m2 + delta*delta*float64(s.count)*float64(other.count)/float64(total)
	s.mean += delta * float64(other.count) / float64(total)
	s.count = total

	if s.retain {
		if other.retain {
			s.samples = append(s.samples, other.samples...)
		} else if !s.medianCached {
			s.retain = false
			s.samples = nil
		}
	}
}

// Count returns the number of accumulated samples.
func (s *Statistic) Count() uint64 { return s.count }

// Mean returns the arithmetic mean, or ErrNoSamples when empty.
func (s *Statistic) Mean() (float64, error) {
	if s.count == 0 {
		return 0, ErrNoSamples
	}

	return s.mean, nil
}

// Min returns the smallest sample, or ErrNoSamples when empty.
func (s *Statistic) Min() (float64, error) {
	if s.count == 0 {
		return 0, ErrNoSamples
	}

	return s.min, nil
}

// Max returns the largest sample, or ErrNoSamples when empty.
func (s *Statistic) Max() (float64, error) {
	if s.count == 0 {
		return 0, ErrNoSamples
	}

	return s.max, nil
}

// Variance returns the population variance (M2/n); 0 when empty.
func (s *Statistic) Variance() float64 {
	if s.count == 0 {
		return 0
	}

	return s.m2 / float64(s.count)
}

// SampleVariance returns the unbiased sample variance (M2/(n-1));
// 0 with fewer than two samples.
func (s *Statistic) SampleVariance() float64 {
	if s.count < 2 {
		return 0
	}

	return s.m2 / float64(s.count-1)
}

// StdDev returns the population standard deviation.
func (s *Statistic) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the empirical median. It is available while raw
// samples are retained, or after TerminateStorage cached it.
// Returns ErrNoSamples when empty, ErrMedianUnavailable otherwise.
func (s *Statistic) Median() (float64, error) {
	if s.medianCached {
		return s.median, nil
	}
	if s.count == 0 {
		return 0, ErrNoSamples
	}
	if !s.retain {
		return 0, ErrMedianUnavailable
	}

	return medianOf(s.samples), nil
}

// medianOf computes the empirical 0.5-quantile of values.
// The input is copied; values stays untouched.
func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// TerminateStorage computes and caches the median, releases the sample
// slice and switches the accumulator to non-retaining mode. Samples
// added afterwards still update the moments but no longer influence the
// cached median. Idempotent; a no-op when retention is already off.
func (s *Statistic) TerminateStorage() {
	if !s.retain {
		return
	}
	if len(s.samples) > 0 {
		s.median = medianOf(s.samples)
		s.medianCached = true
	}
	s.retain = false
	s.samples = nil
}

// Retaining reports whether raw samples are currently kept.
func (s *Statistic) Retaining() bool { return s.retain }

// Clone returns a deep copy, including any retained samples.
func (s *Statistic) Clone() *Statistic {
	c := *s
	if s.samples != nil {
		c.samples = make([]float64, len(s.samples))
		copy(c.samples, s.samples)
	}

	return &c
}

// Equal reports whether two accumulators hold identical state:
// count, moments, extrema, retention mode and retained samples.
func (s *Statistic) Equal(other *Statistic) bool {
	if other == nil {
		return false
	}
	if s.count != other.count || s.mean != other.mean || s.m2 != other.m2 {
		return false
	}
	if s.count > 0 && (s.min != other.min || s.max != other.max) {
		return false
	}
	if s.retain != other.retain || s.medianCached != other.medianCached {
		return false
	}
	if s.medianCached && s.median != other.median {
		return false
	}
	if len(s.samples) != len(other.samples) {
		return false
	}
	for i, v := range s.samples {
		if v != other.samples[i] {
			return false
		}
	}

	return true
}

// Reset returns the accumulator to the empty state with the given
// retention mode.
func (s *Statistic) Reset(retain bool) {
	*s = Statistic{retain: retain}
}

// String renders a short human-readable summary.
func (s *Statistic) String() string {
	if s.count == 0 {
		return fmt.Sprintf("Statistic{empty, retain=%t}", s.retain)
	}

	return fmt.Sprintf("Statistic{count=%d, mean=%g, min=%g, max=%g, retain=%t}",
		s.count, s.mean, s.min, s.max, s.retain)
}
