package scaleprofile

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/multiscale/stats"
	"gonum.org/v1/gonum/floats"
)

// Profile is one multiscale profile: a sequence of statistics on a
// measured quantity (e.g. digital length) parameterized by a scale.
// It represents what happens at one location only; aggregating many
// locations is the caller's concern. All curve computations happen in
// log space.
//
// Lifecycle: New → Init/InitCount → AddValue/AddStatistic →
// (optional StopStatsSaving) → Values / MeaningfulScales / NoiseLevel.
// Until Init the profile is invalid and every profile or noise-level
// operation fails with ErrNotInitialized; Clear returns it to that
// state.
//
// A Profile is a single-owner value object: no operation blocks or
// performs I/O, and concurrent use requires one instance per goroutine.
type Profile struct {
	scales []float64
	stats  []*stats.Statistic
	mode   Mode
	retain bool
}

// New returns an invalid Profile with the given reduction mode.
// Call Init or InitCount before adding samples.
func New(mode Mode) *Profile {
	return &Profile{mode: mode}
}

// Init establishes the scale sequence and allocates one fresh, empty
// accumulator per scale. When retain is true, accumulators keep raw
// samples so the Median mode and StopStatsSaving become available.
//
// The sequence is copied. Returns ErrBadScales when it is empty or
// contains a scale that is not strictly positive and finite.
// Re-initializing discards all previously accumulated statistics.
func (p *Profile) Init(scales []float64, retain bool) error {
	if len(scales) == 0 {
		return ErrBadScales
	}
	for i, s := range scales {
		if !(s > 0) || math.IsInf(s, 1) {
			return fmt.Errorf("scale %d (%g): %w", i, s, ErrBadScales)
		}
	}

	p.scales = make([]float64, len(scales))
	copy(p.scales, scales)
	p.stats = make([]*stats.Statistic, len(scales))
	for i := range p.stats {
		p.stats[i] = stats.New(retain)
	}
	p.retain = retain

	return nil
}

// InitCount is the convenience form of Init for the scale sequence
// 1, 2, ..., n. Returns ErrBadScales when n < 1.
func (p *Profile) InitCount(n int, retain bool) error {
	if n < 1 {
		return ErrBadScales
	}
	scales := make([]float64, n)
	for i := range scales {
		scales[i] = float64(i + 1)
	}

	return p.Init(scales, retain)
}

// AddValue folds one sample into the accumulator at scale index idx.
func (p *Profile) AddValue(idx int, v float64) error {
	if !p.IsValid() {
		return ErrNotInitialized
	}
	if idx < 0 || idx >= len(p.stats) {
		return fmt.Errorf("index %d of %d: %w", idx, len(p.stats), ErrIndexOutOfRange)
	}
	p.stats[idx].Add(v)

	return nil
}

// AddStatistic merges an externally built accumulator into the
// accumulator at scale index idx (bag-union semantics, see
// stats.Statistic.Merge). The argument is not modified.
func (p *Profile) AddStatistic(idx int, st *stats.Statistic) error {
	if !p.IsValid() {
		return ErrNotInitialized
	}
	if idx < 0 || idx >= len(p.stats) {
		return fmt.Errorf("index %d of %d: %w", idx, len(p.stats), ErrIndexOutOfRange)
	}
	if st == nil {
		return ErrNilStatistic
	}
	p.stats[idx].Merge(st)

	return nil
}

// StopStatsSaving caches the median of every accumulator, then releases
// their raw samples and switches them to non-retaining mode. Later
// Median reductions keep using the cached values. Idempotent; a no-op
// when samples were never retained.
func (p *Profile) StopStatsSaving() {
	for _, st := range p.stats {
		st.TerminateStorage()
	}
	p.retain = false
}

// SetMode selects the reduction applied by subsequent Values calls.
// Accumulated statistics are unaffected.
func (p *Profile) SetMode(m Mode) { p.mode = m }

// Mode returns the current reduction mode.
func (p *Profile) Mode() Mode { return p.mode }

// Retaining reports whether accumulators currently keep raw samples.
func (p *Profile) Retaining() bool { return p.retain }

// Count returns the number of scales, 0 before Init.
func (p *Profile) Count() int { return len(p.scales) }

// Scale returns the scale value at index idx.
func (p *Profile) Scale(idx int) (float64, error) {
	if !p.IsValid() {
		return 0, ErrNotInitialized
	}
	if idx < 0 || idx >= len(p.scales) {
		return 0, fmt.Errorf("index %d of %d: %w", idx, len(p.scales), ErrIndexOutOfRange)
	}

	return p.scales[idx], nil
}

// Clear returns the profile to the pre-Init invalid state.
// The reduction mode is kept.
func (p *Profile) Clear() {
	p.scales = nil
	p.stats = nil
	p.retain = false
}

// IsValid reports whether the profile has been initialized: a non-empty
// scale sequence with one accumulator per scale.
func (p *Profile) IsValid() bool {
	return len(p.scales) > 0 && len(p.scales) == len(p.stats)
}

// Clone returns a deep copy: scales and every accumulator are
// duplicated, never shared.
func (p *Profile) Clone() *Profile {
	c := &Profile{mode: p.mode, retain: p.retain}
	if p.scales != nil {
		c.scales = make([]float64, len(p.scales))
		copy(c.scales, p.scales)
	}
	if p.stats != nil {
		c.stats = make([]*stats.Statistic, len(p.stats))
		for i, st := range p.stats {
			c.stats[i] = st.Clone()
		}
	}

	return c
}

// Equal reports whether two profiles hold identical state: mode, scale
// sequence and per-scale accumulator contents.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}
	if p.mode != other.mode || p.retain != other.retain {
		return false
	}
	if len(p.scales) != len(other.scales) {
		return false
	}
	if len(p.scales) > 0 && !floats.Equal(p.scales, other.scales) {
		return false
	}
	for i, st := range p.stats {
		if !st.Equal(other.stats[i]) {
			return false
		}
	}

	return true
}

// String renders a human-readable dump of the profile.
func (p *Profile) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Profile{invalid, mode=%s}", p.mode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Profile{mode=%s, scales=%d}", p.mode, len(p.scales))
	for i, s := range p.scales {
		fmt.Fprintf(&b, "\n  scale=%g %s", s, p.stats[i])
	}

	return b.String()
}
