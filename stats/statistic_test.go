package stats_test

import (
	"testing"

	"github.com/katalvlaran/multiscale/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatistic_EmptyReductions verifies that every reduction on an
// empty accumulator reports ErrNoSamples instead of a fake zero.
func TestStatistic_EmptyReductions(t *testing.T) {
	st := stats.New(false)
	assert.Equal(t, uint64(0), st.Count(), "fresh accumulator must be empty")

	_, err := st.Mean()
	assert.ErrorIs(t, err, stats.ErrNoSamples, "Mean on empty must error")
	_, err = st.Min()
	assert.ErrorIs(t, err, stats.ErrNoSamples, "Min on empty must error")
	_, err = st.Max()
	assert.ErrorIs(t, err, stats.ErrNoSamples, "Max on empty must error")
	_, err = st.Median()
	assert.ErrorIs(t, err, stats.ErrNoSamples, "Median on empty must error")
}

// TestStatistic_Moments checks count, mean and both variances against a
// textbook sample.
func TestStatistic_Moments(t *testing.T) {
	st := stats.New(false)
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		st.Add(v)
	}

	assert.Equal(t, uint64(8), st.Count())
	mean, err := st.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 4.0, st.Variance(), 1e-12, "population variance")
	assert.InDelta(t, 32.0/7.0, st.SampleVariance(), 1e-12, "sample variance")
	assert.InDelta(t, 2.0, st.StdDev(), 1e-12)

	lo, err := st.Min()
	require.NoError(t, err)
	hi, err := st.Max()
	require.NoError(t, err)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 9.0, hi)
}

// TestStatistic_OrderIndependence verifies that reductions do not
// depend on insertion order.
func TestStatistic_OrderIndependence(t *testing.T) {
	perms := [][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{3, 1, 4, 2},
	}
	for _, p := range perms {
		st := stats.New(false)
		for _, v := range p {
			st.Add(v)
		}
		mean, err := st.Mean()
		require.NoError(t, err)
		assert.InDelta(t, 2.5, mean, 1e-12, "mean for permutation %v", p)
		lo, _ := st.Min()
		hi, _ := st.Max()
		assert.Equal(t, 1.0, lo, "min for permutation %v", p)
		assert.Equal(t, 4.0, hi, "max for permutation %v", p)
	}
}

// TestStatistic_MergeEquivalence checks that Merge behaves as if every
// sample of the other accumulator had been added directly.
func TestStatistic_MergeEquivalence(t *testing.T) {
	a := stats.New(false)
	for _, v := range []float64{1, 2} {
		a.Add(v)
	}
	b := stats.New(false)
	for _, v := range []float64{3, 4, 5} {
		b.Add(v)
	}

	direct := stats.New(false)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		direct.Add(v)
	}

	a.Merge(b)
	assert.Equal(t, direct.Count(), a.Count())
	am, _ := a.Mean()
	dm, _ := direct.Mean()
	assert.InDelta(t, dm, am, 1e-12)
	assert.InDelta(t, direct.Variance(), a.Variance(), 1e-12)
	alo, _ := a.Min()
	ahi, _ := a.Max()
	assert.Equal(t, 1.0, alo)
	assert.Equal(t, 5.0, ahi)
}

// TestStatistic_MergeIntoEmpty checks that merging into a fresh
// accumulator copies the other side's state.
func TestStatistic_MergeIntoEmpty(t *testing.T) {
	b := stats.New(false)
	b.Add(7)
	b.Add(9)

	a := stats.New(false)
	a.Merge(b)

	assert.Equal(t, uint64(2), a.Count())
	mean, err := a.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 8.0, mean, 1e-12)
	lo, _ := a.Min()
	assert.Equal(t, 7.0, lo)
}

// TestStatistic_MergeNil ensures nil and empty merges are no-ops.
func TestStatistic_MergeNil(t *testing.T) {
	a := stats.New(true)
	a.Add(1)
	a.Merge(nil)
	a.Merge(stats.New(false)) // empty, non-retaining: still a no-op

	assert.Equal(t, uint64(1), a.Count())
	assert.True(t, a.Retaining(), "empty merge must not drop retention")
	med, err := a.Median()
	require.NoError(t, err)
	assert.Equal(t, 1.0, med)
}

// TestStatistic_MedianRetained verifies the median of retained samples.
func TestStatistic_MedianRetained(t *testing.T) {
	st := stats.New(true)
	for _, v := range []float64{5, 1, 3} {
		st.Add(v)
	}

	med, err := st.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)
}

// TestStatistic_MedianUnavailable verifies the non-retaining error.
func TestStatistic_MedianUnavailable(t *testing.T) {
	st := stats.New(false)
	st.Add(1)
	st.Add(2)

	_, err := st.Median()
	assert.ErrorIs(t, err, stats.ErrMedianUnavailable)
}

// TestStatistic_TerminateStorage checks the explicit retention
// transition: median cached, samples released, later Adds do not move
// the cached value, and the call is idempotent.
func TestStatistic_TerminateStorage(t *testing.T) {
	st := stats.New(true)
	for _, v := range []float64{5, 1, 3} {
		st.Add(v)
	}

	st.TerminateStorage()
	assert.False(t, st.Retaining(), "retention must be off after TerminateStorage")

	med, err := st.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med, "median must be cached")

	st.Add(1000) // moments move, cached median frozen
	med, err = st.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med, "cached median must not follow later samples")
	assert.Equal(t, uint64(4), st.Count())

	st.TerminateStorage() // idempotent
	med, err = st.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)
}

// TestStatistic_MergeRetainingPair keeps the median exact when both
// sides retain their samples.
func TestStatistic_MergeRetainingPair(t *testing.T) {
	a := stats.New(true)
	a.Add(5)
	b := stats.New(true)
	b.Add(1)
	b.Add(3)

	a.Merge(b)
	med, err := a.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med)
}

// TestStatistic_MergeDropsRetention documents the one retention change
// Merge may perform: a non-retaining, non-empty other makes an exact
// median impossible.
func TestStatistic_MergeDropsRetention(t *testing.T) {
	a := stats.New(true)
	a.Add(1)
	b := stats.New(false)
	b.Add(2)

	a.Merge(b)
	assert.False(t, a.Retaining())
	_, err := a.Median()
	assert.ErrorIs(t, err, stats.ErrMedianUnavailable)
}

// TestStatistic_MergeKeepsCachedMedian verifies that a cached median
// survives a retention-dropping merge.
func TestStatistic_MergeKeepsCachedMedian(t *testing.T) {
	a := stats.New(true)
	for _, v := range []float64{5, 1, 3} {
		a.Add(v)
	}
	a.TerminateStorage()

	b := stats.New(false)
	b.Add(100)
	a.Merge(b)

	med, err := a.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.0, med, "cached median must survive the merge")
}

// TestStatistic_CloneIsDeep mutates the original after cloning and
// checks the clone keeps its own state.
func TestStatistic_CloneIsDeep(t *testing.T) {
	st := stats.New(true)
	for _, v := range []float64{1, 2, 3} {
		st.Add(v)
	}

	c := st.Clone()
	require.True(t, st.Equal(c), "clone must equal its source")

	st.Add(99)
	assert.False(t, st.Equal(c), "mutating the source must not touch the clone")
	assert.Equal(t, uint64(3), c.Count())
	med, err := c.Median()
	require.NoError(t, err)
	assert.Equal(t, 2.0, med)
}

// TestStatistic_Reset returns the accumulator to the empty state.
func TestStatistic_Reset(t *testing.T) {
	st := stats.New(false)
	st.Add(1)
	st.Reset(true)

	assert.Equal(t, uint64(0), st.Count())
	assert.True(t, st.Retaining())
	_, err := st.Mean()
	assert.ErrorIs(t, err, stats.ErrNoSamples)
}

// TestStatistic_ZeroValue confirms the zero value is a usable,
// non-retaining accumulator.
func TestStatistic_ZeroValue(t *testing.T) {
	var st stats.Statistic
	st.Add(4)
	st.Add(6)

	mean, err := st.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.False(t, st.Retaining())
}
