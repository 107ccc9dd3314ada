package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darealghost7/data-vis/pkg/stats"
)

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, stats.Mean(nil))
	require.InDelta(t, 2.5, stats.Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestStdIsPopulation(t *testing.T) {
	// Population std of {2,4,4,4,5,5,7,9} is exactly 2; the sample std
	// (divisor N-1) would be ~2.138.
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	require.InDelta(t, 2.0, stats.Std(x), 1e-12)
	require.InDelta(t, 4.0, stats.Variance(x), 1e-12)
}

func TestMedian(t *testing.T) {
	testCases := map[string]struct {
		in       []float64
		expected float64
	}{
		"empty":    {nil, 0},
		"odd":      {[]float64{5, 1, 3}, 3},
		"even":     {[]float64{4, 1, 3, 2}, 2.5},
		"repeated": {[]float64{7, 7, 7, 7}, 7},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.InDelta(t, tc.expected, stats.Median(tc.in), 1e-12)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	x := []float64{3, 1, 2}
	_ = stats.Median(x)
	require.Equal(t, []float64{3, 1, 2}, x)
}

func TestMode(t *testing.T) {
	require.Equal(t, 2.0, stats.Mode([]float64{1, 2, 2, 3}))
	require.Equal(t, 0.0, stats.Mode(nil))
}

func TestPercentileLinearInterpolation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	testCases := []struct {
		p        float64
		expected float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tc := range testCases {
		require.InDelta(t, tc.expected, stats.Percentile(x, tc.p), 1e-12, "p=%v", tc.p)
	}
}

func TestPercentileOrdered(t *testing.T) {
	x := []float64{9, 1, 4, 7, 2, 8, 3, 6, 5}
	p25 := stats.Percentile(x, 25)
	p50 := stats.Percentile(x, 50)
	p75 := stats.Percentile(x, 75)
	require.LessOrEqual(t, p25, p50)
	require.LessOrEqual(t, p50, p75)
	require.Equal(t, stats.Median(x), p50)
}

func TestMinMax(t *testing.T) {
	min, max := stats.MinMax([]float64{3, -1, 9, 4})
	require.Equal(t, -1.0, min)
	require.Equal(t, 9.0, max)
}
