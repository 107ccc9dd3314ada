package steps_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darealghost7/data-vis/pkg/stats"
	"github.com/darealghost7/data-vis/pkg/steps"
)

func TestGenerateDeterministic(t *testing.T) {
	a := steps.NewGenerator(42).Generate(15, 14)
	b := steps.NewGenerator(42).Generate(15, 14)
	require.Equal(t, a, b)

	// The rendered report must therefore be byte-identical too.
	var bufA, bufB bytes.Buffer
	steps.WriteReport(&bufA, a, steps.Summarize(a))
	steps.WriteReport(&bufB, b, steps.Summarize(b))
	require.Equal(t, bufA.String(), bufB.String())
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a := steps.NewGenerator(1).Generate(15, 14)
	b := steps.NewGenerator(2).Generate(15, 14)
	require.NotEqual(t, a, b)
}

func TestGenerateBounds(t *testing.T) {
	cohort := steps.NewGenerator(7).Generate(50, 14)
	require.Len(t, cohort, 50)
	for _, p := range cohort {
		require.Len(t, p.Steps, 14)
		for _, v := range p.Steps {
			require.GreaterOrEqual(t, v, steps.MinSteps)
			require.LessOrEqual(t, v, steps.MaxSteps)
		}
	}
}

func TestSummarizeRanking(t *testing.T) {
	cohort := steps.NewGenerator(42).Generate(15, 14)
	s := steps.Summarize(cohort)

	require.Len(t, s.Ranked, 15)
	for i := 1; i < len(s.Ranked); i++ {
		require.GreaterOrEqual(t, s.Ranked[i-1].Mean, s.Ranked[i].Mean)
	}
}

func TestSummarizeMedianExtremes(t *testing.T) {
	cohort := []steps.Participant{
		{ID: "P1", Steps: []int{4000, 4000, 4000}},
		{ID: "P2", Steps: []int{9000, 9000, 9000}},
		{ID: "P3", Steps: []int{9000, 9000, 9000}},
		{ID: "P4", Steps: []int{5000, 6000, 7000}},
	}
	s := steps.Summarize(cohort)

	// All participants tied at the extreme are reported.
	require.Equal(t, 9000.0, s.HighestMedian)
	require.Equal(t, []string{"P2", "P3"}, s.HighestMedianIDs)
	require.Equal(t, 4000.0, s.LowestMedian)
	require.Equal(t, []string{"P1"}, s.LowestMedianIDs)

	// No unreported participant reaches the extremes.
	for _, p := range cohort {
		m := medianOf(p.Steps)
		require.LessOrEqual(t, m, s.HighestMedian)
		require.GreaterOrEqual(t, m, s.LowestMedian)
	}
}

func TestSummarizeAboveTarget(t *testing.T) {
	cohort := steps.NewGenerator(42).Generate(15, 14)
	s := steps.Summarize(cohort)

	want := 0
	for _, p := range cohort {
		if p.Mean() > 8000 {
			want++
		}
	}
	require.Equal(t, want, s.AboveTarget)
}

func TestSummarizePercentiles(t *testing.T) {
	cohort := steps.NewGenerator(42).Generate(15, 14)
	s := steps.Summarize(cohort)

	require.LessOrEqual(t, s.Percentiles[0], s.Percentiles[1])
	require.LessOrEqual(t, s.Percentiles[1], s.Percentiles[2])
	require.GreaterOrEqual(t, s.Percentiles[0], float64(steps.MinSteps))
	require.LessOrEqual(t, s.Percentiles[2], float64(steps.MaxSteps))
}

func TestWriteReportSections(t *testing.T) {
	cohort := steps.NewGenerator(42).Generate(15, 14)
	var buf bytes.Buffer
	steps.WriteReport(&buf, cohort, steps.Summarize(cohort))

	out := buf.String()
	for _, section := range []string{
		"Fitness Levels Assigned to Each Participant:",
		"Generated Step Count Dataset (Steps per Day):",
		"(a) Top 5 Participants by Average Daily Steps:",
		"(b) Overall Mean of All Steps:",
		"(c) Participant(s) with Highest Median Daily Steps:",
		"(d) Number of Participants with Average Daily Steps > 8000:",
		"(e) Step Count Percentiles (All Data Combined):",
	} {
		require.Contains(t, out, section)
	}
}

func medianOf(x []int) float64 {
	f := make([]float64, len(x))
	for i, v := range x {
		f[i] = float64(v)
	}
	return stats.Median(f)
}
