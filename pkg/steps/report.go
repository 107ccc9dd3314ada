package steps

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/darealghost7/data-vis/pkg/stats"
)

// ParticipantMean pairs a participant with their average daily steps.
type ParticipantMean struct {
	ID   string
	Mean float64
}

// Summary holds the descriptive statistics computed over a cohort.
type Summary struct {
	// Ranked descending by average daily steps.
	Ranked []ParticipantMean

	// Over the flattened participants x days matrix, rounded.
	OverallMean float64
	OverallStd  float64

	// Extreme per-participant medians, with every participant tied at the
	// extreme (not just the first reached).
	HighestMedian    float64
	HighestMedianIDs []string
	LowestMedian     float64
	LowestMedianIDs  []string

	// Participants whose average daily steps exceed 8000.
	AboveTarget int

	// 25th, 50th and 75th percentiles of the flattened matrix.
	Percentiles [3]float64
}

// Summarize computes the descriptive statistics for a cohort.
func Summarize(cohort []Participant) Summary {
	var s Summary

	s.Ranked = make([]ParticipantMean, len(cohort))
	for i, p := range cohort {
		s.Ranked[i] = ParticipantMean{ID: p.ID, Mean: p.Mean()}
	}
	sort.SliceStable(s.Ranked, func(i, j int) bool {
		return s.Ranked[i].Mean > s.Ranked[j].Mean
	})

	flat := flatten(cohort)
	s.OverallMean = math.Round(stats.Mean(flat))
	s.OverallStd = math.Round(stats.Std(flat))

	medians := make([]float64, len(cohort))
	for i, p := range cohort {
		medians[i] = stats.Median(floats(p.Steps))
	}
	if len(medians) > 0 {
		lo, hi := stats.MinMax(medians)
		s.LowestMedian, s.HighestMedian = lo, hi
		for i, m := range medians {
			if m == hi {
				s.HighestMedianIDs = append(s.HighestMedianIDs, cohort[i].ID)
			}
			if m == lo {
				s.LowestMedianIDs = append(s.LowestMedianIDs, cohort[i].ID)
			}
		}
	}

	for _, p := range cohort {
		if p.Mean() > 8000 {
			s.AboveTarget++
		}
	}

	s.Percentiles = [3]float64{
		stats.Percentile(flat, 25),
		stats.Percentile(flat, 50),
		stats.Percentile(flat, 75),
	}
	return s
}

// WriteReport renders the cohort tables and the summary statistics.
func WriteReport(w io.Writer, cohort []Participant, s Summary) {
	fmt.Fprintln(w, "Fitness Levels Assigned to Each Participant:")
	fmt.Fprintf(w, "%-12s %s\n", "Participant", "Fitness_Level")
	for _, p := range cohort {
		fmt.Fprintf(w, "%-12s %s\n", p.ID, p.Level)
	}

	fmt.Fprintln(w, "\nGenerated Step Count Dataset (Steps per Day):")
	if len(cohort) > 0 {
		fmt.Fprintf(w, "%-5s", "")
		for d := range cohort[0].Steps {
			fmt.Fprintf(w, "%8s", fmt.Sprintf("Day_%d", d+1))
		}
		fmt.Fprintln(w)
		for _, p := range cohort {
			fmt.Fprintf(w, "%-5s", p.ID)
			for _, v := range p.Steps {
				fmt.Fprintf(w, "%8d", v)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\n(a) Top 5 Participants by Average Daily Steps:")
	top := s.Ranked
	if len(top) > 5 {
		top = top[:5]
	}
	for _, pm := range top {
		fmt.Fprintf(w, "%s: %.0f steps\n", pm.ID, pm.Mean)
	}

	fmt.Fprintf(w, "\n(b) Overall Mean of All Steps: %.0f\n", s.OverallMean)
	fmt.Fprintf(w, "Overall Standard Deviation of All Steps: %.0f\n", s.OverallStd)

	fmt.Fprintln(w, "\n(c) Participant(s) with Highest Median Daily Steps:")
	for _, id := range s.HighestMedianIDs {
		fmt.Fprintf(w, "%s: %.0f steps\n", id, s.HighestMedian)
	}
	fmt.Fprintln(w, "\nParticipant(s) with Lowest Median Daily Steps:")
	for _, id := range s.LowestMedianIDs {
		fmt.Fprintf(w, "%s: %.0f steps\n", id, s.LowestMedian)
	}

	fmt.Fprintf(w, "\n(d) Number of Participants with Average Daily Steps > 8000: %d\n", s.AboveTarget)

	fmt.Fprintln(w, "\n(e) Step Count Percentiles (All Data Combined):")
	fmt.Fprintf(w, "25th Percentile: %.0f\n", s.Percentiles[0])
	fmt.Fprintf(w, "50th Percentile (Median): %.0f\n", s.Percentiles[1])
	fmt.Fprintf(w, "75th Percentile: %.0f\n", s.Percentiles[2])
}

func flatten(cohort []Participant) []float64 {
	var flat []float64
	for _, p := range cohort {
		flat = append(flat, floats(p.Steps)...)
	}
	return flat
}

func floats(steps []int) []float64 {
	out := make([]float64, len(steps))
	for i, v := range steps {
		out[i] = float64(v)
	}
	return out
}
