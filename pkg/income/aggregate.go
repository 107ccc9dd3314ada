package income

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/darealghost7/data-vis/pkg/stats"
)

// ageBins covers ages [15,95) in 5-year buckets.
const (
	ageBinStart = 15
	ageBinEnd   = 95
	ageBinWidth = 5
)

// distinct returns the sorted distinct values of a column. For the income
// bracket column the ASCII sort conveniently puts "<=50K" before ">50K".
func distinct(df dataframe.DataFrame, col string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range df.Col(col).Records() {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// countsByGroup counts rows per (group, bracket). The result maps each
// bracket to counts aligned with the returned group order.
func countsByGroup(df dataframe.DataFrame, groupCol, bracketCol string) (groups, brackets []string, counts map[string][]float64) {
	groups = distinct(df, groupCol)
	brackets = distinct(df, bracketCol)

	groupIdx := make(map[string]int, len(groups))
	for i, g := range groups {
		groupIdx[g] = i
	}
	counts = make(map[string][]float64, len(brackets))
	for _, b := range brackets {
		counts[b] = make([]float64, len(groups))
	}

	groupVals := df.Col(groupCol).Records()
	bracketVals := df.Col(bracketCol).Records()
	for i := range groupVals {
		counts[bracketVals[i]][groupIdx[groupVals[i]]]++
	}
	return groups, brackets, counts
}

// meanHoursByAgeBin computes, per income bracket, the mean of the hours
// column within each 5-year age bucket. Buckets a bracket has no rows in
// hold NaN. Rows with ages outside [15,95) are ignored.
func meanHoursByAgeBin(df dataframe.DataFrame, ageCol, bracketCol, hoursCol string) (labels []string, means map[string][]float64) {
	nBins := (ageBinEnd - ageBinStart) / ageBinWidth
	labels = make([]string, nBins)
	for i := range labels {
		lo := ageBinStart + i*ageBinWidth
		labels[i] = fmt.Sprintf("%d-%d", lo, lo+ageBinWidth-1)
	}

	brackets := distinct(df, bracketCol)
	sums := make(map[string][]float64, len(brackets))
	ns := make(map[string][]int, len(brackets))
	for _, b := range brackets {
		sums[b] = make([]float64, nBins)
		ns[b] = make([]int, nBins)
	}

	ages := df.Col(ageCol).Float()
	hours := df.Col(hoursCol).Float()
	bracketVals := df.Col(bracketCol).Records()
	for i := range ages {
		if ages[i] < ageBinStart || ages[i] >= ageBinEnd {
			continue
		}
		bin := int(ages[i]-ageBinStart) / ageBinWidth
		sums[bracketVals[i]][bin] += hours[i]
		ns[bracketVals[i]][bin]++
	}

	means = make(map[string][]float64, len(brackets))
	for _, b := range brackets {
		m := make([]float64, nBins)
		for i := range m {
			if ns[b][i] == 0 {
				m[i] = math.NaN()
			} else {
				m[i] = sums[b][i] / float64(ns[b][i])
			}
		}
		means[b] = m
	}
	return labels, means
}

// valuesByBracket splits a numeric column's values by income bracket.
func valuesByBracket(df dataframe.DataFrame, bracketCol, valueCol string) map[string][]float64 {
	out := make(map[string][]float64)
	vals := df.Col(valueCol).Float()
	bracketVals := df.Col(bracketCol).Records()
	for i := range vals {
		out[bracketVals[i]] = append(out[bracketVals[i]], vals[i])
	}
	return out
}

// meanEducationByOccupation computes the mean education level per
// (occupation, bracket), with occupations ordered by their overall mean
// descending. Occupations a bracket has no rows for hold NaN.
func meanEducationByOccupation(df dataframe.DataFrame, occCol, bracketCol, eduCol string) (occupations []string, means map[string][]float64) {
	brackets := distinct(df, bracketCol)
	cells := make(map[string]map[string]*cell)

	occVals := df.Col(occCol).Records()
	bracketVals := df.Col(bracketCol).Records()
	eduVals := df.Col(eduCol).Float()
	for i := range occVals {
		occ, b := occVals[i], bracketVals[i]
		if cells[occ] == nil {
			cells[occ] = make(map[string]*cell)
		}
		if cells[occ][b] == nil {
			cells[occ][b] = &cell{}
		}
		cells[occ][b].sum += eduVals[i]
		cells[occ][b].n++
	}

	occupations = make([]string, 0, len(cells))
	for occ := range cells {
		occupations = append(occupations, occ)
	}
	// Highest overall education first; ties broken by name so output is
	// stable across runs.
	sort.Slice(occupations, func(i, j int) bool {
		mi, mj := perBracketMean(cells[occupations[i]]), perBracketMean(cells[occupations[j]])
		if mi != mj {
			return mi > mj
		}
		return occupations[i] < occupations[j]
	})

	means = make(map[string][]float64, len(brackets))
	for _, b := range brackets {
		m := make([]float64, len(occupations))
		for i, occ := range occupations {
			if c := cells[occ][b]; c != nil && c.n > 0 {
				m[i] = c.sum / float64(c.n)
			} else {
				m[i] = math.NaN()
			}
		}
		means[b] = m
	}
	return occupations, means
}

type cell struct {
	sum float64
	n   int
}

// perBracketMean averages the bracket means of one occupation, matching the
// "mean of the unstacked row" ordering key.
func perBracketMean(row map[string]*cell) float64 {
	var ms []float64
	for _, c := range row {
		if c.n > 0 {
			ms = append(ms, c.sum/float64(c.n))
		}
	}
	return stats.Mean(ms)
}
