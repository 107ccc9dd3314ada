// Package dataprep cleans loaded tables: missing-value imputation followed
// by exact-duplicate removal.
package dataprep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"

	"github.com/darealghost7/data-vis/pkg/stats"
)

// Report counts the work a cleaning pass performed. Running Clean again on
// its own output must report zero for both fields.
type Report struct {
	Imputed           int
	DuplicatesRemoved int
}

// Clean imputes missing values column by column (most frequent value for
// categorical columns, median for numeric ones), then removes exact-duplicate
// rows. Columns are treated independently. Cleaning either fully succeeds or
// returns an error; there is no partial result.
func Clean(df dataframe.DataFrame, logger zerolog.Logger) (dataframe.DataFrame, Report, error) {
	if df.Err != nil {
		return df, Report{}, fmt.Errorf("clean: invalid frame: %w", df.Err)
	}

	var report Report
	for _, name := range df.Names() {
		col := df.Col(name)
		missing := 0
		for _, isNaN := range col.IsNaN() {
			if isNaN {
				missing++
			}
		}
		if missing == 0 {
			continue
		}

		imputed, err := imputeColumn(col)
		if err != nil {
			return df, Report{}, fmt.Errorf("clean: column %q: %w", name, err)
		}
		df = df.Mutate(imputed.series)
		if df.Err != nil {
			return df, Report{}, fmt.Errorf("clean: column %q: %w", name, df.Err)
		}
		report.Imputed += missing
		logger.Info().
			Str("column", name).
			Str("strategy", imputed.strategy).
			Str("value", imputed.value).
			Int("count", missing).
			Msg("imputed missing values")
	}

	df, removed, err := dropDuplicates(df)
	if err != nil {
		return df, Report{}, err
	}
	report.DuplicatesRemoved = removed
	if removed > 0 {
		logger.Info().Int("count", removed).Msg("removed duplicate rows")
	}
	return df, report, nil
}

type imputedColumn struct {
	series   series.Series
	strategy string
	value    string
}

// imputeColumn fills a column's missing entries. Categorical columns take
// the column's most frequent value, numeric columns the column's median.
func imputeColumn(col series.Series) (imputedColumn, error) {
	mask := col.IsNaN()
	records := col.Records()

	if col.Type() == series.String {
		mode, ok := modeOf(records, mask)
		if !ok {
			return imputedColumn{}, fmt.Errorf("no observed values to impute from")
		}
		for i, isNaN := range mask {
			if isNaN {
				records[i] = mode
			}
		}
		return imputedColumn{
			series:   series.New(records, series.String, col.Name),
			strategy: "mode",
			value:    mode,
		}, nil
	}

	var observed []float64
	for _, v := range col.Float() {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return imputedColumn{}, fmt.Errorf("no observed values to impute from")
	}
	median := stats.Median(observed)

	// A fractional median cannot live in an integer column.
	colType := col.Type()
	if colType == series.Int && median != math.Trunc(median) {
		colType = series.Float
	}
	formatted := strconv.FormatFloat(median, 'f', -1, 64)
	for i, isNaN := range mask {
		if isNaN {
			records[i] = formatted
		}
	}
	return imputedColumn{
		series:   series.New(records, colType, col.Name),
		strategy: "median",
		value:    formatted,
	}, nil
}

// modeOf returns the most frequent non-missing record, breaking ties toward
// the lexicographically smallest value so repeated runs agree.
func modeOf(records []string, mask []bool) (string, bool) {
	counts := make(map[string]int)
	for i, r := range records {
		if !mask[i] {
			counts[r]++
		}
	}
	mode, best := "", 0
	for v, c := range counts {
		if c > best || (c == best && best > 0 && v < mode) {
			mode, best = v, c
		}
	}
	return mode, best > 0
}

// dropDuplicates keeps the first occurrence of each distinct row.
func dropDuplicates(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
	records := df.Records()
	if len(records) < 2 {
		return df, 0, nil
	}
	rows := records[1:] // skip header

	seen := make(map[string]struct{}, len(rows))
	keep := make([]int, 0, len(rows))
	for i, row := range rows {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	removed := len(rows) - len(keep)
	if removed == 0 {
		return df, 0, nil
	}
	df = df.Subset(keep)
	if df.Err != nil {
		return df, 0, fmt.Errorf("clean: drop duplicates: %w", df.Err)
	}
	return df, removed, nil
}
