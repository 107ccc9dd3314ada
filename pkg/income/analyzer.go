// Package income loads the adult income dataset, cleans it and renders the
// four-panel summary chart.
package income

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog"

	"github.com/darealghost7/data-vis/pkg/dataprep"
	"github.com/darealghost7/data-vis/pkg/schema"
)

// ErrSourceNotFound marks a missing input file, distinct from parse and
// schema failures.
var ErrSourceNotFound = errors.New("source file not found")

// Values treated as the missing-value sentinel on load.
var nanTokens = []string{"?", "", "NA", "NaN"}

// requiredColumns are the canonical names the analysis cannot run without.
var requiredColumns = []string{
	"age",
	"sex",
	"income",
	"occupation",
	"education_num",
	"hours_per_week",
}

// columns holds the resolved (actual) header names for the fields the
// panels read.
type columns struct {
	age        string
	sex        string
	income     string
	occupation string
	education  string
	hours      string
}

// Analyzer runs the income pipeline: load, schema resolution, cleaning,
// diagnostics and chart rendering.
type Analyzer struct {
	path   string
	logger zerolog.Logger

	// Out receives console diagnostics; defaults to stdout.
	Out io.Writer

	frame dataframe.DataFrame
	cols  columns
}

func NewAnalyzer(path string, logger zerolog.Logger) *Analyzer {
	return &Analyzer{path: path, logger: logger, Out: os.Stdout}
}

// Load reads the CSV, resolves the schema and cleans the table, printing the
// same diagnostics on the way: original columns, a row preview, cleaning
// counts and the post-cleaning schema summary. Any failure aborts the
// pipeline; there is no partial recovery.
func (a *Analyzer) Load() error {
	f, err := os.Open(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Error().Str("path", a.path).Msg("input file does not exist")
			return fmt.Errorf("%w: %s", ErrSourceNotFound, a.path)
		}
		return fmt.Errorf("open %s: %w", a.path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.NaNValues(nanTokens),
	)
	if df.Err != nil {
		a.logger.Error().Err(df.Err).Str("path", a.path).Msg("failed to parse input")
		return fmt.Errorf("parse %s: %w", a.path, df.Err)
	}

	fmt.Fprintln(a.Out, "Original columns in dataset:")
	fmt.Fprintln(a.Out, df.Names())
	fmt.Fprintln(a.Out)

	resolver := schema.NewResolver(df.Names())
	if err := resolver.Require(requiredColumns...); err != nil {
		a.logger.Error().Err(err).Msg("schema resolution failed")
		return err
	}
	a.cols = columns{
		age:        resolver.Lookup("age"),
		sex:        resolver.Lookup("sex"),
		income:     resolver.Lookup("income"),
		occupation: resolver.Lookup("occupation"),
		education:  resolver.Lookup("education_num"),
		hours:      resolver.Lookup("hours_per_week"),
	}

	fmt.Fprintln(a.Out, "Dataset Overview:")
	fmt.Fprintln(a.Out, preview(df, 5))

	cleaned, report, err := dataprep.Clean(df, a.logger)
	if err != nil {
		a.logger.Error().Err(err).Msg("cleaning failed")
		return err
	}
	a.frame = cleaned

	fmt.Fprintf(a.Out, "Imputed %d missing values, removed %d duplicate rows\n\n", report.Imputed, report.DuplicatesRemoved)
	fmt.Fprintln(a.Out, "Cleaned Dataset Info:")
	fmt.Fprintf(a.Out, "%d rows x %d columns\n", cleaned.Nrow(), cleaned.Ncol())
	names, types := cleaned.Names(), cleaned.Types()
	for i, name := range names {
		fmt.Fprintf(a.Out, "  %-20s %v\n", name, types[i])
	}
	fmt.Fprintln(a.Out)
	return nil
}

// Frame returns the cleaned table. Valid only after a successful Load.
func (a *Analyzer) Frame() dataframe.DataFrame {
	return a.frame
}

func preview(df dataframe.DataFrame, n int) dataframe.DataFrame {
	if df.Nrow() <= n {
		return df
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return df.Subset(idx)
}
