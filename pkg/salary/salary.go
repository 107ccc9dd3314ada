// Package salary plots a fixed experience/salary survey sample with one
// ordinary-least-squares fit line per work location.
package salary

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// Education level of a surveyed individual.
type Education int

const (
	Bachelors Education = iota
	Masters
	PhD
)

func (e Education) String() string {
	switch e {
	case Bachelors:
		return "Bachelor's"
	case Masters:
		return "Master's"
	case PhD:
		return "PhD"
	}
	return fmt.Sprintf("Education(%d)", int(e))
}

// Location is the work arrangement a fit line is computed for.
type Location int

const (
	Remote Location = iota
	OnSite
	Hybrid
)

func (l Location) String() string {
	switch l {
	case Remote:
		return "Remote"
	case OnSite:
		return "On-site"
	case Hybrid:
		return "Hybrid"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Locations in fit and legend order.
var Locations = []Location{Remote, OnSite, Hybrid}

// Record is one surveyed individual. Salary is in thousands of USD.
type Record struct {
	Experience float64
	Education  Education
	Location   Location
	Salary     float64
}

// Dataset returns the fixed survey sample.
func Dataset() []Record {
	experience := []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 13, 15, 16, 18, 20}
	education := []Education{0, 0, 1, 1, 0, 2, 1, 2, 1, 2, 0, 1, 2, 0, 1}
	location := []Location{0, 1, 1, 2, 0, 2, 2, 1, 1, 0, 2, 2, 1, 0, 1}
	salary := []float64{48, 53, 60, 65, 68, 80, 78, 88, 90, 100, 92, 105, 108, 115, 120}

	records := make([]Record, len(experience))
	for i := range records {
		records[i] = Record{
			Experience: experience[i],
			Education:  education[i],
			Location:   location[i],
			Salary:     salary[i],
		}
	}
	return records
}

// MinGroupSize is the smallest location group an OLS line is fit to. A line
// through fewer points is meaningless, so such groups are skipped.
const MinGroupSize = 2

// Fit is an ordinary-least-squares line of salary on experience for one
// location group.
type Fit struct {
	Location  Location
	Intercept float64
	Slope     float64
}

// Predict evaluates the fit line at x years of experience.
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// FitByLocation fits one OLS line per location. Locations with fewer than
// MinGroupSize records are skipped with a logged warning rather than
// aborting the remaining fits.
func FitByLocation(records []Record, logger zerolog.Logger) []Fit {
	var fits []Fit
	for _, loc := range Locations {
		var xs, ys []float64
		for _, r := range records {
			if r.Location == loc {
				xs = append(xs, r.Experience)
				ys = append(ys, r.Salary)
			}
		}
		if len(xs) < MinGroupSize {
			logger.Warn().
				Stringer("location", loc).
				Int("points", len(xs)).
				Int("min", MinGroupSize).
				Msg("skipping fit for undersized group")
			continue
		}
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		fits = append(fits, Fit{Location: loc, Intercept: alpha, Slope: beta})
	}
	return fits
}

// Domain returns n evenly spaced experience values spanning the global
// range of the records, shared by every fit line.
func Domain(records []Record, n int) []float64 {
	if len(records) == 0 || n < 2 {
		return nil
	}
	min, max := records[0].Experience, records[0].Experience
	for _, r := range records[1:] {
		if r.Experience < min {
			min = r.Experience
		}
		if r.Experience > max {
			max = r.Experience
		}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}
