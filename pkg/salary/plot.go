package salary

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var locationColors = map[Location]color.RGBA{
	Remote: {R: 0xff, A: 0xff},
	OnSite: {G: 0x80, A: 0xff},
	Hybrid: {B: 0xff, A: 0xff},
}

var educationGlyphs = map[Education]draw.GlyphDrawer{
	Bachelors: draw.CircleGlyph{},
	Masters:   draw.BoxGlyph{},
	PhD:       draw.PyramidGlyph{},
}

// Render draws the scatter (color by location, glyph by education) with the
// per-location fit lines overlaid, and saves the chart to path.
func Render(records []Record, fits []Fit, path string) error {
	p := plot.New()
	p.Title.Text = "Experience vs Salary by Education and Location"
	p.X.Label.Text = "Years of Experience"
	p.Y.Label.Text = "Salary (in thousands USD)"
	p.Add(plotter.NewGrid())

	// One scatter per (location, education) pair present in the data, so
	// every point gets its group color and education shape.
	type groupKey struct {
		loc Location
		edu Education
	}
	groups := make(map[groupKey]plotter.XYs)
	for _, r := range records {
		k := groupKey{r.Location, r.Education}
		groups[k] = append(groups[k], plotter.XY{X: r.Experience, Y: r.Salary})
	}
	legendDone := make(map[Location]bool)
	for _, loc := range Locations {
		for _, edu := range []Education{Bachelors, Masters, PhD} {
			xys, ok := groups[groupKey{loc, edu}]
			if !ok {
				continue
			}
			glyph := educationGlyphs[edu]
			s, err := plotter.NewScatter(xys)
			if err != nil {
				return fmt.Errorf("scatter %s/%s: %w", loc, edu, err)
			}
			s.Color = locationColors[loc]
			s.Shape = glyph
			s.Radius = vg.Points(4)
			p.Add(s)
			if !legendDone[loc] {
				p.Legend.Add(loc.String(), s)
				legendDone[loc] = true
			}
		}
	}

	// Fit lines share one evenly spaced domain over the global experience
	// range, dashed in the group color.
	domain := Domain(records, 100)
	for _, fit := range fits {
		xys := make(plotter.XYs, len(domain))
		for i, x := range domain {
			xys[i] = plotter.XY{X: x, Y: fit.Predict(x)}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("fit line %s: %w", fit.Location, err)
		}
		l.Color = locationColors[fit.Location]
		l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(fit.Location.String()+" Fit", l)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
