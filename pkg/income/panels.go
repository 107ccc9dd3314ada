package income

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Bracket colors follow the original palette: blue for <=50K, orange for
// >50K, then spares for unexpected extra brackets.
var bracketColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

func bracketColor(i int) color.RGBA {
	return bracketColors[i%len(bracketColors)]
}

func thinBlackLine() draw.LineStyle {
	return draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
}

// fillThumb is a legend thumbnail drawn as a solid swatch, for plotters that
// do not provide their own thumbnail.
type fillThumb struct {
	color.Color
}

func (t fillThumb) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonXY(pts)
	c.FillPolygon(t.Color, poly)
}

// Render runs the four panel renderers independently and composes their
// results onto one 2x2 canvas written to path. A failed panel is logged and
// replaced by an error placeholder; the siblings are unaffected.
func (a *Analyzer) Render(path string) error {
	panels := []struct {
		name string
		fn   func() (*plot.Plot, error)
	}{
		{"stacked bar chart", a.stackedBarPanel},
		{"line graph", a.hoursByAgePanel},
		{"histogram", a.hoursHistogramPanel},
		{"grouped bar chart", a.educationPanel},
	}

	plots := make([]*plot.Plot, len(panels))
	for i, panel := range panels {
		p, err := panel.fn()
		if err != nil {
			a.logger.Error().Err(err).Str("panel", panel.name).Msg("panel failed, rendering placeholder")
			p = errorPanel(panel.name)
		}
		plots[i] = p
	}

	if err := writeGrid(plots, path); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	a.logger.Info().Str("path", path).Msg("saved income analysis chart")
	return nil
}

// errorPanel is the in-panel placeholder for a renderer that failed.
func errorPanel(name string) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Error: could not create " + name
	p.Title.TextStyle.Color = color.RGBA{R: 0xc4, A: 0xff}
	p.HideAxes()
	return p
}

// writeGrid tiles the panels 2x2 and writes a single PNG.
func writeGrid(plots []*plot.Plot, path string) error {
	const (
		width  = 16 * vg.Inch
		height = 12 * vg.Inch
	)
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 4,
		PadLeft: vg.Millimeter * 4, PadRight: vg.Millimeter * 4,
	}

	grid := [][]*plot.Plot{{plots[0], plots[1]}, {plots[2], plots[3]}}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// stackedBarPanel: counts by sex, one stacked segment per income bracket,
// with a value label on every segment.
func (a *Analyzer) stackedBarPanel() (*plot.Plot, error) {
	sexes, brackets, counts := countsByGroup(a.frame, a.cols.sex, a.cols.income)
	if len(sexes) == 0 {
		return nil, fmt.Errorf("no rows to chart")
	}

	p := plot.New()
	p.Title.Text = "Income Distribution by Gender"
	p.X.Label.Text = "Gender"
	p.Y.Label.Text = "Number of Individuals"
	p.Legend.Top = true

	var prev *plotter.BarChart
	for bi, bracket := range brackets {
		bar, err := plotter.NewBarChart(plotter.Values(counts[bracket]), vg.Points(40))
		if err != nil {
			return nil, err
		}
		bar.Color = bracketColor(bi)
		bar.LineStyle = thinBlackLine()
		if prev != nil {
			bar.StackOn(prev)
		}
		p.Add(bar)
		p.Legend.Add(bracket, bar)
		prev = bar
	}

	// Per-segment value labels, centered in each segment.
	var xys plotter.XYs
	var texts []string
	base := make([]float64, len(sexes))
	for _, bracket := range brackets {
		for i, v := range counts[bracket] {
			if v == 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(i), Y: base[i] + v/2})
			texts = append(texts, strconv.FormatFloat(v, 'f', 0, 64))
			base[i] += v
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.NominalX(sexes...)
	return p, nil
}

// hoursByAgePanel: mean weekly hours per 5-year age bucket, one line per
// income bracket.
func (a *Analyzer) hoursByAgePanel() (*plot.Plot, error) {
	labels, means := meanHoursByAgeBin(a.frame, a.cols.age, a.cols.income, a.cols.hours)
	if len(means) == 0 {
		return nil, fmt.Errorf("no rows to chart")
	}

	p := plot.New()
	p.Title.Text = "Average Weekly Hours Worked by Age Group and Income"
	p.X.Label.Text = "Age Group (years)"
	p.Y.Label.Text = "Average Hours Worked Per Week"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	brackets := distinct(a.frame, a.cols.income)
	shapes := []draw.GlyphDrawer{draw.CircleGlyph{}, draw.BoxGlyph{}, draw.PyramidGlyph{}}
	plotted := 0
	for bi, bracket := range brackets {
		var xys plotter.XYs
		for i, m := range means[bracket] {
			if math.IsNaN(m) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(i), Y: m})
		}
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = bracketColor(bi)
		line.Width = vg.Points(2)
		points.Color = bracketColor(bi)
		points.Shape = shapes[bi%len(shapes)]
		points.Radius = vg.Points(2.5)
		p.Add(line, points)
		p.Legend.Add(bracket, line, points)
		plotted++
	}
	if plotted == 0 {
		return nil, fmt.Errorf("no numeric hour values to chart")
	}

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// hoursHistogramPanel: overlaid weekly-hours histograms per income bracket
// with a reference line at the 40-hour week.
func (a *Analyzer) hoursHistogramPanel() (*plot.Plot, error) {
	byBracket := valuesByBracket(a.frame, a.cols.income, a.cols.hours)
	if len(byBracket) == 0 {
		return nil, fmt.Errorf("no rows to chart")
	}

	p := plot.New()
	p.Title.Text = "Distribution of Weekly Work Hours by Income Group"
	p.X.Label.Text = "Hours Worked Per Week"
	p.Y.Label.Text = "Number of Individuals"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	maxCount := 0.0
	brackets := distinct(a.frame, a.cols.income)
	for bi, bracket := range brackets {
		hist, err := plotter.NewHist(plotter.Values(byBracket[bracket]), 25)
		if err != nil {
			return nil, err
		}
		c := bracketColor(bi)
		fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xb2}
		hist.FillColor = fill
		hist.LineStyle = thinBlackLine()
		p.Add(hist)
		p.Legend.Add("Income "+bracket, fillThumb{fill})
		for _, bin := range hist.Bins {
			if bin.Weight > maxCount {
				maxCount = bin.Weight
			}
		}
	}

	// Reference marker for the typical 40-hour week.
	rule, err := plotter.NewLine(plotter.XYs{{X: 40, Y: 0}, {X: 40, Y: maxCount}})
	if err != nil {
		return nil, err
	}
	rule.Color = color.RGBA{R: 0xff, A: 0xff}
	rule.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(rule)
	p.Legend.Add("Typical 40h Week", rule)
	return p, nil
}

// educationPanel: mean education level per occupation grouped by income
// bracket, occupations sorted by overall mean descending.
func (a *Analyzer) educationPanel() (*plot.Plot, error) {
	occupations, means := meanEducationByOccupation(a.frame, a.cols.occupation, a.cols.income, a.cols.education)
	if len(occupations) == 0 {
		return nil, fmt.Errorf("no rows to chart")
	}

	p := plot.New()
	p.Title.Text = "Average Education Level by Occupation and Income Group"
	p.X.Label.Text = "Occupation"
	p.Y.Label.Text = "Average Education Level"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	brackets := distinct(a.frame, a.cols.income)
	width := vg.Points(12)
	for bi, bracket := range brackets {
		vals := make(plotter.Values, len(occupations))
		for i, v := range means[bracket] {
			if math.IsNaN(v) {
				v = 0
			}
			vals[i] = v
		}
		bar, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return nil, err
		}
		bar.Color = bracketColor(bi)
		bar.LineStyle = thinBlackLine()
		// Center the group of bars on each tick.
		bar.Offset = width*vg.Length(bi) - width*vg.Length(len(brackets))/2 + width/2
		p.Add(bar)
		p.Legend.Add("Income "+bracket, bar)
	}

	p.NominalX(occupations...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}
