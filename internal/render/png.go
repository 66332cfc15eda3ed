package render

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
)

// groupWidth is the share of a category slot covered by its bars
const groupWidth = 0.7

// PNG renders static images with go-chart
type PNG struct {
	size Size
}

// NewPNG creates a PNG renderer
func NewPNG(size Size) *PNG {
	return &PNG{size: size}
}

// ContentType implements Renderer
func (p *PNG) ContentType() string { return "image/png" }

// Extension implements Renderer
func (p *PNG) Extension() string { return ".png" }

// rectSeries draws one series as filled rectangles, vertical columns or
// horizontal bars, side by side per slot and stacked on bases
type rectSeries struct {
	name       string
	color      drawing.Color
	yAxis      gochart.YAxisType
	horizontal bool
	slot       int
	slots      int
	values     []float64
	bases      []float64
}

func (s rectSeries) GetName() string              { return s.name }
func (s rectSeries) GetStyle() gochart.Style      { return gochart.Style{FillColor: s.color, StrokeColor: s.color} }
func (s rectSeries) GetYAxis() gochart.YAxisType  { return s.yAxis }
func (s rectSeries) Len() int                     { return len(s.values) }
func (s rectSeries) Validate() error              { return nil }
func (s rectSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	r.SetFillColor(s.color)
	for i, v := range s.values {
		base := 0.0
		if i < len(s.bases) {
			base = s.bases[i]
		}

		var x0, x1, y0, y1 int
		if s.horizontal {
			y0, y1 = s.slotEdges(i, func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) })
			x0 = canvasBox.Left + xrange.Translate(base)
			x1 = canvasBox.Left + xrange.Translate(base+v)
		} else {
			x0, x1 = s.slotEdges(i, func(v float64) int { return canvasBox.Left + xrange.Translate(v) })
			y0 = canvasBox.Bottom - yrange.Translate(base)
			y1 = canvasBox.Bottom - yrange.Translate(base+v)
		}
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}

		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.Close()
		r.Fill()
	}
}

// slotEdges returns the pixel edges of this series' slot inside category i
func (s rectSeries) slotEdges(i int, translate func(float64) int) (int, int) {
	slots := s.slots
	if slots < 1 {
		slots = 1
	}
	inner := groupWidth / float64(slots)
	start := float64(i) + (1-groupWidth)/2 + float64(s.slot)*inner
	a, b := translate(start), translate(start+inner)
	if b < a {
		a, b = b, a
	}
	return a, b
}

// placeholderSeries keeps go-chart drawing axes when every series is hidden
type placeholderSeries struct{}

func (placeholderSeries) GetName() string             { return "" }
func (placeholderSeries) GetStyle() gochart.Style     { return gochart.Style{} }
func (placeholderSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (placeholderSeries) Len() int                    { return 0 }
func (placeholderSeries) Validate() error             { return nil }
func (placeholderSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
}

// Render draws frame as a PNG image
func (p *PNG) Render(w io.Writer, c *Container, frame *chart.Frame) error {
	if frame == nil || frame.Plan == nil {
		return fmt.Errorf("frame has no plan")
	}

	options := frame.Plan.Options
	size := p.size.resolve(options.Chart)
	graph := gochart.Chart{
		Title:      options.Chart.Title,
		TitleStyle: gochart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		Width:      size.Width,
		Height:     size.Height,
	}

	horizontal := frame.Plan.ChartTypesMap.ChartTypes[0] == charttype.Bar.String()
	categoryRange := &gochart.ContinuousRange{Min: 0, Max: float64(max(len(frame.Categories), 1))}
	gridStyle := gochart.Style{StrokeColor: drawing.Color{R: 230, G: 230, B: 230, A: 255}, StrokeWidth: 1}

	if horizontal {
		graph.XAxis = gochart.XAxis{
			Name:           options.XAxis.Title,
			Style:          gochart.Style{FontSize: 10},
			GridMajorStyle: gridStyle,
		}
		if data, ok := frame.Axes[models.XAxisName]; ok {
			graph.XAxis.Range = &gochart.ContinuousRange{Min: data.Limit.Min, Max: data.Limit.Max}
			graph.XAxis.Ticks = valueTicks(data)
		}
		graph.YAxis = gochart.YAxis{
			Name:  axisTitle(c, models.YAxisName),
			Style: gochart.Style{FontSize: 10},
			Range: categoryRange,
			Ticks: categoryTicks(frame.Categories),
		}
	} else {
		graph.XAxis = gochart.XAxis{
			Name:  options.XAxis.Title,
			Style: gochart.Style{FontSize: 10},
			Range: categoryRange,
			Ticks: categoryTicks(frame.Categories),
		}
		graph.YAxis = valueYAxis(c, frame, models.YAxisName, gridStyle)
		if _, ok := c.Component(models.RightYAxisName); ok {
			graph.YAxisSecondary = valueYAxis(c, frame, models.RightYAxisName, gochart.Style{})
		}
	}

	for _, comp := range c.Series() {
		graph.Series = append(graph.Series, p.series(comp, frame, horizontal)...)
	}
	if len(graph.Series) == 0 {
		graph.Series = append(graph.Series, placeholderSeries{})
	}
	if options.Legend.Visible == nil || *options.Legend.Visible {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render png chart: %w", err)
	}
	return nil
}

func (p *PNG) series(comp models.ComponentRequest, frame *chart.Frame, horizontal bool) []gochart.Series {
	name := comp.Series.SeriesName
	option := comp.Series.Options
	raw := frame.Series[name]
	values := seriesValues(raw, option.StackType)

	yAxis := gochart.YAxisPrimary
	if axisIndex(frame, name) == 1 {
		yAxis = gochart.YAxisSecondary
	}

	slots, slotOf := stackSlots(raw, name, option.StackType)
	bases := stackBases(raw, values, name, option.StackType)

	out := make([]gochart.Series, 0, len(raw))
	for i, s := range raw {
		col := hexColor(color(comp.Series.Theme, i))
		switch comp.Series.ChartType {
		case charttype.Bar, charttype.Column:
			out = append(out, rectSeries{
				name:       s.Name,
				color:      col,
				yAxis:      yAxis,
				horizontal: horizontal,
				slot:       slotOf[i],
				slots:      slots,
				values:     values[i],
				bases:      bases[i],
			})
		case charttype.Line, charttype.Area:
			xs := make([]float64, len(values[i]))
			ys := make([]float64, len(values[i]))
			for j, v := range values[i] {
				xs[j] = float64(j) + 0.5
				ys[j] = v + bases[i][j]
			}
			style := gochart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 3}
			if comp.Series.ChartType == charttype.Area {
				opacity := option.AreaOpacity
				if opacity <= 0 {
					opacity = defaultAreaOpacity
				}
				style.FillColor = col.WithAlpha(uint8(opacity * 255))
			}
			if len(xs) == 0 {
				continue
			}
			out = append(out, gochart.ContinuousSeries{Name: s.Name, Style: style, YAxis: yAxis, XValues: xs, YValues: ys})
		}
	}
	return out
}

// stackSlots gives each stack group, or each unstacked series, its own slot
func stackSlots(series []models.RawSeries, family, stackType string) (int, []int) {
	slotOf := make([]int, len(series))
	keys := make(map[string]int)
	next := 0
	for i, s := range series {
		key := stackKey(s, family, stackType)
		if key == "" {
			slotOf[i] = next
			next++
			continue
		}
		slot, ok := keys[key]
		if !ok {
			slot = next
			keys[key] = slot
			next++
		}
		slotOf[i] = slot
	}
	return next, slotOf
}

// stackBases returns where each value starts: the running positive or
// negative total of the earlier series in the same stack group
func stackBases(series []models.RawSeries, values [][]float64, family, stackType string) [][]float64 {
	bases := make([][]float64, len(series))
	type totals struct{ pos, neg []float64 }
	running := make(map[string]*totals)

	for i, s := range series {
		bases[i] = make([]float64, len(values[i]))
		key := stackKey(s, family, stackType)
		if key == "" {
			continue
		}
		t, ok := running[key]
		if !ok {
			t = &totals{}
			running[key] = t
		}
		for len(t.pos) < len(values[i]) {
			t.pos = append(t.pos, 0)
			t.neg = append(t.neg, 0)
		}
		for j, v := range values[i] {
			if v >= 0 {
				bases[i][j] = t.pos[j]
				t.pos[j] += v
			} else {
				bases[i][j] = t.neg[j]
				t.neg[j] += v
			}
		}
	}
	return bases
}

func valueYAxis(c *Container, frame *chart.Frame, name string, grid gochart.Style) gochart.YAxis {
	axis := gochart.YAxis{
		Name:           axisTitle(c, name),
		Style:          gochart.Style{FontSize: 10},
		GridMajorStyle: grid,
	}
	if data, ok := frame.Axes[name]; ok {
		axis.Range = &gochart.ContinuousRange{Min: data.Limit.Min, Max: data.Limit.Max}
		axis.Ticks = valueTicks(data)
	}
	return axis
}

func axisTitle(c *Container, name string) string {
	if comp, ok := c.Component(name); ok && comp.Axis != nil {
		return comp.Axis.Title
	}
	return ""
}

func valueTicks(data models.AxisScaleData) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(data.Labels))
	for i, label := range data.Labels {
		ticks = append(ticks, gochart.Tick{Value: data.Limit.Min + float64(i)*data.Step, Label: label})
	}
	return ticks
}

func categoryTicks(categories []string) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(categories))
	for i, category := range categories {
		ticks = append(ticks, gochart.Tick{Value: float64(i) + 0.5, Label: category})
	}
	return ticks
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
