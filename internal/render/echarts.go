package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
)

const defaultAreaOpacity = 0.3

// ECharts renders interactive HTML pages with go-echarts
type ECharts struct {
	size Size
}

// NewECharts creates an HTML renderer
func NewECharts(size Size) *ECharts {
	return &ECharts{size: size}
}

// ContentType implements Renderer
func (e *ECharts) ContentType() string { return "text/html; charset=utf-8" }

// Extension implements Renderer
func (e *ECharts) Extension() string { return ".html" }

// rectChart is the part of a go-echarts rectangular chart the renderer drives
type rectChart interface {
	Overlap(a ...charts.Overlaper)
	ExtendYAxis(yAxis ...opts.YAxis)
	Render(w io.Writer) error
}

// Render draws frame and writes a complete HTML page
func (e *ECharts) Render(w io.Writer, c *Container, frame *chart.Frame) error {
	if frame == nil || frame.Plan == nil {
		return fmt.Errorf("frame has no plan")
	}

	var (
		base rectChart
		err  error
	)
	if frame.Plan.ChartTypesMap.ChartTypes[0] == charttype.Bar.String() {
		base = e.horizontalBar(c, frame)
	} else {
		base, err = e.verticalCombo(c, frame)
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := base.Render(&buf); err != nil {
		return fmt.Errorf("failed to render echarts page: %w", err)
	}

	page, err := WithDescription(buf.Bytes(), frame.Description)
	if err != nil {
		return err
	}
	if _, err := w.Write(page); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func (e *ECharts) globalOptions(frame *chart.Frame) []charts.GlobalOpts {
	options := frame.Plan.Options
	size := e.size.resolve(options.Chart)

	trigger := "item"
	if frame.Plan.Derived.TooltipGrouped {
		trigger = "axis"
	}
	legend := options.Legend.Visible == nil || *options.Legend.Visible

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  fmt.Sprintf("%dpx", size.Width),
			Height: fmt.Sprintf("%dpx", size.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: options.Chart.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(legend)}),
	}
}

func (e *ECharts) verticalCombo(c *Container, frame *chart.Frame) (rectChart, error) {
	var (
		bar   *charts.Bar
		lines []*charts.Line
	)

	for _, comp := range c.Series() {
		family := comp.Series.ChartType
		name := comp.Series.SeriesName
		index := axisIndex(frame, name)
		option := comp.Series.Options
		series := frame.Series[name]
		values := seriesValues(series, option.StackType)

		switch family {
		case charttype.Column:
			if bar == nil {
				bar = charts.NewBar()
				bar.SetXAxis(frame.Categories)
			}
			for i, s := range series {
				bar.AddSeries(s.Name, barData(values[i]),
					charts.WithBarChartOpts(opts.BarChart{Stack: stackKey(s, name, option.StackType), YAxisIndex: index}),
					charts.WithItemStyleOpts(opts.ItemStyle{Color: color(comp.Series.Theme, i)}),
					charts.WithLabelOpts(opts.Label{Show: opts.Bool(option.ShowLabel)}),
				)
			}
		case charttype.Line, charttype.Area:
			line := charts.NewLine()
			line.SetXAxis(frame.Categories)
			for i, s := range series {
				seriesOpts := []charts.SeriesOpts{
					charts.WithLineChartOpts(opts.LineChart{
						Smooth:     opts.Bool(option.Spline),
						Stack:      stackKey(s, name, option.StackType),
						YAxisIndex: index,
					}),
					charts.WithItemStyleOpts(opts.ItemStyle{Color: color(comp.Series.Theme, i)}),
					charts.WithLabelOpts(opts.Label{Show: opts.Bool(option.ShowLabel)}),
				}
				if family == charttype.Area {
					opacity := option.AreaOpacity
					if opacity <= 0 {
						opacity = defaultAreaOpacity
					}
					seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(float32(opacity))}))
				}
				line.AddSeries(s.Name, lineData(values[i]), seriesOpts...)
			}
			lines = append(lines, line)
		default:
			return nil, fmt.Errorf("series %q: %s cannot render in a vertical chart", comp.Name, family)
		}
	}

	global := append(e.globalOptions(frame),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(e.valueYAxis(c, frame, models.YAxisName)),
	)

	var base rectChart
	switch {
	case bar != nil:
		bar.SetGlobalOptions(global...)
		base = bar
	case len(lines) > 0:
		lines[0].SetGlobalOptions(global...)
		base = lines[0]
		lines = lines[1:]
	default:
		return nil, fmt.Errorf("no series components mounted")
	}

	for _, line := range lines {
		base.Overlap(line)
	}
	if _, ok := c.Component(models.RightYAxisName); ok {
		base.ExtendYAxis(e.valueYAxis(c, frame, models.RightYAxisName))
	}
	return base, nil
}

func (e *ECharts) horizontalBar(c *Container, frame *chart.Frame) rectChart {
	bar := charts.NewBar()

	xAxis := opts.XAxis{Type: "value", Name: frame.Plan.Options.XAxis.Title}
	if data, ok := frame.Axes[models.XAxisName]; ok {
		xAxis.Min = data.Limit.Min
		xAxis.Max = data.Limit.Max
		xAxis.SplitNumber = data.TickCount - 1
	}
	yAxis := opts.YAxis{Type: "category"}
	if comp, ok := c.Component(models.YAxisName); ok && comp.Axis != nil {
		yAxis.Name = comp.Axis.Title
	}

	bar.SetGlobalOptions(append(e.globalOptions(frame),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(yAxis),
	)...)
	bar.SetXAxis(frame.Categories)

	for _, comp := range c.Series() {
		option := comp.Series.Options
		series := frame.Series[comp.Series.SeriesName]
		values := seriesValues(series, option.StackType)
		for i, s := range series {
			bar.AddSeries(s.Name, barData(values[i]),
				charts.WithBarChartOpts(opts.BarChart{Stack: stackKey(s, comp.Series.SeriesName, option.StackType)}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: color(comp.Series.Theme, i)}),
				charts.WithLabelOpts(opts.Label{Show: opts.Bool(option.ShowLabel)}),
			)
		}
	}

	if comp, ok := c.Component(models.RightYAxisName); ok {
		right := opts.YAxis{Type: "category", Data: frame.Categories}
		if comp.Axis != nil {
			right.Name = comp.Axis.Title
		}
		bar.ExtendYAxis(right)
	}
	bar.XYReversal()
	return bar
}

func (e *ECharts) valueYAxis(c *Container, frame *chart.Frame, name string) opts.YAxis {
	axis := opts.YAxis{Type: "value"}
	if comp, ok := c.Component(name); ok && comp.Axis != nil {
		axis.Name = comp.Axis.Title
	}
	if data, ok := frame.Axes[name]; ok {
		axis.Min = data.Limit.Min
		axis.Max = data.Limit.Max
		axis.SplitNumber = data.TickCount - 1
	}
	return axis
}

func barData(values []float64) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func color(theme models.SeriesTheme, index int) string {
	if len(theme.Colors) == 0 {
		return models.DefaultPalette[index%len(models.DefaultPalette)]
	}
	return theme.Colors[index%len(theme.Colors)]
}
