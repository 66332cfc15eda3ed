package planner

import (
	"fmt"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/scale"
)

// BarPlanner plans horizontal bar charts. The value axis is the x-axis, the
// y-axes carry categories.
type BarPlanner struct{}

// NewBarPlanner creates the bar strategy
func NewBarPlanner() *BarPlanner {
	return &BarPlanner{}
}

// Plan derives the diverging layout and composes the bar components
func (p *BarPlanner) Plan(in Input) (*Plan, error) {
	seriesNames := in.Raw.Families()
	if len(seriesNames) == 0 {
		return nil, configError("series", "", ErrNoSeries)
	}
	for _, name := range seriesNames {
		family, err := in.Data.FindChartType(name)
		if err != nil {
			return nil, configError("series", name, err)
		}
		if family != charttype.Bar {
			err := fmt.Errorf("%w: %s cannot render in a bar chart", ErrUnknownFamily, family)
			return nil, configError("series", name, err)
		}
	}

	layout := PlanDiverging(in.Options)
	derived := Derived{
		StackType:     layout.StackType,
		Diverging:     layout.Diverging,
		HasRightYAxis: layout.HasRightYAxis,
		XAxisDivided:  layout.IsCenter,
		SeriesDivided: layout.IsCenter,
		PlotDivided:   layout.IsCenter,
	}

	bar := charttype.Bar.String()
	m := ChartTypesMap{
		ChartTypes:       []string{bar},
		SeriesNames:      []string{bar},
		OptionChartTypes: []string{},
	}
	yAxisOptions := MapOptions(m.ChartTypes, in.Options.YAxis)

	plan := &Plan{
		ChartType:     in.Options.ChartType,
		ChartTypesMap: m,
		Axes:          AxisLayout{YAxisCount: 1},
		YAxisOptions:  yAxisOptions,
		Derived:       derived,
		Options:       in.Options,
	}
	if layout.HasRightYAxis {
		plan.Axes = AxisLayout{YAxisCount: 2, HasSecondary: true}
	}

	yOpt := yAxisOptions[bar]
	components := []models.ComponentRequest{
		{Name: models.YAxisName, Role: models.RoleAxis, ChartType: charttype.Bar, IsVertical: true, Axis: &yOpt},
		{Name: models.XAxisName, Role: models.RoleAxis, ChartType: charttype.Bar, Divided: derived.XAxisDivided},
	}
	if layout.HasRightYAxis {
		right, _ := in.Options.YAxis.At(1)
		components = append(components, models.ComponentRequest{
			Name: models.RightYAxisName, Role: models.RoleAxis, ChartType: charttype.Bar, IsVertical: true, Axis: &right,
		})
	}

	renderer, _ := charttype.Bar.Renderer()
	components = append(components,
		models.ComponentRequest{
			Name:      string(renderer),
			Role:      models.RoleSeries,
			ChartType: charttype.Bar,
			Divided:   derived.SeriesDivided,
			Renderer:  renderer,
			Series: &models.SeriesComponentData{
				SeriesName:           bar,
				ChartType:            charttype.Bar,
				AllowNegativeTooltip: layout.Diverging,
				Options:              plan.SeriesOption(bar),
				Theme:                in.Theme.For(bar, 0),
			},
		},
		models.ComponentRequest{Name: models.PlotName, Role: models.RolePlot, Divided: derived.PlotDivided},
	)
	plan.Components = components

	log.Debug("bar chart planned", map[string]interface{}{
		"diverging": layout.Diverging,
		"center":    layout.IsCenter,
		"rightAxis": layout.HasRightYAxis,
	})
	return plan, nil
}

// RedrawParams names bar for both y-axes when a right y-axis exists. The
// chart reports them on the redrawn frame.
func (p *BarPlanner) RedrawParams(plan *Plan) RedrawParams {
	if !plan.Derived.HasRightYAxis {
		return RedrawParams{}
	}
	bar := charttype.Bar.String()
	return RedrawParams{OptionChartTypes: []string{bar, bar}}
}

// ScaleRequests returns the x-axis value scale. The y-axes are category axes,
// so params never changes the request.
func (p *BarPlanner) ScaleRequests(plan *Plan, _ RedrawParams) []scale.Request {
	return []scale.Request{{
		Name:           models.XAxisName,
		Area:           scale.AreaXAxis,
		ChartType:      charttype.Bar,
		Option:         plan.Options.XAxis.AsAxisOption(),
		SingleYAxis:    true,
		StackType:      plan.Derived.StackType,
		StackChartType: charttype.Bar,
		Divided:        plan.Derived.XAxisDivided,
	}}
}

// Reconcile does nothing: the bar y-axes are category axes
func (p *BarPlanner) Reconcile(axes *scale.AxesData, sync *scale.Synchronizer) bool {
	return false
}
