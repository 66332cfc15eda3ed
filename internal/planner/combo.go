package planner

import (
	"fmt"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
	"github.com/mazilong/tui.chart/internal/scale"
)

// VerticalComboPlanner plans column, line and area charts that may mix two
// families on two y-axes
type VerticalComboPlanner struct{}

// NewComboPlanner creates the vertical combo strategy
func NewComboPlanner() *VerticalComboPlanner {
	return &VerticalComboPlanner{}
}

// Plan resolves families, axes and options, then composes the components
func (p *VerticalComboPlanner) Plan(in Input) (*Plan, error) {
	m := Resolve(in.Raw, in.Options.YAxis)
	if len(m.SeriesNames) == 0 {
		return nil, configError("series", "", ErrNoSeries)
	}
	if len(m.ChartTypes) > 2 {
		err := fmt.Errorf("%w: %d families, at most 2 y-axes", ErrTooManyFamilies, len(m.ChartTypes))
		return nil, configError("series", fmt.Sprint(m.ChartTypes), err)
	}

	yAxisOptions := MapOptions(m.ChartTypes, in.Options.YAxis)
	components, err := NewComposer(in.Data, in.Options.Series, in.Theme).Compose(m, yAxisOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to compose combo chart: %w", err)
	}

	plan := &Plan{
		ChartType:     in.Options.ChartType,
		ChartTypesMap: m,
		Axes:          PlanAxes(m),
		YAxisOptions:  yAxisOptions,
		Components:    components,
		Derived: Derived{
			StackType:      in.Options.Series.StackType,
			HasRightYAxis:  len(m.ChartTypes) == 2,
			TooltipGrouped: true,
		},
		Options: in.Options,
	}

	log.Debug("combo chart planned", map[string]interface{}{
		"chartTypes": m.ChartTypes,
		"yAxes":      plan.Axes.YAxisCount,
		"components": len(components),
	})
	return plan, nil
}

// RedrawParams keeps the planned axis order
func (p *VerticalComboPlanner) RedrawParams(plan *Plan) RedrawParams {
	return RedrawParams{OptionChartTypes: append([]string(nil), plan.ChartTypesMap.OptionChartTypes...)}
}

// ScaleRequests returns the yAxis scale and, with two families, the
// rightYAxis scale. A single shared y-axis takes the stack type of the first
// stackable series option.
func (p *VerticalComboPlanner) ScaleRequests(plan *Plan, params RedrawParams) []scale.Request {
	chartTypes := plan.ChartTypesMap.ChartTypes
	if len(params.OptionChartTypes) == len(chartTypes) && len(chartTypes) > 0 {
		chartTypes = params.OptionChartTypes
	}
	if len(chartTypes) == 0 {
		return nil
	}

	single := len(chartTypes) == 1
	requests := make([]scale.Request, 0, len(chartTypes))
	names := []string{models.YAxisName, models.RightYAxisName}

	for i, name := range chartTypes {
		family, err := charttype.Parse(name)
		if err != nil {
			continue
		}
		req := scale.Request{
			Name:        names[i],
			Area:        scale.AreaYAxis,
			ChartType:   family,
			Option:      plan.YAxisOptions[name],
			SingleYAxis: single,
		}
		if single {
			req.StackType, req.StackChartType = singleAxisStack(plan)
		} else if opt := plan.Options.Series.For(name); predicate.IsAllowedStackOption(family) && predicate.IsValidStackType(opt.StackType) {
			req.StackType, req.StackChartType = opt.StackType, family
		}
		requests = append(requests, req)
	}
	return requests
}

func singleAxisStack(plan *Plan) (string, charttype.Family) {
	for _, seriesName := range plan.ChartTypesMap.SeriesNames {
		family, err := charttype.Parse(seriesName)
		if err != nil || !predicate.IsAllowedStackOption(family) {
			continue
		}
		if opt := plan.Options.Series.For(seriesName); predicate.IsValidStackType(opt.StackType) {
			return opt.StackType, family
		}
	}
	return "", charttype.Unknown
}

// Reconcile grows the y-axis with fewer ticks
func (p *VerticalComboPlanner) Reconcile(axes *scale.AxesData, sync *scale.Synchronizer) bool {
	return axes.Sync(sync)
}
