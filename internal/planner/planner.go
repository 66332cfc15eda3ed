// Package planner resolves chart options and raw data into the axes, scales
// and components a chart is built from.
package planner

import (
	"fmt"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/format"
	"github.com/mazilong/tui.chart/internal/logger"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
	"github.com/mazilong/tui.chart/internal/scale"
)

var log = logger.WithComponent("planner")

// DataSource maps series keys to families and supplies number formatting
type DataSource interface {
	FindChartType(seriesName string) (charttype.Family, error)
	FormatFunctions() []format.Func
}

// Input is everything a planner reads. Nothing in it is modified.
type Input struct {
	Raw     models.RawSeriesSet
	Options models.Options
	Theme   models.Theme
	Data    DataSource
}

// Derived carries the flags the planner computes on top of the user options
type Derived struct {
	StackType      string `json:"stackType,omitempty"`
	Diverging      bool   `json:"diverging,omitempty"`
	HasRightYAxis  bool   `json:"hasRightYAxis,omitempty"`
	XAxisDivided   bool   `json:"xAxisDivided,omitempty"`
	SeriesDivided  bool   `json:"seriesDivided,omitempty"`
	PlotDivided    bool   `json:"plotDivided,omitempty"`
	TooltipGrouped bool   `json:"tooltipGrouped,omitempty"`
}

// Plan is the immutable result of planning one chart build
type Plan struct {
	ChartType     string                    `json:"chartType"`
	ChartTypesMap ChartTypesMap             `json:"chartTypesMap"`
	Axes          AxisLayout                `json:"axes"`
	YAxisOptions  YAxisOptionsMap           `json:"yAxisOptions"`
	Components    []models.ComponentRequest `json:"components"`
	Derived       Derived                   `json:"derived"`
	Options       models.Options            `json:"options"`
}

// SeriesOption returns the options of the named series with the derived
// stack and diverging flags applied
func (p *Plan) SeriesOption(seriesName string) models.SeriesOption {
	opt := p.Options.Series.For(seriesName)
	if p.Derived.StackType != "" {
		opt.StackType = p.Derived.StackType
	}
	opt.Diverging = p.Derived.Diverging
	return opt
}

// RedrawParams overrides plan values for one redraw
type RedrawParams struct {
	OptionChartTypes []string `json:"optionChartTypes,omitempty"`
}

// ComboPlanner is the chart-type specific planning strategy
type ComboPlanner interface {
	// Plan builds the component graph of a chart
	Plan(in Input) (*Plan, error)
	// RedrawParams returns the parameters used when legends change
	RedrawParams(plan *Plan) RedrawParams
	// ScaleRequests lists the value-axis scales to compute for one draw
	ScaleRequests(plan *Plan, params RedrawParams) []scale.Request
	// Reconcile aligns the tick counts of two y-axes. It reports whether it ran.
	Reconcile(axes *scale.AxesData, sync *scale.Synchronizer) bool
}

// New selects the planner for chartType
func New(chartType string) (ComboPlanner, error) {
	switch {
	case predicate.IsBarChart(chartType):
		return NewBarPlanner(), nil
	case predicate.IsComboChart(chartType):
		return NewComboPlanner(), nil
	}
	if family, err := charttype.Parse(chartType); err == nil && family.IsVertical() {
		return NewComboPlanner(), nil
	}
	return nil, configError("chartType", chartType, fmt.Errorf("%w: %s", ErrUnknownChartType, chartType))
}
