package planner

import (
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
)

// AxisLayout is the number of y-axes a chart draws
type AxisLayout struct {
	YAxisCount   int  `json:"yAxisCount"`
	HasSecondary bool `json:"hasSecondary"`
}

// PlanAxes gives every resolved family its own y-axis, at most two
func PlanAxes(m ChartTypesMap) AxisLayout {
	if len(m.ChartTypes) == 2 {
		return AxisLayout{YAxisCount: 2, HasSecondary: true}
	}
	return AxisLayout{YAxisCount: 1}
}

// DivergingLayout is the diverging bar configuration derived from options
type DivergingLayout struct {
	Diverging     bool   `json:"diverging"`
	StackType     string `json:"stackType,omitempty"`
	HasRightYAxis bool   `json:"hasRightYAxis"`
	IsCenter      bool   `json:"isCenter"`
}

// PlanDiverging derives the diverging layout without touching opts
func PlanDiverging(opts models.Options) DivergingLayout {
	layout := DivergingLayout{
		Diverging:     opts.Series.Diverging,
		StackType:     opts.Series.StackType,
		HasRightYAxis: opts.YAxis.IsList() && opts.YAxis.Len() > 1,
	}
	if !layout.Diverging {
		return layout
	}

	if layout.StackType == "" {
		layout.StackType = models.NormalStack
	}
	layout.IsCenter = predicate.IsYAxisAlignCenter(layout.HasRightYAxis, opts.YAxis.Align())
	return layout
}
