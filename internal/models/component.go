package models

import "github.com/mazilong/tui.chart/internal/charttype"

// ComponentRole tells the container what kind of component to mount
type ComponentRole string

const (
	RoleAxis   ComponentRole = "axis"
	RoleSeries ComponentRole = "series"
	RolePlot   ComponentRole = "plot"
)

// Well-known component names
const (
	YAxisName      = "yAxis"
	XAxisName      = "xAxis"
	RightYAxisName = "rightYAxis"
	PlotName       = "plot"
)

// SeriesComponentData is the payload handed to a series renderer
type SeriesComponentData struct {
	SeriesName           string           `json:"seriesName"`
	ChartType            charttype.Family `json:"chartType"`
	AllowNegativeTooltip bool             `json:"allowNegativeTooltip,omitempty"`
	Options              SeriesOption     `json:"options"`
	Theme                SeriesTheme      `json:"theme"`
}

// ComponentRequest describes one component for the container to instantiate
type ComponentRequest struct {
	Name       string                 `json:"name"`
	Role       ComponentRole          `json:"role"`
	ChartType  charttype.Family       `json:"chartType,omitempty"`
	IsVertical bool                   `json:"isVertical,omitempty"`
	Divided    bool                   `json:"divided,omitempty"`
	Renderer   charttype.RendererKind `json:"renderer,omitempty"`
	Axis       *AxisOption            `json:"axis,omitempty"`
	Series     *SeriesComponentData   `json:"series,omitempty"`
}
