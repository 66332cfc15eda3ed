package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/format"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
)

// DefaultTickCount is the target number of ticks when neither the axis option
// nor the computer configuration names one
const DefaultTickCount = 5

// Area names which side of the chart an axis scale belongs to
type Area string

const (
	AreaYAxis Area = "yAxis"
	AreaXAxis Area = "xAxis"
)

// Request describes one axis scale to compute
type Request struct {
	Name      string            `json:"name"`
	Area      Area              `json:"area"`
	ChartType charttype.Family  `json:"chartType,omitempty"`
	Option    models.AxisOption `json:"option"`
	// SingleYAxis is set when every series shares the one y-axis
	SingleYAxis bool `json:"singleYAxis,omitempty"`
	// StackType and StackChartType apply a stack found in the series options
	StackType      string           `json:"stackType,omitempty"`
	StackChartType charttype.Family `json:"stackChartType,omitempty"`
	// Divided mirrors the scale around zero for diverging charts
	Divided bool `json:"divided,omitempty"`
}

// Computer builds the initial scale of an axis from its values
type Computer struct {
	tickCount int
}

// NewComputer creates a computer. A non-positive tickCount selects DefaultTickCount.
func NewComputer(tickCount int) *Computer {
	if tickCount <= 0 {
		tickCount = DefaultTickCount
	}
	return &Computer{tickCount: tickCount}
}

// Compute returns the scale for req over values, labelled with formats
func (c *Computer) Compute(req Request, values []float64, formats []format.Func) models.AxisScaleData {
	lo, hi := valueRange(values)

	if predicate.IsPercentStack(req.StackType) {
		lo, hi = 0, 100
		if hasNegative(values) {
			lo = -100
		}
	}
	if req.Divided {
		edge := math.Max(math.Abs(lo), math.Abs(hi))
		lo, hi = -edge, edge
	}
	if req.Option.Min != nil {
		lo = *req.Option.Min
	}
	if req.Option.Max != nil {
		hi = *req.Option.Max
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		hi = lo + 1
	}

	target := c.tickCount
	if req.Option.TickCount > 0 {
		target = req.Option.TickCount
	}
	step := tickStep(lo, hi, target)

	limit := models.Limit{Min: lo, Max: hi}
	if req.Option.Min == nil {
		limit.Min = math.Floor(lo/step) * step
	}
	if req.Option.Max == nil {
		limit.Max = math.Ceil(hi/step) * step
	}
	if limit.Max <= limit.Min {
		limit.Max = limit.Min + step
	}

	tickCount := int(math.Round((limit.Max-limit.Min)/step)) + 1
	funcs := append(append([]format.Func(nil), formats...), format.Affix(req.Option.Prefix, req.Option.Suffix))
	return models.AxisScaleData{
		Limit:          limit,
		Step:           step,
		TickCount:      tickCount,
		ValidTickCount: tickCount,
		Labels:         format.Values(MakeLabelsFromLimit(limit, step), funcs),
		Prefix:         req.Option.Prefix,
		Suffix:         req.Option.Suffix,
	}
}

// tickStep asks go-moremath for the densest tick level with at most target ticks
func tickStep(lo, hi float64, target int) float64 {
	ls := moremath.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(moremath.TickOptions{Max: target})
	if len(major) >= 2 {
		if step := major[1] - major[0]; step > 0 {
			return step
		}
	}
	span := hi - lo
	if target > 1 {
		return span / float64(target-1)
	}
	return span
}

// valueRange returns the data range with zero included as the baseline
func valueRange(values []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func hasNegative(values []float64) bool {
	for _, v := range values {
		if v < 0 {
			return true
		}
	}
	return false
}
