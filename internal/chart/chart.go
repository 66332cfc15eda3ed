// Package chart runs the build, draw and legend-change lifecycle of one chart
// instance on top of a planner strategy.
package chart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mazilong/tui.chart/internal/dataprocessor"
	"github.com/mazilong/tui.chart/internal/format"
	"github.com/mazilong/tui.chart/internal/logger"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/planner"
	"github.com/mazilong/tui.chart/internal/predicate"
	"github.com/mazilong/tui.chart/internal/scale"
)

// Container instantiates the planned components
type Container interface {
	Mount(requests []models.ComponentRequest) error
}

// ScaleComputer builds the initial scale of a value axis
type ScaleComputer interface {
	Compute(req scale.Request, values []float64, formats []format.Func) models.AxisScaleData
}

// Definition is the input of a chart build
type Definition struct {
	// Description is markdown shown next to rendered HTML charts
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Data        models.RawData `json:"data" yaml:"data"`
	Options     models.Options `json:"options" yaml:"options"`
	Theme       models.Theme   `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// Frame is the state of one draw, ready for a renderer
type Frame struct {
	ChartID     string                          `json:"chartId"`
	Description string                          `json:"description,omitempty"`
	Plan        *planner.Plan                   `json:"plan"`
	Categories  []string                        `json:"categories"`
	Series      models.RawSeriesSet             `json:"series"`
	Axes        map[string]models.AxisScaleData `json:"axes"`
	Synced      bool                            `json:"synced"`
	// Redraw holds the parameters of a legend-change redraw, empty on Draw
	Redraw      planner.RedrawParams            `json:"redraw"`
}

// Chart is one chart instance. Its plan is fixed at build time; scales are
// recomputed on every draw.
type Chart struct {
	ID string

	mu          sync.Mutex
	description string
	planner     planner.ComboPlanner
	plan        *planner.Plan
	data        *dataprocessor.Processor
	computer    ScaleComputer
	sync        *scale.Synchronizer
	container   Container
	axes        *scale.AxesData
	log         *logger.Logger
}

// New plans def and mounts the components on container
func New(def Definition, computer ScaleComputer, container Container) (*Chart, error) {
	p, err := planner.New(def.Options.ChartType)
	if err != nil {
		return nil, fmt.Errorf("failed to select planner: %w", err)
	}

	data := dataprocessor.New(def.Data, def.Options)
	plan, err := p.Plan(planner.Input{
		Raw:     data.RawSeriesSet(),
		Options: def.Options,
		Theme:   def.Theme,
		Data:    data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s chart: %w", def.Options.ChartType, err)
	}

	c := &Chart{
		ID:          uuid.New().String(),
		description: def.Description,
		planner:     p,
		plan:        plan,
		data:        data,
		computer:    computer,
		sync:        scale.NewSynchronizer(data.FormatFunctions()),
		container:   container,
		axes:        scale.NewAxesData(),
		log:         logger.WithComponent("chart"),
	}

	if err := container.Mount(plan.Components); err != nil {
		return nil, fmt.Errorf("failed to mount components: %w", err)
	}

	c.log.Info("Chart built", map[string]interface{}{
		"id":         c.ID,
		"chartType":  def.Options.ChartType,
		"components": len(plan.Components),
	})
	return c, nil
}

// Plan returns the build-time plan
func (c *Chart) Plan() *planner.Plan {
	return c.plan
}

// Axes returns the scales of the last draw
func (c *Chart) Axes() map[string]models.AxisScaleData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axes.Snapshot()
}

// Draw computes the axis scales and synchronizes the y-axes
func (c *Chart) Draw() *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draw(planner.RedrawParams{})
}

// OnChangeCheckedLegends applies legend visibility and redraws
func (c *Chart) OnChangeCheckedLegends(checked map[string][]bool) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.SetCheckedLegends(checked)
	return c.draw(c.planner.RedrawParams(c.plan))
}

func (c *Chart) draw(params planner.RedrawParams) *Frame {
	axes := scale.NewAxesData()
	formats := c.data.FormatFunctions()

	for _, req := range c.planner.ScaleRequests(c.plan, params) {
		axes.Set(req.Name, c.computer.Compute(req, c.values(req), formats))
	}
	synced := c.planner.Reconcile(axes, c.sync)
	c.axes = axes

	visible := make(models.RawSeriesSet, len(c.plan.ChartTypesMap.SeriesNames))
	for _, name := range c.plan.ChartTypesMap.SeriesNames {
		visible[name] = c.data.VisibleSeries(name)
	}

	c.log.Debug("Chart drawn", map[string]interface{}{
		"id":     c.ID,
		"synced": synced,
	})

	return &Frame{
		ChartID:     c.ID,
		Description: c.description,
		Plan:        c.plan,
		Categories:  c.data.Categories(),
		Series:      visible,
		Axes:        axes.Snapshot(),
		Synced:      synced,
		Redraw:      params,
	}
}

// values collects the values an axis must cover. A stacked family
// contributes its stack sums instead of its raw values.
func (c *Chart) values(req scale.Request) []float64 {
	families := []string{req.ChartType.String()}
	if req.SingleYAxis {
		families = c.plan.ChartTypesMap.SeriesNames
	}

	if !predicate.IsValidStackType(req.StackType) {
		return c.data.Values(families...)
	}

	var values []float64
	for _, family := range families {
		if family == req.StackChartType.String() {
			values = append(values, c.data.StackedValues(family)...)
			continue
		}
		values = append(values, c.data.Values(family)...)
	}
	return values
}
