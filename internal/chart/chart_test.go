package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/planner"
	"github.com/mazilong/tui.chart/internal/scale"
)

type recordingContainer struct {
	mounted []models.ComponentRequest
	err     error
}

func (r *recordingContainer) Mount(requests []models.ComponentRequest) error {
	if r.err != nil {
		return r.err
	}
	r.mounted = append(r.mounted, requests...)
	return nil
}

func comboDefinition() Definition {
	return Definition{
		Data: models.RawData{
			Categories: []string{"Q1", "Q2", "Q3", "Q4"},
			Series: models.RawSeriesSet{
				"column": {
					{Name: "Sales", Data: []float64{120, 340, 280, 410}},
					{Name: "Costs", Data: []float64{80, 150, 210, 190}},
				},
				"line": {
					{Name: "Margin", Data: []float64{0.2, 0.35, 0.15, 0.42}},
				},
			},
		},
		Options: models.Options{ChartType: "combo"},
	}
}

func TestNewMountsPlan(t *testing.T) {
	container := &recordingContainer{}
	c, err := New(comboDefinition(), scale.NewComputer(5), container)
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, c.Plan().Components, container.mounted)
}

func TestNewMountError(t *testing.T) {
	_, err := New(comboDefinition(), scale.NewComputer(5), &recordingContainer{err: errors.New("boom")})
	assert.Error(t, err)
}

func TestNewUnknownChartType(t *testing.T) {
	def := comboDefinition()
	def.Options.ChartType = "radar"

	_, err := New(def, scale.NewComputer(5), &recordingContainer{})
	assert.True(t, errors.Is(err, planner.ErrUnknownChartType))
}

func TestDrawSynchronizesYAxes(t *testing.T) {
	c, err := New(comboDefinition(), scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	frame := c.Draw()
	require.True(t, frame.Synced)

	primary := frame.Axes[models.YAxisName]
	secondary := frame.Axes[models.RightYAxisName]
	assert.Equal(t, primary.TickCount, secondary.TickCount)
	assert.GreaterOrEqual(t, primary.Limit.Max, 410.0)
	assert.GreaterOrEqual(t, secondary.Limit.Max, 0.42)
	assert.Equal(t, frame.Axes, c.Axes())
}

func TestDrawGrownAxisKeepsAffix(t *testing.T) {
	def := comboDefinition()
	def.Options.YAxis = models.YAxisList(
		models.AxisOption{Prefix: "$", TickCount: 3},
		models.AxisOption{Suffix: "%", TickCount: 8},
	)
	c, err := New(def, scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	var before models.AxisScaleData
	for _, req := range c.planner.ScaleRequests(c.plan, planner.RedrawParams{}) {
		if req.Name == models.YAxisName {
			before = c.computer.Compute(req, c.values(req), c.data.FormatFunctions())
		}
	}

	frame := c.Draw()
	require.True(t, frame.Synced)

	primary := frame.Axes[models.YAxisName]
	secondary := frame.Axes[models.RightYAxisName]
	require.Greater(t, primary.TickCount, before.TickCount)
	assert.Equal(t, primary.TickCount, secondary.TickCount)
	for _, label := range primary.Labels {
		assert.True(t, strings.HasPrefix(label, "$"), "label %q", label)
	}
	for _, label := range secondary.Labels {
		assert.True(t, strings.HasSuffix(label, "%"), "label %q", label)
	}
}

func TestOnChangeCheckedLegends(t *testing.T) {
	c, err := New(comboDefinition(), scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	frame := c.OnChangeCheckedLegends(map[string][]bool{"column": {false, true}})
	require.Len(t, frame.Series["column"], 1)
	assert.Equal(t, "Costs", frame.Series["column"][0].Name)
	assert.Less(t, frame.Axes[models.YAxisName].Limit.Max, 410.0)
}

func TestOnChangeCheckedLegendsBarRightYAxis(t *testing.T) {
	def := Definition{
		Data: models.RawData{
			Categories: []string{"north", "south"},
			Series: models.RawSeriesSet{"bar": {
				{Name: "2023", Data: []float64{30, 45}},
				{Name: "2024", Data: []float64{35, 60}},
			}},
		},
		Options: models.Options{
			ChartType: "bar",
			YAxis:     models.YAxisList(models.AxisOption{Title: "left"}, models.AxisOption{Title: "right"}),
		},
	}
	c, err := New(def, scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	drawn := c.Draw()
	assert.Empty(t, drawn.Redraw.OptionChartTypes)

	redrawn := c.OnChangeCheckedLegends(map[string][]bool{"bar": {true, true}})
	assert.Equal(t, []string{"bar", "bar"}, redrawn.Redraw.OptionChartTypes)
	assert.Equal(t, drawn.Axes, redrawn.Axes)
	assert.False(t, redrawn.Synced)
}

func TestDrawDivergingBar(t *testing.T) {
	def := Definition{
		Data: models.RawData{
			Categories: []string{"20s", "30s"},
			Series: models.RawSeriesSet{"bar": {
				{Name: "male", Data: []float64{30, 45}},
				{Name: "female", Data: []float64{35, 40}},
			}},
		},
		Options: models.Options{
			ChartType: "bar",
			YAxis:     models.SingleYAxis(models.AxisOption{Align: models.AxisAlignCenter}),
			Series:    models.SeriesOptions{SeriesOption: models.SeriesOption{Diverging: true}},
		},
	}
	c, err := New(def, scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	frame := c.Draw()
	assert.False(t, frame.Synced)

	xAxis := frame.Axes[models.XAxisName]
	assert.Equal(t, -xAxis.Limit.Min, xAxis.Limit.Max)
	assert.GreaterOrEqual(t, xAxis.Limit.Max, 45.0)
}

func TestDrawSingleAxisStack(t *testing.T) {
	def := Definition{
		Data: models.RawData{
			Categories: []string{"a", "b"},
			Series: models.RawSeriesSet{"area": {
				{Name: "x", Data: []float64{60, 10}},
				{Name: "y", Data: []float64{50, 10}},
			}},
		},
		Options: models.Options{
			ChartType: "area",
			Series:    models.SeriesOptions{SeriesOption: models.SeriesOption{StackType: models.NormalStack}},
		},
	}
	c, err := New(def, scale.NewComputer(5), &recordingContainer{})
	require.NoError(t, err)

	frame := c.Draw()
	assert.GreaterOrEqual(t, frame.Axes[models.YAxisName].Limit.Max, 110.0)
}
