package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/dataprocessor"
	"github.com/mazilong/tui.chart/internal/models"
)

func names(requests []models.ComponentRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.Name
	}
	return out
}

func TestComposeTwoAxes(t *testing.T) {
	raw := models.RawData{Series: models.RawSeriesSet{"line": series("B"), "column": series("A")}}
	data := dataprocessor.New(raw, models.Options{})
	m := Resolve(raw.Series, models.YAxisOption{})

	requests, err := NewComposer(data, models.SeriesOptions{}, models.Theme{}).Compose(m, MapOptions(m.ChartTypes, models.YAxisOption{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"yAxis", "xAxis", "rightYAxis", "columnSeries", "lineSeries", "plot"}, names(requests))
	assert.Equal(t, charttype.Column, requests[0].ChartType)
	assert.Equal(t, charttype.Line, requests[2].ChartType)
	assert.Equal(t, charttype.ColumnRenderer, requests[3].Renderer)
	assert.Equal(t, charttype.LineRenderer, requests[4].Renderer)
	assert.True(t, requests[3].Series.AllowNegativeTooltip)
}

func TestComposeSeriesFollowSeriesNames(t *testing.T) {
	raw := models.RawData{Series: models.RawSeriesSet{"line": series("B"), "area": series("A")}}
	yAxis := models.YAxisList(models.AxisOption{ChartType: "line"}, models.AxisOption{ChartType: "area"})
	m := Resolve(raw.Series, yAxis)

	requests, err := NewComposer(dataprocessor.New(raw, models.Options{}), models.SeriesOptions{}, models.Theme{}).
		Compose(m, MapOptions(m.ChartTypes, yAxis))
	require.NoError(t, err)

	assert.Equal(t, charttype.Line, requests[0].ChartType)
	assert.Equal(t, []string{"yAxis", "xAxis", "rightYAxis", "areaSeries", "lineSeries", "plot"}, names(requests))
	assert.Equal(t, "line", requests[0].Axis.ChartType)
}

func TestComposeSingleAxis(t *testing.T) {
	raw := models.RawData{Series: models.RawSeriesSet{"column": series("A", "B")}}
	m := Resolve(raw.Series, models.YAxisOption{})
	seriesOpts := models.SeriesOptions{BySeries: map[string]models.SeriesOption{"column": {ShowLabel: true}}}
	theme := models.Theme{Series: map[string]models.SeriesTheme{"column": {Colors: []string{"#000"}}}}

	requests, err := NewComposer(dataprocessor.New(raw, models.Options{}), seriesOpts, theme).Compose(m, MapOptions(m.ChartTypes, models.YAxisOption{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"yAxis", "xAxis", "columnSeries", "plot"}, names(requests))
	assert.True(t, requests[2].Series.Options.ShowLabel)
	assert.Equal(t, []string{"#000"}, requests[2].Series.Theme.Colors)
}

func TestComposeExactlyOnePlot(t *testing.T) {
	raw := models.RawData{Series: models.RawSeriesSet{"line": series("B"), "column": series("A")}}
	m := Resolve(raw.Series, models.YAxisOption{})
	requests, err := NewComposer(dataprocessor.New(raw, models.Options{}), models.SeriesOptions{}, models.Theme{}).Compose(m, YAxisOptionsMap{})
	require.NoError(t, err)

	plots := 0
	for _, r := range requests {
		if r.Role == models.RolePlot {
			plots++
		}
	}
	assert.Equal(t, 1, plots)
}

func TestComposeUnknownFamily(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawSeriesSet
	}{
		{"unsupported key", models.RawSeriesSet{"column": series("A"), "pie": series("B")}},
		{"bar in a vertical combo", models.RawSeriesSet{"bar": series("A"), "line": series("B")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.RawData{Series: tt.raw}
			m := Resolve(raw.Series, models.YAxisOption{})
			_, err := NewComposer(dataprocessor.New(raw, models.Options{}), models.SeriesOptions{}, models.Theme{}).Compose(m, YAxisOptionsMap{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownFamily))

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestComposeEmpty(t *testing.T) {
	_, err := NewComposer(dataprocessor.New(models.RawData{}, models.Options{}), models.SeriesOptions{}, models.Theme{}).Compose(ChartTypesMap{}, nil)
	assert.True(t, errors.Is(err, ErrNoSeries))
}
