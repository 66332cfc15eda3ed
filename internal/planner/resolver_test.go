package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazilong/tui.chart/internal/models"
)

func series(names ...string) []models.RawSeries {
	out := make([]models.RawSeries, len(names))
	for i, name := range names {
		out[i] = models.RawSeries{Name: name, Data: []float64{float64(i + 1)}}
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name             string
		raw              models.RawSeriesSet
		yAxis            models.YAxisOption
		chartTypes       []string
		seriesNames      []string
		optionChartTypes []string
	}{
		{
			name:             "two families without options",
			raw:              models.RawSeriesSet{"line": series("B"), "column": series("A")},
			chartTypes:       []string{"column", "line"},
			seriesNames:      []string{"column", "line"},
			optionChartTypes: []string{},
		},
		{
			name:             "shared record without chartType",
			raw:              models.RawSeriesSet{"line": series("B"), "column": series("A")},
			yAxis:            models.SingleYAxis(models.AxisOption{Title: "amount"}),
			chartTypes:       []string{"column", "line"},
			seriesNames:      []string{"column", "line"},
			optionChartTypes: []string{},
		},
		{
			name:             "one element list without chartType",
			raw:              models.RawSeriesSet{"line": series("B"), "column": series("A")},
			yAxis:            models.YAxisList(models.AxisOption{Title: "amount"}),
			chartTypes:       []string{"column", "line"},
			seriesNames:      []string{"column", "line"},
			optionChartTypes: []string{},
		},
		{
			name:             "one element list pinning the second family",
			raw:              models.RawSeriesSet{"area": series("B"), "column": series("A")},
			yAxis:            models.YAxisList(models.AxisOption{ChartType: "column"}),
			chartTypes:       []string{"column", "area"},
			seriesNames:      []string{"area", "column"},
			optionChartTypes: []string{"column", "area"},
		},
		{
			name:             "pinned in sorted order",
			raw:              models.RawSeriesSet{"line": series("B"), "column": series("A")},
			yAxis:            models.YAxisList(models.AxisOption{ChartType: "column"}, models.AxisOption{ChartType: "line"}),
			chartTypes:       []string{"column", "line"},
			seriesNames:      []string{"column", "line"},
			optionChartTypes: []string{"column", "line"},
		},
		{
			name:             "pinned in reverse order",
			raw:              models.RawSeriesSet{"line": series("B"), "column": series("A")},
			yAxis:            models.YAxisList(models.AxisOption{ChartType: "line"}, models.AxisOption{ChartType: "column"}),
			chartTypes:       []string{"line", "column"},
			seriesNames:      []string{"column", "line"},
			optionChartTypes: []string{"line", "column"},
		},
		{
			name:             "shared record pinning the second family",
			raw:              models.RawSeriesSet{"area": series("B"), "column": series("A")},
			yAxis:            models.SingleYAxis(models.AxisOption{ChartType: "column"}),
			chartTypes:       []string{"column", "area"},
			seriesNames:      []string{"area", "column"},
			optionChartTypes: []string{"column", "area"},
		},
		{
			name:             "pinned family without series degrades",
			raw:              models.RawSeriesSet{"bar": series("s1")},
			yAxis:            models.YAxisList(models.AxisOption{ChartType: "bar"}, models.AxisOption{ChartType: "line"}),
			chartTypes:       []string{"bar"},
			seriesNames:      []string{"bar"},
			optionChartTypes: []string{},
		},
		{
			name:             "empty family key is ignored",
			raw:              models.RawSeriesSet{"column": series("A"), "line": {}},
			yAxis:            models.YAxisList(models.AxisOption{ChartType: "column"}, models.AxisOption{ChartType: "line"}),
			chartTypes:       []string{"column"},
			seriesNames:      []string{"column"},
			optionChartTypes: []string{},
		},
		{
			name:             "single family",
			raw:              models.RawSeriesSet{"area": series("A", "B")},
			chartTypes:       []string{"area"},
			seriesNames:      []string{"area"},
			optionChartTypes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, tt.yAxis)
			assert.Equal(t, tt.chartTypes, got.ChartTypes)
			assert.Equal(t, tt.seriesNames, got.SeriesNames)
			assert.Equal(t, tt.optionChartTypes, got.OptionChartTypes)
			assert.Contains(t, []int{1, 2}, len(got.ChartTypes))
		})
	}
}

func TestResolveReverseIsSeriesNamesReversed(t *testing.T) {
	raw := models.RawSeriesSet{"area": series("x"), "line": series("y")}
	yAxis := models.YAxisList(models.AxisOption{ChartType: "line"}, models.AxisOption{ChartType: "area"})

	got := Resolve(raw, yAxis)
	assert.Equal(t, []string{got.SeriesNames[1], got.SeriesNames[0]}, got.ChartTypes)
}

func TestResolveDoesNotAliasResults(t *testing.T) {
	raw := models.RawSeriesSet{"line": series("B"), "column": series("A")}
	got := Resolve(raw, models.YAxisOption{})

	got.ChartTypes[0] = "changed"
	assert.Equal(t, "column", got.SeriesNames[0])
}
