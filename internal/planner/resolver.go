package planner

import (
	"github.com/mazilong/tui.chart/internal/models"
)

// ChartTypesMap lists the families that render and the axis they render on
type ChartTypesMap struct {
	// ChartTypes holds one family per y-axis, primary first
	ChartTypes []string `json:"chartTypes"`
	// SeriesNames holds the sorted families that carry series
	SeriesNames []string `json:"seriesNames"`
	// OptionChartTypes is the family order pinned through yAxis options, or
	// empty when the user pinned nothing
	OptionChartTypes []string `json:"optionChartTypes"`
}

// Resolve decides which families render and in which axis order. Pinned
// families without data degrade the chart to the one family left.
func Resolve(raw models.RawSeriesSet, yAxis models.YAxisOption) ChartTypesMap {
	seriesNames := raw.Families()
	optionChartTypes := yAxisOptionChartTypes(seriesNames, yAxis)

	chartTypes := seriesNames
	if len(optionChartTypes) > 0 {
		chartTypes = optionChartTypes
	}

	var valid []string
	for _, family := range optionChartTypes {
		if raw.HasData(family) {
			valid = append(valid, family)
		}
	}
	if len(valid) == 1 {
		log.Debug("pinned families degraded to one", map[string]interface{}{
			"pinned": optionChartTypes,
			"kept":   valid[0],
		})
		chartTypes = valid
		seriesNames = valid
		optionChartTypes = []string{}
	}

	return ChartTypesMap{
		ChartTypes:       append([]string{}, chartTypes...),
		SeriesNames:      append([]string{}, seriesNames...),
		OptionChartTypes: append([]string{}, optionChartTypes...),
	}
}

// yAxisOptionChartTypes returns the sorted families, reversed when a pinned
// chartType disagrees with the sorted order at its index
func yAxisOptionChartTypes(seriesNames []string, yAxis models.YAxisOption) []string {
	if !yAxis.IsSet() {
		return []string{}
	}
	// a one-element list pins nothing more than a bare record
	if yAxis.Len() == 1 && yAxis.Items()[0].ChartType == "" {
		return []string{}
	}

	result := append([]string{}, seriesNames...)
	reverse := false
	for i, opt := range yAxis.Items() {
		if opt.ChartType == "" {
			continue
		}
		if i >= len(result) || result[i] != opt.ChartType {
			reverse = true
		}
	}
	if reverse {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
		log.Debug("y-axis order reversed by pinned chart types", map[string]interface{}{
			"order": result,
		})
	}
	return result
}
