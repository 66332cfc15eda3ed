package planner

import (
	"fmt"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
)

// Composer turns a resolved combo plan into component requests
type Composer struct {
	data   DataSource
	series models.SeriesOptions
	theme  models.Theme
}

// NewComposer creates a composer reading series families from data
func NewComposer(data DataSource, series models.SeriesOptions, theme models.Theme) *Composer {
	return &Composer{data: data, series: series, theme: theme}
}

// Compose emits the y-axis, the x-axis, the right y-axis when two families
// render, one series request per series name and the plot
func (c *Composer) Compose(m ChartTypesMap, yAxisOptions YAxisOptionsMap) ([]models.ComponentRequest, error) {
	if len(m.ChartTypes) == 0 {
		return nil, configError("series", "", ErrNoSeries)
	}

	primary, err := charttype.Parse(m.ChartTypes[0])
	if err != nil {
		return nil, configError("yAxis.chartType", m.ChartTypes[0], err)
	}

	requests := []models.ComponentRequest{
		axisRequest(models.YAxisName, primary, yAxisOptions[m.ChartTypes[0]]),
		{Name: models.XAxisName, Role: models.RoleAxis},
	}

	if PlanAxes(m).HasSecondary {
		secondary, err := charttype.Parse(m.ChartTypes[1])
		if err != nil {
			return nil, configError("yAxis.chartType", m.ChartTypes[1], err)
		}
		requests = append(requests, axisRequest(models.RightYAxisName, secondary, yAxisOptions[m.ChartTypes[1]]))
	}

	for i, seriesName := range m.SeriesNames {
		req, err := c.seriesRequest(seriesName, i)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	requests = append(requests, models.ComponentRequest{Name: models.PlotName, Role: models.RolePlot})
	return requests, nil
}

func (c *Composer) seriesRequest(seriesName string, index int) (models.ComponentRequest, error) {
	family, err := c.data.FindChartType(seriesName)
	if err != nil {
		return models.ComponentRequest{}, configError("series", seriesName, err)
	}
	if !family.IsComboMember() {
		err := fmt.Errorf("%w: %s cannot render in a vertical combo chart", ErrUnknownFamily, family)
		return models.ComponentRequest{}, configError("series", seriesName, err)
	}
	renderer, err := family.Renderer()
	if err != nil {
		return models.ComponentRequest{}, configError("series", seriesName, err)
	}

	return models.ComponentRequest{
		Name:       seriesName + "Series",
		Role:       models.RoleSeries,
		ChartType:  family,
		IsVertical: true,
		Renderer:   renderer,
		Series: &models.SeriesComponentData{
			SeriesName:           seriesName,
			ChartType:            family,
			AllowNegativeTooltip: true,
			Options:              c.series.For(seriesName),
			Theme:                c.theme.For(seriesName, index),
		},
	}, nil
}

func axisRequest(name string, family charttype.Family, opt models.AxisOption) models.ComponentRequest {
	return models.ComponentRequest{
		Name:       name,
		Role:       models.RoleAxis,
		ChartType:  family,
		IsVertical: true,
		Axis:       &opt,
	}
}
