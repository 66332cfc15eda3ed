package planner

import "github.com/mazilong/tui.chart/internal/models"

// YAxisOptionsMap holds the y-axis option that applies to each family
type YAxisOptionsMap map[string]models.AxisOption

// MapOptions picks, per family index, the list element at that index, the
// shared record, or an empty record
func MapOptions(families []string, yAxis models.YAxisOption) YAxisOptionsMap {
	out := make(YAxisOptionsMap, len(families))
	for i, family := range families {
		if opt, ok := yAxis.At(i); ok {
			out[family] = opt
			continue
		}
		if opt, ok := yAxis.Shared(); ok {
			out[family] = opt
			continue
		}
		out[family] = models.AxisOption{}
	}
	return out
}
