package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/mazilong/tui.chart/internal/models"
)

// MakeLabelsFromLimit returns the tick values from limit.Min to limit.Max in
// steps of step. Values are rounded to the precision of the inputs so repeated
// additions do not leak float noise into labels.
func MakeLabelsFromLimit(limit models.Limit, step float64) []float64 {
	if step <= 0 || math.IsNaN(step) || limit.Max < limit.Min {
		return []float64{limit.Min}
	}

	count := int(math.Round((limit.Max-limit.Min)/step)) + 1
	precision := maxInt(decimalPlaces(step), decimalPlaces(limit.Min))
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		values = append(values, roundTo(limit.Min+float64(i)*step, precision))
	}
	return values
}

func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return len(s) - dot - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
