// Package predicate holds the small boolean checks shared by the planners.
package predicate

import (
	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/models"
)

// IsYAxisAlignCenter reports whether a diverging chart draws its y-axis in the
// middle of the plot. A chart with a right y-axis keeps its axes on the edges.
func IsYAxisAlignCenter(hasRightYAxis bool, align string) bool {
	return !hasRightYAxis && align == models.AxisAlignCenter
}

// IsAllowedStackOption reports whether the family supports stacking
func IsAllowedStackOption(family charttype.Family) bool {
	return family.AllowsStack()
}

// IsValidStackType reports whether stackType is one of the known stack types
func IsValidStackType(stackType string) bool {
	return stackType == models.NormalStack || stackType == models.PercentStack
}

// IsNormalStack reports whether stackType stacks absolute values
func IsNormalStack(stackType string) bool {
	return stackType == models.NormalStack
}

// IsPercentStack reports whether stackType stacks shares of the category total
func IsPercentStack(stackType string) bool {
	return stackType == models.PercentStack
}

// IsBarChart reports whether chartType names the horizontal bar chart
func IsBarChart(chartType string) bool {
	return chartType == charttype.Bar.String()
}

// IsComboChart reports whether chartType names a vertical combo chart
func IsComboChart(chartType string) bool {
	return chartType == "combo" || chartType == "columnLine" || chartType == "lineArea"
}
