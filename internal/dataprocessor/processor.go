// Package dataprocessor turns raw chart input into the value views the planners
// and scale computation read.
package dataprocessor

import (
	"fmt"
	"sort"

	"github.com/mazilong/tui.chart/internal/charttype"
	"github.com/mazilong/tui.chart/internal/format"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
)

// Processor is the data source of one chart instance
type Processor struct {
	categories []string
	series     models.RawSeriesSet
	checked    map[string][]bool
	formats    []format.Func
}

// New copies raw so later legend changes never touch the caller's data, and
// applies series options that rewrite the raw values (diverging bars).
func New(raw models.RawData, opts models.Options) *Processor {
	p := &Processor{
		categories: append([]string(nil), raw.Categories...),
		series:     make(models.RawSeriesSet, len(raw.Series)),
		checked:    make(map[string][]bool, len(raw.Series)),
		formats:    format.FromPattern(opts.Chart.Format),
	}

	for family, list := range raw.Series {
		copied := make([]models.RawSeries, len(list))
		for i, s := range list {
			copied[i] = s
			copied[i].Data = append([]float64(nil), s.Data...)
		}
		p.series[family] = copied
	}

	if opts.Series.Diverging {
		if bars, ok := p.series[charttype.Bar.String()]; ok {
			p.series[charttype.Bar.String()] = makeDivergingSeries(bars, opts.Series.StackType)
		}
	}

	for family, list := range p.series {
		states := make([]bool, len(list))
		for i, s := range list {
			states[i] = s.IsVisible()
		}
		p.checked[family] = states
	}
	return p
}

// makeDivergingSeries keeps the first two stack groups (or the first two
// series when nothing is stacked) and negates the left-hand group
func makeDivergingSeries(list []models.RawSeries, stackType string) []models.RawSeries {
	var left, right []models.RawSeries

	if predicate.IsValidStackType(stackType) && hasStackGroups(list) {
		var order []string
		groups := make(map[string][]models.RawSeries)
		for _, s := range list {
			if _, seen := groups[s.Stack]; !seen {
				order = append(order, s.Stack)
			}
			groups[s.Stack] = append(groups[s.Stack], s)
		}
		left = groups[order[0]]
		if len(order) > 1 {
			right = groups[order[1]]
		}
	} else {
		if len(list) > 0 {
			left = list[:1]
		}
		if len(list) > 1 {
			right = list[1:2]
		}
	}

	out := make([]models.RawSeries, 0, len(left)+len(right))
	for _, s := range left {
		negated := s
		negated.Data = make([]float64, len(s.Data))
		for i, v := range s.Data {
			negated.Data[i] = -v
		}
		out = append(out, negated)
	}
	return append(out, right...)
}

func hasStackGroups(list []models.RawSeries) bool {
	for _, s := range list {
		if s.Stack != "" {
			return true
		}
	}
	return false
}

// Categories returns the category labels
func (p *Processor) Categories() []string {
	return append([]string(nil), p.categories...)
}

// SeriesNames returns the sorted series keys that carry data
func (p *Processor) SeriesNames() []string {
	return p.series.Families()
}

// RawSeriesSet returns the processed series, including hidden ones
func (p *Processor) RawSeriesSet() models.RawSeriesSet {
	return p.series
}

// FindChartType returns the family that renders the named series key
func (p *Processor) FindChartType(seriesName string) (charttype.Family, error) {
	if _, ok := p.series[seriesName]; !ok {
		return charttype.Unknown, fmt.Errorf("%w: series %q is not in the chart data", charttype.ErrUnknownFamily, seriesName)
	}
	return charttype.Parse(seriesName)
}

// FormatFunctions returns the number formatters configured for the chart
func (p *Processor) FormatFunctions() []format.Func {
	return p.formats
}

// SetCheckedLegends replaces the visibility of series. Families missing from
// checked keep their state; short slices leave the remaining series visible.
func (p *Processor) SetCheckedLegends(checked map[string][]bool) {
	for family, states := range checked {
		current, ok := p.checked[family]
		if !ok {
			continue
		}
		for i := range current {
			current[i] = i >= len(states) || states[i]
		}
	}
}

// VisibleSeries returns the series of family the legend currently shows
func (p *Processor) VisibleSeries(family string) []models.RawSeries {
	states := p.checked[family]
	var out []models.RawSeries
	for i, s := range p.series[family] {
		if i < len(states) && !states[i] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Values returns every visible value of the given families
func (p *Processor) Values(families ...string) []float64 {
	var values []float64
	for _, family := range families {
		for _, s := range p.VisibleSeries(family) {
			values = append(values, s.Data...)
		}
	}
	return values
}

// StackedValues returns, per category and stack group, the positive and the
// negative sums of the visible series of family
func (p *Processor) StackedValues(family string) []float64 {
	type sums struct{ pos, neg []float64 }
	groups := make(map[string]*sums)
	n := len(p.categories)

	for _, s := range p.VisibleSeries(family) {
		g, ok := groups[s.Stack]
		if !ok {
			size := n
			if len(s.Data) > size {
				size = len(s.Data)
			}
			g = &sums{pos: make([]float64, size), neg: make([]float64, size)}
			groups[s.Stack] = g
		}
		for i, v := range s.Data {
			if i >= len(g.pos) {
				g.pos = append(g.pos, 0)
				g.neg = append(g.neg, 0)
			}
			if v >= 0 {
				g.pos[i] += v
			} else {
				g.neg[i] += v
			}
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var values []float64
	for _, k := range keys {
		values = append(values, groups[k].pos...)
		values = append(values, groups[k].neg...)
	}
	return values
}
