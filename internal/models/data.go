package models

import "sort"

// RawSeries is one named series as supplied by the caller
type RawSeries struct {
	Name    string    `json:"name" yaml:"name"`
	Data    []float64 `json:"data" yaml:"data"`
	Stack   string    `json:"stack,omitempty" yaml:"stack,omitempty"`
	Visible *bool     `json:"visible,omitempty" yaml:"visible,omitempty"`
}

// IsVisible reports whether the series is shown when the chart first renders
func (s RawSeries) IsVisible() bool {
	return s.Visible == nil || *s.Visible
}

// RawSeriesSet maps a chart type family name to its series, in declaration order
type RawSeriesSet map[string][]RawSeries

// Families returns the sorted family keys that carry at least one series
func (s RawSeriesSet) Families() []string {
	names := make([]string, 0, len(s))
	for name, series := range s {
		if len(series) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HasData reports whether the family exists and has at least one series
func (s RawSeriesSet) HasData(family string) bool {
	return len(s[family]) > 0
}

// RawData is the tabular input of a chart
type RawData struct {
	Categories []string     `json:"categories" yaml:"categories"`
	Series     RawSeriesSet `json:"series" yaml:"series"`
}
