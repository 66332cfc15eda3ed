package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Stack types understood by stackable families
const (
	NormalStack  = "normal"
	PercentStack = "percent"
)

// AxisAlignCenter places a single y-axis between the two halves of a diverging chart
const AxisAlignCenter = "center"

// AxisOption holds user settings for one value axis
type AxisOption struct {
	ChartType string   `json:"chartType,omitempty" yaml:"chartType,omitempty"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Align     string   `json:"align,omitempty" yaml:"align,omitempty"`
	Prefix    string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix    string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	TickCount int      `json:"tickCount,omitempty" yaml:"tickCount,omitempty"`
}

// YAxisOption is either one record shared by every y-axis or an ordered list,
// index 0 for the primary axis and index 1 for the secondary axis.
type YAxisOption struct {
	items []AxisOption
	list  bool
}

// SingleYAxis builds a shared y-axis option
func SingleYAxis(opt AxisOption) YAxisOption {
	return YAxisOption{items: []AxisOption{opt}}
}

// YAxisList builds a per-axis y-axis option
func YAxisList(opts ...AxisOption) YAxisOption {
	items := make([]AxisOption, len(opts))
	copy(items, opts)
	return YAxisOption{items: items, list: true}
}

// IsSet reports whether any y-axis option was supplied
func (o YAxisOption) IsSet() bool {
	return len(o.items) > 0
}

// IsList reports whether the option was given as a list
func (o YAxisOption) IsList() bool {
	return o.list
}

// Len returns the number of records
func (o YAxisOption) Len() int {
	return len(o.items)
}

// At returns the list element at index. It returns false for a shared record.
func (o YAxisOption) At(index int) (AxisOption, bool) {
	if !o.list || index < 0 || index >= len(o.items) {
		return AxisOption{}, false
	}
	return o.items[index], true
}

// Shared returns the single shared record. It returns false for a list.
func (o YAxisOption) Shared() (AxisOption, bool) {
	if o.list || len(o.items) == 0 {
		return AxisOption{}, false
	}
	return o.items[0], true
}

// Items returns a copy of the records in index order
func (o YAxisOption) Items() []AxisOption {
	items := make([]AxisOption, len(o.items))
	copy(items, o.items)
	return items
}

// Align returns the alignment of the shared record or of the first list element
func (o YAxisOption) Align() string {
	if len(o.items) == 0 {
		return ""
	}
	return o.items[0].Align
}

// MarshalJSON encodes the option as an object or an array
func (o YAxisOption) MarshalJSON() ([]byte, error) {
	switch {
	case o.list:
		return json.Marshal(o.items)
	case len(o.items) == 1:
		return json.Marshal(o.items[0])
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts an object, an array of objects or null
func (o *YAxisOption) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = YAxisOption{}
		return nil
	}
	if trimmed[0] == '[' {
		var items []AxisOption
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("failed to decode yAxis list: %w", err)
		}
		*o = YAxisList(items...)
		return nil
	}
	var item AxisOption
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return fmt.Errorf("failed to decode yAxis: %w", err)
	}
	*o = SingleYAxis(item)
	return nil
}

// MarshalYAML encodes the option as a mapping or a sequence
func (o YAxisOption) MarshalYAML() (interface{}, error) {
	switch {
	case o.list:
		return o.items, nil
	case len(o.items) == 1:
		return o.items[0], nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts a mapping or a sequence of mappings
func (o *YAxisOption) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []AxisOption
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("failed to decode yAxis list: %w", err)
		}
		*o = YAxisList(items...)
	case yaml.MappingNode:
		var item AxisOption
		if err := value.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode yAxis: %w", err)
		}
		*o = SingleYAxis(item)
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("yAxis must be a mapping or a sequence, got %q", value.Value)
		}
		*o = YAxisOption{}
	default:
		return fmt.Errorf("yAxis must be a mapping or a sequence")
	}
	return nil
}

// XAxisOption holds user settings for the x-axis
type XAxisOption struct {
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Prefix    string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix    string   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	TickCount int      `json:"tickCount,omitempty" yaml:"tickCount,omitempty"`
}

// AsAxisOption returns the x-axis settings in value-axis form
func (x XAxisOption) AsAxisOption() AxisOption {
	return AxisOption{
		Title:     x.Title,
		Min:       x.Min,
		Max:       x.Max,
		Prefix:    x.Prefix,
		Suffix:    x.Suffix,
		TickCount: x.TickCount,
	}
}

// SeriesOption holds user settings applied to a series renderer
type SeriesOption struct {
	StackType   string  `json:"stackType,omitempty" yaml:"stackType,omitempty"`
	Diverging   bool    `json:"diverging,omitempty" yaml:"diverging,omitempty"`
	ShowLabel   bool    `json:"showLabel,omitempty" yaml:"showLabel,omitempty"`
	Spline      bool    `json:"spline,omitempty" yaml:"spline,omitempty"`
	AreaOpacity float64 `json:"areaOpacity,omitempty" yaml:"areaOpacity,omitempty"`
	BarWidth    int     `json:"barWidth,omitempty" yaml:"barWidth,omitempty"`
}

// SeriesOptions carries shared series settings and optional per-series overrides
type SeriesOptions struct {
	SeriesOption `yaml:",inline"`
	BySeries     map[string]SeriesOption `json:"bySeries,omitempty" yaml:"bySeries,omitempty"`
}

// For returns the settings that apply to the named series
func (s SeriesOptions) For(seriesName string) SeriesOption {
	if opt, ok := s.BySeries[seriesName]; ok {
		return opt
	}
	return s.SeriesOption
}

// OverrideNames returns the names of the per-series overrides in sorted order
func (s SeriesOptions) OverrideNames() []string {
	names := make([]string, 0, len(s.BySeries))
	for name := range s.BySeries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChartOption holds settings for the chart as a whole
type ChartOption struct {
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
	// Format is a sample number such as "1,000.00" describing separators and decimals
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TooltipOption holds tooltip settings
type TooltipOption struct {
	Grouped bool `json:"grouped,omitempty" yaml:"grouped,omitempty"`
}

// LegendOption holds legend settings
type LegendOption struct {
	Visible *bool `json:"visible,omitempty" yaml:"visible,omitempty"`
}

// PlotOption holds plot area settings
type PlotOption struct {
	HideLine bool `json:"hideLine,omitempty" yaml:"hideLine,omitempty"`
}

// Options is the declarative configuration of a chart
type Options struct {
	ChartType string        `json:"chartType" yaml:"chartType"`
	Chart     ChartOption   `json:"chart" yaml:"chart"`
	YAxis     YAxisOption   `json:"yAxis" yaml:"yAxis"`
	XAxis     XAxisOption   `json:"xAxis" yaml:"xAxis"`
	Series    SeriesOptions `json:"series" yaml:"series"`
	Plot      PlotOption    `json:"plot" yaml:"plot"`
	Tooltip   TooltipOption `json:"tooltip" yaml:"tooltip"`
	Legend    LegendOption  `json:"legend" yaml:"legend"`
}
