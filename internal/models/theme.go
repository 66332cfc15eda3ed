package models

// DefaultPalette is used when a theme does not name colors for a series family
var DefaultPalette = []string{
	"#ac4142", "#d28445", "#f4bf75", "#90a959", "#75b5aa",
	"#6a9fb5", "#aa759f", "#8f5536", "#5470c6", "#91cc75",
}

// SeriesTheme carries the colors of one series family
type SeriesTheme struct {
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Theme carries per-family colors
type Theme struct {
	Series map[string]SeriesTheme `json:"series,omitempty" yaml:"series,omitempty"`
}

// For returns the theme of the named series. Families without colors get a
// slice of the default palette offset by index so neighbours differ.
func (t Theme) For(seriesName string, index int) SeriesTheme {
	if st, ok := t.Series[seriesName]; ok && len(st.Colors) > 0 {
		return st
	}
	colors := make([]string, 0, len(DefaultPalette))
	for i := range DefaultPalette {
		colors = append(colors, DefaultPalette[(i+index*3)%len(DefaultPalette)])
	}
	return SeriesTheme{Colors: colors}
}
