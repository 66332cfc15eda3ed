package charttype

import (
	"errors"
	"fmt"
	"strings"
)

// Family identifies a series renderer category
type Family int

const (
	// Unknown is the zero value and never renders
	Unknown Family = iota
	Bar
	Column
	Line
	Area
)

// ErrUnknownFamily is returned when a family name is not one of the supported families
var ErrUnknownFamily = errors.New("unknown chart type family")

// RendererKind names the series renderer a family is drawn with
type RendererKind string

const (
	BarRenderer    RendererKind = "barSeries"
	ColumnRenderer RendererKind = "columnSeries"
	LineRenderer   RendererKind = "lineSeries"
	AreaRenderer   RendererKind = "areaSeries"
)

var familyNames = map[Family]string{
	Bar:    "bar",
	Column: "column",
	Line:   "line",
	Area:   "area",
}

// Parse converts a family name into a Family
func Parse(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bar":
		return Bar, nil
	case "column":
		return Column, nil
	case "line":
		return Line, nil
	case "area":
		return Area, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}

// MustParse is like Parse but panics on unknown names. Only for constants in tests and tables.
func MustParse(name string) Family {
	f, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the family key used in raw data and options
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Renderer returns the series renderer for the family
func (f Family) Renderer() (RendererKind, error) {
	switch f {
	case Bar:
		return BarRenderer, nil
	case Column:
		return ColumnRenderer, nil
	case Line:
		return LineRenderer, nil
	case Area:
		return AreaRenderer, nil
	default:
		return "", fmt.Errorf("%w: no renderer for %q", ErrUnknownFamily, f.String())
	}
}

// IsVertical reports whether values grow along the y-axis
func (f Family) IsVertical() bool {
	return f == Column || f == Line || f == Area
}

// IsComboMember reports whether the family may take part in a vertical combo chart
func (f Family) IsComboMember() bool {
	return f.IsVertical()
}

// AllowsStack reports whether series of this family can be stacked
func (f Family) AllowsStack() bool {
	return f == Bar || f == Column || f == Area
}

// MarshalText implements encoding.TextMarshaler
func (f Family) MarshalText() ([]byte, error) {
	if f == Unknown {
		return []byte(""), nil
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Family) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*f = Unknown
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
