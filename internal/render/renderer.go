package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/predicate"
)

// Output formats
const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

// ErrUnsupportedFormat is returned by New for formats other than html and png
var ErrUnsupportedFormat = errors.New("unsupported render format")

// Renderer draws a frame of the components mounted on a container
type Renderer interface {
	Render(w io.Writer, c *Container, frame *chart.Frame) error
	ContentType() string
	Extension() string
}

// New returns the renderer for format. Zero sizes fall back to the chart
// options and then to 800x400.
func New(format string, width, height int) (Renderer, error) {
	size := Size{Width: width, Height: height}
	switch strings.ToLower(format) {
	case FormatHTML, "":
		return NewECharts(size), nil
	case FormatPNG:
		return NewPNG(size), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// Size is the canvas size in pixels
type Size struct {
	Width  int
	Height int
}

func (s Size) resolve(opt models.ChartOption) Size {
	out := s
	if opt.Width > 0 {
		out.Width = opt.Width
	}
	if opt.Height > 0 {
		out.Height = opt.Height
	}
	if out.Width <= 0 {
		out.Width = 800
	}
	if out.Height <= 0 {
		out.Height = 400
	}
	return out
}

// seriesValues returns the values of each series as drawn. Percent stacks
// are converted to shares of the category total of their stack group.
func seriesValues(series []models.RawSeries, stackType string) [][]float64 {
	out := make([][]float64, len(series))
	for i, s := range series {
		out[i] = append([]float64(nil), s.Data...)
	}
	if !predicate.IsPercentStack(stackType) {
		return out
	}

	totals := make(map[string][]float64)
	for _, s := range series {
		t := totals[s.Stack]
		for len(t) < len(s.Data) {
			t = append(t, 0)
		}
		for j, v := range s.Data {
			if v < 0 {
				v = -v
			}
			t[j] += v
		}
		totals[s.Stack] = t
	}
	for i, s := range series {
		t := totals[s.Stack]
		for j, v := range out[i] {
			if t[j] != 0 {
				out[i][j] = v / t[j] * 100
			}
		}
	}
	return out
}

// stackKey names the stack group of s, or "" when the series is not stacked
func stackKey(s models.RawSeries, family, stackType string) string {
	if !predicate.IsValidStackType(stackType) {
		return ""
	}
	if s.Stack != "" {
		return s.Stack
	}
	return family
}

// axisIndex returns 1 when family renders against the right y-axis
func axisIndex(frame *chart.Frame, family string) int {
	types := frame.Plan.ChartTypesMap.ChartTypes
	if len(types) == 2 && types[1] == family {
		return 1
	}
	return 0
}
