// Package reports builds charts from definitions and produces the artifacts
// served by the API and written by the CLI.
package reports

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/logger"
	"github.com/mazilong/tui.chart/internal/render"
	"github.com/mazilong/tui.chart/internal/scale"
)

// Generator builds, draws and renders charts with fixed defaults
type Generator struct {
	tickCount int
	width     int
	height    int
	log       *logger.Logger
}

// Built is a drawn chart together with its mounted components
type Built struct {
	Chart     *chart.Chart
	Container *render.Container
	Frame     *chart.Frame
}

// Rendered is the encoded output of one chart
type Rendered struct {
	ChartID     string
	Format      string
	ContentType string
	Extension   string
	Data        []byte
	Frame       *chart.Frame
}

// NewGenerator creates a generator. tickCount is the default number of
// ticks per value axis; width and height are the default image size.
func NewGenerator(tickCount, width, height int) *Generator {
	return &Generator{
		tickCount: tickCount,
		width:     width,
		height:    height,
		log:       logger.WithComponent("reports"),
	}
}

// Build plans def, mounts its components and draws it. Series listed in
// hidden are toggled off through the legend before the returned frame.
func (g *Generator) Build(def chart.Definition, hidden map[string][]bool) (*Built, error) {
	container := render.NewContainer()
	c, err := chart.New(def, scale.NewComputer(g.tickCount), container)
	if err != nil {
		return nil, err
	}

	frame := c.Draw()
	if len(hidden) > 0 {
		frame = c.OnChangeCheckedLegends(hidden)
	}

	return &Built{Chart: c, Container: container, Frame: frame}, nil
}

// Render builds def and encodes it as format ("html" or "png")
func (g *Generator) Render(def chart.Definition, format string, hidden map[string][]bool) (*Rendered, error) {
	renderer, err := render.New(format, g.width, g.height)
	if err != nil {
		return nil, err
	}

	built, err := g.Build(def, hidden)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, built.Container, built.Frame); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	g.log.Info("Chart rendered", map[string]interface{}{
		"id":     built.Chart.ID,
		"format": strings.TrimPrefix(renderer.Extension(), "."),
		"bytes":  buf.Len(),
	})

	return &Rendered{
		ChartID:     built.Chart.ID,
		Format:      strings.TrimPrefix(renderer.Extension(), "."),
		ContentType: renderer.ContentType(),
		Extension:   renderer.Extension(),
		Data:        buf.Bytes(),
		Frame:       built.Frame,
	}, nil
}

// ParseHidden turns "family:index" entries into legend visibility. Indexes
// not named stay visible.
func ParseHidden(entries []string) (map[string][]bool, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	hidden := make(map[string][]bool)
	for _, entry := range entries {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			family, rawIndex, ok := strings.Cut(item, ":")
			if !ok || family == "" {
				return nil, fmt.Errorf("invalid hidden series %q, want family:index", item)
			}
			index, err := strconv.Atoi(rawIndex)
			if err != nil || index < 0 {
				return nil, fmt.Errorf("invalid series index in %q", item)
			}

			checked := hidden[family]
			for len(checked) <= index {
				checked = append(checked, true)
			}
			checked[index] = false
			hidden[family] = checked
		}
	}
	return hidden, nil
}
