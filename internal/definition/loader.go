// Package definition reads chart definitions from YAML or JSON documents.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mazilong/tui.chart/internal/chart"
)

// Document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Parse decodes a definition. An empty format is detected from the content.
func Parse(data []byte, format string) (chart.Definition, error) {
	var def chart.Definition

	if format == "" {
		format = detectFormat(data)
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return def, fmt.Errorf("failed to decode json definition: %w", err)
		}
	case FormatYAML, "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return def, fmt.Errorf("failed to decode yaml definition: %w", err)
		}
	default:
		return def, fmt.Errorf("unsupported definition format %q", format)
	}

	if def.Options.ChartType == "" {
		return def, fmt.Errorf("definition has no options.chartType")
	}
	return def, nil
}

// LoadFile reads a definition file; the format comes from its extension
func LoadFile(path string) (chart.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chart.Definition{}, fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	return Parse(data, formatFromPath(path))
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

func detectFormat(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}
