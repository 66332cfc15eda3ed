package definition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDefinition = `
description: Temperature and rainfall
data:
  categories: [Jan, Feb, Mar]
  series:
    column:
      - name: Rainfall
        data: [49.9, 71.5, 106.4]
    line:
      - name: Temperature
        data: [7.0, 6.9, 9.5]
options:
  chartType: combo
  chart:
    title: Climate
  yAxis:
    - title: Rainfall
      chartType: column
    - title: Temperature
      chartType: line
  series:
    showLabel: true
    bySeries:
      line:
        spline: true
`

const jsonDefinition = `{
  "data": {
    "categories": ["a", "b"],
    "series": {"bar": [{"name": "x", "data": [1, 2]}]}
  },
  "options": {"chartType": "bar", "yAxis": {"title": "groups", "align": "center"}, "series": {"diverging": true}}
}`

func TestParseYAML(t *testing.T) {
	def, err := Parse([]byte(yamlDefinition), "")
	require.NoError(t, err)

	assert.Equal(t, "combo", def.Options.ChartType)
	assert.Equal(t, "Temperature and rainfall", def.Description)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, def.Data.Categories)
	assert.Len(t, def.Data.Series["column"], 1)
	require.True(t, def.Options.YAxis.IsList())
	second, ok := def.Options.YAxis.At(1)
	require.True(t, ok)
	assert.Equal(t, "line", second.ChartType)
	assert.True(t, def.Options.Series.ShowLabel)
	assert.True(t, def.Options.Series.For("line").Spline)
}

func TestParseJSON(t *testing.T) {
	def, err := Parse([]byte(jsonDefinition), "")
	require.NoError(t, err)

	assert.Equal(t, "bar", def.Options.ChartType)
	shared, ok := def.Options.YAxis.Shared()
	require.True(t, ok)
	assert.Equal(t, "center", shared.Align)
	assert.True(t, def.Options.Series.Diverging)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"missing chart type", `{"data": {}}`, FormatJSON},
		{"unknown json field", `{"options": {"chartType": "bar"}, "extra": 1}`, FormatJSON},
		{"unknown yaml field", "options:\n  chartType: bar\n  colour: red\n", FormatYAML},
		{"unsupported format", `chartType: bar`, "toml"},
		{"broken yaml", "options: [", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "climate.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDefinition), 0644))

	def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "combo", def.Options.ChartType)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chart.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(jsonDefinition))
		case "/chart.yaml":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(yamlDefinition))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	ctx := context.Background()

	def, err := Load(ctx, f, server.URL+"/chart.json")
	require.NoError(t, err)
	assert.Equal(t, "bar", def.Options.ChartType)

	def, err = f.Fetch(ctx, server.URL+"/chart.yaml")
	require.NoError(t, err)
	assert.Equal(t, "combo", def.Options.ChartType)

	_, err = f.Fetch(ctx, server.URL+"/missing")
	assert.Error(t, err)
}
