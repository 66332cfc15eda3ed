package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAxisOptionJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSet  bool
		wantList bool
		wantLen  int
	}{
		{name: "absent", input: `{}`},
		{name: "null", input: `{"yAxis": null}`},
		{name: "single record", input: `{"yAxis": {"title": "Amount"}}`, wantSet: true, wantLen: 1},
		{name: "list", input: `{"yAxis": [{"chartType": "column"}, {"chartType": "line"}]}`, wantSet: true, wantList: true, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts Options
			require.NoError(t, json.Unmarshal([]byte(tt.input), &opts))
			assert.Equal(t, tt.wantSet, opts.YAxis.IsSet())
			assert.Equal(t, tt.wantList, opts.YAxis.IsList())
			assert.Equal(t, tt.wantLen, opts.YAxis.Len())
		})
	}
}

func TestYAxisOptionYAML(t *testing.T) {
	doc := `
chartType: combo
yAxis:
  - chartType: line
    title: Temperature
  - chartType: column
    min: 0
series:
  stackType: normal
  bySeries:
    line:
      spline: true
`
	var opts Options
	require.NoError(t, yaml.Unmarshal([]byte(doc), &opts))

	require.True(t, opts.YAxis.IsList())
	first, ok := opts.YAxis.At(0)
	require.True(t, ok)
	assert.Equal(t, "line", first.ChartType)
	assert.Equal(t, "Temperature", first.Title)

	second, ok := opts.YAxis.At(1)
	require.True(t, ok)
	require.NotNil(t, second.Min)
	assert.Equal(t, 0.0, *second.Min)

	_, ok = opts.YAxis.At(2)
	assert.False(t, ok)
	_, ok = opts.YAxis.Shared()
	assert.False(t, ok)

	assert.Equal(t, NormalStack, opts.Series.StackType)
	assert.True(t, opts.Series.For("line").Spline)
	assert.Equal(t, NormalStack, opts.Series.For("column").StackType)
}

func TestYAxisOptionSharedEncoding(t *testing.T) {
	opt := SingleYAxis(AxisOption{Title: "Sales", Align: AxisAlignCenter})

	data, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Sales","align":"center"}`, string(data))

	shared, ok := opt.Shared()
	require.True(t, ok)
	assert.Equal(t, "Sales", shared.Title)
	assert.Equal(t, AxisAlignCenter, opt.Align())

	empty, err := json.Marshal(YAxisOption{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(empty))
}

func TestRawSeriesSetFamilies(t *testing.T) {
	set := RawSeriesSet{
		"line":   {{Name: "b"}},
		"column": {{Name: "a"}},
		"area":   {},
	}
	assert.Equal(t, []string{"column", "line"}, set.Families())
	assert.True(t, set.HasData("line"))
	assert.False(t, set.HasData("area"))
	assert.False(t, set.HasData("bar"))
}

func TestThemeFor(t *testing.T) {
	theme := Theme{Series: map[string]SeriesTheme{"line": {Colors: []string{"#000"}}}}
	assert.Equal(t, []string{"#000"}, theme.For("line", 0).Colors)

	first := theme.For("column", 0)
	second := theme.For("area", 1)
	require.Len(t, first.Colors, len(DefaultPalette))
	assert.NotEqual(t, first.Colors[0], second.Colors[0])
}
