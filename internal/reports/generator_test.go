package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazilong/tui.chart/internal/chart"
	"github.com/mazilong/tui.chart/internal/models"
	"github.com/mazilong/tui.chart/internal/planner"
	"github.com/mazilong/tui.chart/internal/storage"
)

func climate() chart.Definition {
	return chart.Definition{
		Description: "Monthly *climate*",
		Data: models.RawData{
			Categories: []string{"Jan", "Feb", "Mar"},
			Series: models.RawSeriesSet{
				"column": {
					{Name: "Rainfall", Data: []float64{49.9, 71.5, 106.4}},
					{Name: "Snowfall", Data: []float64{20, 12, 3}},
				},
				"line": {{Name: "Temperature", Data: []float64{-2, 1.5, 7}}},
			},
		},
		Options: models.Options{
			ChartType: "combo",
			YAxis:     models.YAxisList(models.AxisOption{ChartType: "column"}, models.AxisOption{ChartType: "line"}),
		},
	}
}

func TestBuild(t *testing.T) {
	g := NewGenerator(5, 640, 320)

	built, err := g.Build(climate(), nil)
	require.NoError(t, err)
	assert.True(t, built.Frame.Synced)
	assert.Len(t, built.Frame.Series["column"], 2)
	assert.Len(t, built.Container.Series(), 2)

	hidden, err := g.Build(climate(), map[string][]bool{"column": {true, false}})
	require.NoError(t, err)
	require.Len(t, hidden.Frame.Series["column"], 1)
	assert.Equal(t, "Rainfall", hidden.Frame.Series["column"][0].Name)
}

func TestBuildRejectsUnknownChartType(t *testing.T) {
	def := climate()
	def.Options.ChartType = "radar"

	_, err := NewGenerator(5, 0, 0).Build(def, nil)
	assert.True(t, errors.Is(err, planner.ErrUnknownChartType))
}

func TestRender(t *testing.T) {
	g := NewGenerator(5, 640, 320)

	png, err := g.Render(climate(), "png", nil)
	require.NoError(t, err)
	assert.Equal(t, "png", png.Format)
	assert.Equal(t, "image/png", png.ContentType)
	assert.True(t, bytes.HasPrefix(png.Data, []byte("\x89PNG")))
	assert.NotEmpty(t, png.ChartID)

	html, err := g.Render(climate(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, ".html", html.Extension)
	assert.Contains(t, string(html.Data), "Temperature")

	_, err = g.Render(climate(), "gif", nil)
	assert.Error(t, err)
}

func TestParseHidden(t *testing.T) {
	hidden, err := ParseHidden([]string{"column:1", "line:0, column:3"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]bool{
		"column": {true, false, true, false},
		"line":   {false},
	}, hidden)

	none, err := ParseHidden(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	for _, bad := range []string{"column", ":1", "line:x", "line:-1"} {
		_, err := ParseHidden([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestEncodeFrameRoundTrip(t *testing.T) {
	built, err := NewGenerator(5, 0, 0).Build(climate(), nil)
	require.NoError(t, err)

	for _, encoding := range []string{EncodingJSON, EncodingMsgpack} {
		t.Run(encoding, func(t *testing.T) {
			data, err := EncodeFrame(built.Frame, encoding)
			require.NoError(t, err)

			frame, err := DecodeFrame(data, encoding)
			require.NoError(t, err)
			assert.Equal(t, built.Frame.ChartID, frame.ChartID)
			assert.Equal(t, built.Frame.Plan.ChartTypesMap, frame.Plan.ChartTypesMap)
			assert.Equal(t, built.Frame.Axes[models.RightYAxisName].TickCount, frame.Axes[models.RightYAxisName].TickCount)
			require.True(t, frame.Plan.Options.YAxis.IsList())
		})
	}

	_, err = EncodeFrame(built.Frame, "xml")
	assert.Error(t, err)
}

func TestStoreChart(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	so := NewStorageOrchestrator(store)

	rendered, err := NewGenerator(5, 0, 0).Render(climate(), "html", nil)
	require.NoError(t, err)

	ctx := context.Background()
	keys, err := so.StoreChart(ctx, rendered)
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Contains(t, keys[0], "/chart.html")
	assert.Contains(t, keys[1], "/plan.json")
	assert.Contains(t, keys[2], "/description.md")

	planJSON, err := store.Get(ctx, keys[1])
	require.NoError(t, err)
	frame, err := DecodeFrame(planJSON, EncodingJSON)
	require.NoError(t, err)
	assert.Equal(t, rendered.ChartID, frame.ChartID)
	assert.Contains(t, so.Location(keys[0]), "chart.html")
}
