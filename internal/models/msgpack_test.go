package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type yAxisHolder struct {
	YAxis YAxisOption `json:"yAxis"`
}

func roundTrip(t *testing.T, in yAxisHolder) yAxisHolder {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	require.NoError(t, enc.Encode(in))

	var out yAxisHolder
	dec := msgpack.NewDecoder(&buf)
	dec.SetCustomStructTag("json")
	require.NoError(t, dec.Decode(&out))
	return out
}

func TestYAxisOptionMsgpack(t *testing.T) {
	zero := 0.0
	list := roundTrip(t, yAxisHolder{YAxis: YAxisList(AxisOption{ChartType: "column", Min: &zero}, AxisOption{ChartType: "line"})})
	require.True(t, list.YAxis.IsList())
	second, ok := list.YAxis.At(1)
	require.True(t, ok)
	assert.Equal(t, "line", second.ChartType)
	first, _ := list.YAxis.At(0)
	require.NotNil(t, first.Min)
	assert.Equal(t, 0.0, *first.Min)

	shared := roundTrip(t, yAxisHolder{YAxis: SingleYAxis(AxisOption{Title: "Amount", Align: AxisAlignCenter})})
	assert.False(t, shared.YAxis.IsList())
	assert.Equal(t, AxisAlignCenter, shared.YAxis.Align())

	empty := roundTrip(t, yAxisHolder{})
	assert.False(t, empty.YAxis.IsSet())
}
