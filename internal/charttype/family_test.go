package charttype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Family
		wantErr bool
	}{
		{name: "bar", input: "bar", want: Bar},
		{name: "column upper case", input: "COLUMN", want: Column},
		{name: "line with spaces", input: " line ", want: Line},
		{name: "area", input: "area", want: Area},
		{name: "pie is not supported", input: "pie", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFamily))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer(t *testing.T) {
	expected := map[Family]RendererKind{
		Bar:    BarRenderer,
		Column: ColumnRenderer,
		Line:   LineRenderer,
		Area:   AreaRenderer,
	}
	for family, kind := range expected {
		got, err := family.Renderer()
		require.NoError(t, err)
		assert.Equal(t, kind, got, family.String())
	}

	_, err := Unknown.Renderer()
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestFamilyTraits(t *testing.T) {
	assert.False(t, Bar.IsVertical())
	assert.True(t, Column.IsComboMember())
	assert.True(t, Area.IsComboMember())
	assert.False(t, Bar.IsComboMember())

	assert.True(t, Bar.AllowsStack())
	assert.True(t, Column.AllowsStack())
	assert.True(t, Area.AllowsStack())
	assert.False(t, Line.AllowsStack())
}

func TestTextRoundTrip(t *testing.T) {
	var f Family
	require.NoError(t, f.UnmarshalText([]byte("area")))
	assert.Equal(t, Area, f)

	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "area", string(text))

	assert.Error(t, f.UnmarshalText([]byte("radial")))
}
