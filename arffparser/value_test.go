package arffparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValueMissingBeforeDispatch(t *testing.T) {
	// "?" and blank tokens are missing regardless of declared type.
	attrs := []Attribute{
		{Name: "a", Kind: AttrNumeric},
		{Name: "b", Kind: AttrInteger},
		{Name: "c", Kind: AttrString},
		{Name: "d", Kind: AttrDate, Format: DefaultDateLayout},
		{Name: "e", Kind: AttrNominal, Labels: []string{"x"}, index: map[string]int{"x": 1}},
	}
	for _, attr := range attrs {
		for _, raw := range []string{"?", "", "   "} {
			v, err := DecodeValue(&attr, raw)
			require.NoError(t, err, "attr %s input %q", attr.Name, raw)
			assert.True(t, v.IsMissing(), "attr %s input %q", attr.Name, raw)
		}
	}
}

func TestDecodeValueNumeric(t *testing.T) {
	attr := &Attribute{Name: "temp", Kind: AttrNumeric}
	v, err := DecodeValue(attr, "72.5")
	require.NoError(t, err)
	assert.Equal(t, ValueFloat, v.Kind)
	assert.Equal(t, 72.5, v.Float)
	assert.Equal(t, "72.5", v.Raw)
}

func TestDecodeValueBadNumber(t *testing.T) {
	attr := &Attribute{Name: "temp", Kind: AttrReal}
	_, err := DecodeValue(attr, "warm")
	require.Error(t, err)
	assert.IsType(t, &ValueError{}, err)
}

func TestDecodeValueInteger(t *testing.T) {
	attr := &Attribute{Name: "n", Kind: AttrInteger}
	v, err := DecodeValue(attr, "-12")
	require.NoError(t, err)
	assert.Equal(t, ValueInt, v.Kind)
	assert.Equal(t, int64(-12), v.Int)

	_, err = DecodeValue(attr, "3.5")
	require.Error(t, err)
	assert.IsType(t, &ValueError{}, err)
}

func TestDecodeValueString(t *testing.T) {
	attr := &Attribute{Name: "s", Kind: AttrString}
	tests := []struct {
		raw  string
		want string
	}{
		{"plain", "plain"},
		{"'quoted value'", "quoted value"},
		{`"double quoted"`, "double quoted"},
	}
	for _, tt := range tests {
		v, err := DecodeValue(attr, tt.raw)
		require.NoError(t, err, "input: %s", tt.raw)
		assert.Equal(t, ValueString, v.Kind, "input: %s", tt.raw)
		assert.Equal(t, tt.want, v.Str, "input: %s", tt.raw)
	}
}

func TestDecodeValueNominal(t *testing.T) {
	attr := &Attribute{
		Name:   "outlook",
		Kind:   AttrNominal,
		Labels: []string{"sunny", "overcast", "rainy"},
		index:  map[string]int{"sunny": 1, "overcast": 2, "rainy": 3},
	}

	v, err := DecodeValue(attr, "overcast")
	require.NoError(t, err)
	assert.Equal(t, ValueNominal, v.Kind)
	assert.Equal(t, 2, v.Ordinal)

	// Quoted labels resolve the same.
	v, err = DecodeValue(attr, "'rainy'")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Ordinal)
}

func TestDecodeValueUnknownNominalLabel(t *testing.T) {
	attr := &Attribute{
		Name:   "outlook",
		Kind:   AttrNominal,
		Labels: []string{"sunny"},
		index:  map[string]int{"sunny": 1},
	}
	_, err := DecodeValue(attr, "foggy")
	require.Error(t, err)
	assert.IsType(t, &ValueError{}, err)
	assert.Contains(t, err.Error(), "unknown nominal label")
}

func TestDecodeValueDate(t *testing.T) {
	attr := &Attribute{Name: "when", Kind: AttrDate, Format: DefaultDateLayout}
	v, err := DecodeValue(attr, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, ValueTime, v.Kind)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), v.Time)
}

func TestDecodeValueDateDefaultsLayout(t *testing.T) {
	// An empty Format falls back to the default layout.
	attr := &Attribute{Name: "when", Kind: AttrDate}
	v, err := DecodeValue(attr, "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, ValueTime, v.Kind)
}

func TestDecodeValueBadDate(t *testing.T) {
	attr := &Attribute{Name: "when", Kind: AttrDate, Format: DefaultDateLayout}
	_, err := DecodeValue(attr, "15/03/2024")
	require.Error(t, err)
	assert.IsType(t, &ValueError{}, err)
}

func TestValueFloat64(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
		ok   bool
	}{
		{"float", Value{Kind: ValueFloat, Float: 1.5}, 1.5, true},
		{"int", Value{Kind: ValueInt, Int: 7}, 7, true},
		{"nominal", Value{Kind: ValueNominal, Ordinal: 3}, 3, true},
		{"time", Value{Kind: ValueTime, Time: time.Unix(90, 0).UTC()}, 90, true},
		{"string", Value{Kind: ValueString, Str: "x"}, 0, false},
		{"missing", Missing, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.v.Float64()
		assert.Equal(t, tt.ok, ok, "case: %s", tt.name)
		if ok {
			assert.Equal(t, tt.want, got, "case: %s", tt.name)
		}
	}
}
