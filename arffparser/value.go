package arffparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	ValueMissing ValueKind = "missing"
	ValueFloat   ValueKind = "float"
	ValueInt     ValueKind = "int"
	ValueString  ValueKind = "string"
	ValueTime    ValueKind = "time"
	ValueNominal ValueKind = "nominal"
)

// Value is one decoded cell of a data row. Kind determines which typed
// field is populated. A missing value is distinct from zero or the empty
// string.
type Value struct {
	Kind    ValueKind
	Float   float64   // populated when Kind == ValueFloat
	Int     int64     // populated when Kind == ValueInt
	Str     string    // populated when Kind == ValueString
	Time    time.Time // populated when Kind == ValueTime
	Ordinal int       // 1-based label ordinal when Kind == ValueNominal
	Raw     string    // original token text, always set
}

// Missing is the sentinel decoded value for absent or undecodable cells.
var Missing = Value{Kind: ValueMissing, Raw: "?"}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool { return v.Kind == ValueMissing }

// Float64 renders the value as a float64 where a numeric reading exists:
// floats as themselves, ints and nominal ordinals widened, times as Unix
// seconds. The second return is false for strings and missing values.
func (v Value) Float64() (float64, bool) {
	switch v.Kind {
	case ValueFloat:
		return v.Float, true
	case ValueInt:
		return float64(v.Int), true
	case ValueNominal:
		return float64(v.Ordinal), true
	case ValueTime:
		return float64(v.Time.Unix()), true
	}
	return 0, false
}

// String returns the original token text of the value.
func (v Value) String() string { return v.Raw }

// DecodeValue converts one raw row token into a typed value for the given
// attribute. The token "?" and blank tokens decode to Missing before any
// type dispatch. Unknown nominal labels and unparsable dates are reported
// as *ValueError like malformed numbers; the caller decides whether that
// degrades the cell or aborts.
func DecodeValue(attr *Attribute, raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "?" {
		return Missing, nil
	}

	switch attr.Kind {
	case AttrNumeric, AttrReal:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("attribute %q: invalid number %q", attr.Name, trimmed),
				Cause:   err,
			}}
		}
		return Value{Kind: ValueFloat, Float: f, Raw: trimmed}, nil

	case AttrInteger:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("attribute %q: invalid integer %q", attr.Name, trimmed),
				Cause:   err,
			}}
		}
		return Value{Kind: ValueInt, Int: n, Raw: trimmed}, nil

	case AttrString:
		s := stripQuotes(trimmed)
		return Value{Kind: ValueString, Str: s, Raw: trimmed}, nil

	case AttrNominal:
		label := stripQuotes(trimmed)
		ord, ok := attr.Ordinal(label)
		if !ok {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("attribute %q: unknown nominal label %q", attr.Name, label),
			}}
		}
		return Value{Kind: ValueNominal, Ordinal: ord, Str: label, Raw: trimmed}, nil

	case AttrDate:
		layout := attr.Format
		if layout == "" {
			layout = DefaultDateLayout
		}
		t, err := time.Parse(layout, stripQuotes(trimmed))
		if err != nil {
			return Value{}, &ValueError{ParseError{
				Message: fmt.Sprintf("attribute %q: cannot parse date %q with layout %q", attr.Name, trimmed, layout),
				Cause:   err,
			}}
		}
		return Value{Kind: ValueTime, Time: t, Raw: trimmed}, nil
	}

	return Value{}, &ValueError{ParseError{
		Message: fmt.Sprintf("attribute %q: unhandled attribute kind %q", attr.Name, attr.Kind),
	}}
}
