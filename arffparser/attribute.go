package arffparser

import (
	"fmt"
	"strings"
)

// AttrKind discriminates the attribute variants declared in an ARFF header.
type AttrKind string

const (
	AttrNumeric AttrKind = "numeric"
	AttrInteger AttrKind = "integer"
	AttrReal    AttrKind = "real"
	AttrString  AttrKind = "string"
	AttrDate    AttrKind = "date"
	AttrNominal AttrKind = "nominal"
)

// DefaultDateLayout is the layout assumed for date attributes that declare
// no format pattern (the ARFF default pattern yyyy-mm-dd).
const DefaultDateLayout = "2006-01-02"

// Attribute is one typed column declaration from the header section.
type Attribute struct {
	Name   string
	Kind   AttrKind
	Format string   // Go time layout, AttrDate only
	Labels []string // declared labels in order, AttrNominal only
	Line   int      // 1-based source line of the declaration

	index map[string]int // label -> 1-based ordinal, AttrNominal only
}

// Ordinal returns the 1-based ordinal of a nominal label and whether the
// label is declared. Always false for non-nominal attributes.
func (a *Attribute) Ordinal(label string) (int, bool) {
	ord, ok := a.index[label]
	return ord, ok
}

// Numeric reports whether the attribute holds numbers (numeric, integer or
// real semantics).
func (a *Attribute) Numeric() bool {
	return a.Kind == AttrNumeric || a.Kind == AttrInteger || a.Kind == AttrReal
}

// ParseAttribute builds an Attribute from the tokenized fields of one
// @attribute line, expected as ["@attribute", name, type, ...]. Nominal
// declarations may spread their {...} body over several fields; they are
// rejoined here. Duplicate nominal labels keep their first ordinal and are
// reported as warning diagnostics. A relational type or any unrecognized
// type token is a *DeclError.
func ParseAttribute(fields []string, line int) (Attribute, Diagnostics, error) {
	if len(fields) < 3 {
		return Attribute{}, nil, &DeclError{ParseError{
			Message: fmt.Sprintf("invalid attribute declaration: want at least 3 fields, got %d", len(fields)),
			Line:    line,
		}}
	}

	name := stripQuotes(fields[1])
	typ := fields[2]

	switch strings.ToUpper(typ) {
	case "NUMERIC":
		return Attribute{Name: name, Kind: AttrNumeric, Line: line}, nil, nil
	case "INTEGER":
		return Attribute{Name: name, Kind: AttrInteger, Line: line}, nil, nil
	case "REAL":
		return Attribute{Name: name, Kind: AttrReal, Line: line}, nil, nil
	case "STRING":
		return Attribute{Name: name, Kind: AttrString, Line: line}, nil, nil
	case "DATE":
		layout := DefaultDateLayout
		if len(fields) >= 4 {
			layout = dateLayout(stripQuotes(fields[3]))
		}
		return Attribute{Name: name, Kind: AttrDate, Format: layout, Line: line}, nil, nil
	case "RELATIONAL":
		return Attribute{}, nil, &DeclError{ParseError{
			Message: fmt.Sprintf("attribute %q: relational attributes are not supported", name),
			Line:    line,
		}}
	}

	// A whitespace-split {...} body arrives as several fields; rejoin before
	// checking the brace shape.
	if strings.HasPrefix(typ, "{") {
		typ = strings.Join(fields[2:], " ")
	}
	if strings.HasPrefix(typ, "{") && strings.HasSuffix(typ, "}") {
		return parseNominal(name, typ, line)
	}

	return Attribute{}, nil, &DeclError{ParseError{
		Message: fmt.Sprintf("attribute %q: unsupported type %q", name, fields[2]),
		Line:    line,
	}}
}

// parseNominal splits the interior of a {...} nominal body on commas and
// assigns 1-based ordinals in declaration order. First occurrence wins on
// duplicates; later duplicates are dropped with a warning.
func parseNominal(name, body string, line int) (Attribute, Diagnostics, error) {
	interior := strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")

	var (
		labels []string
		index  = make(map[string]int)
		diags  Diagnostics
	)
	for _, piece := range strings.Split(interior, ",") {
		label := stripQuotes(strings.TrimSpace(piece))
		if label == "" {
			continue
		}
		if _, ok := index[label]; ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Line:     line,
				Message:  fmt.Sprintf("attribute %q: duplicate nominal label %q ignored", name, label),
			})
			continue
		}
		labels = append(labels, label)
		index[label] = len(labels)
	}

	return Attribute{
		Name:   name,
		Kind:   AttrNominal,
		Labels: labels,
		Line:   line,
		index:  index,
	}, diags, nil
}

// dateTokens maps date-format tokens to Go reference-time layout elements,
// longest first. The tokens follow the convention of the ARFF files this
// parser targets: mm is month, MM is minute.
var dateTokens = []struct{ pat, layout string }{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"mm", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"MM", "04"},
	{"SS", "05"},
}

// dateLayout translates a date-format pattern into a Go time layout.
// Characters outside the known tokens pass through verbatim.
func dateLayout(pattern string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(pattern[i:], tok.pat) {
				sb.WriteString(tok.layout)
				i += len(tok.pat)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(pattern[i])
			i++
		}
	}
	return sb.String()
}
