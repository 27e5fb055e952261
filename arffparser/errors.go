package arffparser

import "fmt"

// ParseError is the base error type for all arffparser errors.
type ParseError struct {
	Message string
	Line    int // 1-based source line, 0 when not tied to one
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// DeclError represents a malformed or unsupported @attribute declaration.
type DeclError struct{ ParseError }

// ValueError represents a value conversion error (bad number, bad date).
type ValueError struct{ ParseError }

// NoRowsError reports that a full scan accepted zero data rows.
type NoRowsError struct{ ParseError }

// ClassIndexError reports an explicit class index outside the attribute range.
type ClassIndexError struct {
	ParseError
	Index int // the requested 1-based index
	Count int // number of attributes
}

func (e *ClassIndexError) Error() string {
	return fmt.Sprintf("class index %d out of range [1, %d]", e.Index, e.Count)
}

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is one recoverable finding from a parse: a skipped line, a
// value degraded to missing, a dropped attribute. Diagnostics never abort
// the parse; fatal conditions are returned as errors instead.
type Diagnostic struct {
	Severity Severity
	Line     int // 1-based source line, 0 when not tied to one
	Message  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", d.Severity, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Diagnostics is the ordered sequence of findings from one parse call.
type Diagnostics []Diagnostic

// Warnings returns only the warning-severity diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
