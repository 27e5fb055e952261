package arffparser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Relation is the complete parsed representation of one ARFF file: the
// declared relation name, the ordered attribute list, and every accepted
// data row, each aligned positionally with the attribute list.
type Relation struct {
	Name  string
	Attrs []Attribute
	Rows  [][]Value
}

// Parse parses ARFF source text. Recoverable problems (bad declarations,
// malformed rows, undecodable values) are collected into the returned
// Diagnostics; the error is non-nil only for fatal conditions, notably a
// scan that accepts zero data rows (*NoRowsError).
func Parse(src []byte) (*Relation, Diagnostics, error) {
	return ParseReader(bytes.NewReader(src))
}

// ParseFile opens and parses an ARFF file. An unreadable path is fatal.
func ParseFile(path string) (*Relation, Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ParseError{
			Message: fmt.Sprintf("opening %s: %v", path, err),
			Cause:   err,
		}
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader parses ARFF text from r, line by line.
func ParseReader(r io.Reader) (*Relation, Diagnostics, error) {
	p := &parser{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		p.line++
		p.processLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, p.diags, &ParseError{
			Message: fmt.Sprintf("reading input: %v", err),
			Line:    p.line,
			Cause:   err,
		}
	}

	if len(p.rows) == 0 {
		return nil, p.diags, &NoRowsError{ParseError{
			Message: "no data rows accepted",
			Line:    p.line,
		}}
	}

	return &Relation{Name: p.name, Attrs: p.attrs, Rows: p.rows}, p.diags, nil
}

// parser owns the in-progress accumulator for one parse call. It is used
// by exactly one goroutine for the duration of that call.
type parser struct {
	name  string
	attrs []Attribute
	rows  [][]Value
	line  int // current 1-based source line
	diags Diagnostics

	inData    bool
	sparse    bool
	syntaxSet bool // row syntax locked for the remainder of the file
}

func (p *parser) warnf(format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Severity: SeverityWarning,
		Line:     p.line,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (p *parser) processLine(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "%") {
		return
	}
	if p.inData {
		p.dataLine(line)
		return
	}
	p.headerLine(line)
}

// headerLine handles one line before the @data marker. Non-@ lines are
// ignored; @relation, @attribute and @data dispatch on the first field.
func (p *parser) headerLine(line string) {
	if !strings.HasPrefix(line, "@") {
		return
	}

	fields := Fields(line)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "@relation":
		if len(fields) > 1 {
			p.name = fields[1]
		}

	case "@attribute":
		attr, diags, err := ParseAttribute(fields, p.line)
		p.diags = append(p.diags, diags...)
		if err != nil {
			var de *DeclError
			if errors.As(err, &de) {
				p.warnf("%s; declaration skipped", de.Message)
			} else {
				p.warnf("%v; declaration skipped", err)
			}
			return
		}
		p.attrs = append(p.attrs, attr)

	case "@data":
		p.inData = true
		// An inline {...} pair on the @data line forces sparse syntax
		// immediately; otherwise the first data row fixes the choice.
		if strings.Contains(line, "{") && strings.Contains(line, "}") {
			p.sparse = true
			p.syntaxSet = true
		}
	}
}

// dataLine handles one line after the @data marker: split per the fixed
// row syntax, decode value by value, accumulate the row. A wrong field
// count skips the row; a failed decode degrades only that cell to missing.
func (p *parser) dataLine(line string) {
	if len(p.attrs) == 0 {
		p.warnf("data row before any attribute declarations; line skipped")
		return
	}

	if !p.syntaxSet {
		p.sparse = strings.HasPrefix(line, "{")
		p.syntaxSet = true
	}

	var fields []string
	if p.sparse {
		var ok bool
		fields, ok = ExpandSparse(line, len(p.attrs))
		if !ok {
			p.warnf("expected sparse {index value} syntax; line skipped")
			return
		}
	} else {
		if strings.HasPrefix(line, "{") && strings.HasSuffix(line, "}") {
			p.warnf("expected dense comma-separated syntax, got sparse row; line skipped")
			return
		}
		fields = SplitDense(line)
	}

	if len(fields) != len(p.attrs) {
		p.warnf("row has %d fields, want %d; line skipped", len(fields), len(p.attrs))
		return
	}

	row := make([]Value, len(fields))
	for i, raw := range fields {
		v, err := DecodeValue(&p.attrs[i], raw)
		if err != nil {
			var ve *ValueError
			if errors.As(err, &ve) {
				p.warnf("%s; value set to missing", ve.Message)
			} else {
				p.warnf("%v; value set to missing", err)
			}
			v = Missing
		}
		row[i] = v
	}
	p.rows = append(p.rows, row)
}
