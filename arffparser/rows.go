package arffparser

import (
	"strconv"
	"strings"
)

// SplitDense splits one data line on unquoted commas. The first quote
// character seen (either ' or ") opens a quoted span and only its matching
// character closes it; a backslash takes the following character literally.
// Quote characters are consumed, fields are whitespace-trimmed.
func SplitDense(line string) []string {
	var (
		fields []string
		sb     strings.Builder
		quote  byte // active quote char, 0 when outside a quoted span
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '\\' && i+1 < len(line):
			i++
			sb.WriteByte(line[i])
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				sb.WriteByte(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ',':
			fields = append(fields, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(sb.String()))

	return fields
}

// ExpandSparse expands a sparse data line of the form {index value, ...}
// into a full-width slice of raw tokens, one per attribute, defaulting
// unspecified entries to "0". Indices are 0-based. Out-of-range indices are
// dropped and entries that are not exactly "<index> <value>" are skipped,
// both silently. Returns ok=false when the line carries no {...} body.
func ExpandSparse(line string, width int) (fields []string, ok bool) {
	open := strings.Index(line, "{")
	end := strings.LastIndex(line, "}")
	if open < 0 || end < open {
		return nil, false
	}

	fields = make([]string, width)
	for i := range fields {
		fields[i] = "0"
	}

	for _, piece := range strings.Split(line[open+1:end], ",") {
		parts := strings.Fields(piece)
		if len(parts) != 2 {
			continue
		}
		idx, err := strconv.Atoi(parts[0])
		if err != nil || idx < 0 || idx >= width {
			continue
		}
		fields[idx] = parts[1]
	}

	return fields, true
}
