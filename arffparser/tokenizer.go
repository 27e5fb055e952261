package arffparser

import "strings"

// fieldState is the tokenizer state while scanning one header line.
type fieldState int

const (
	stateSpace  fieldState = iota // consuming a whitespace run
	stateNormal                   // inside an unquoted field
	stateSingle                   // inside a '...' span
	stateDouble                   // inside a "..." span
)

// Fields splits a header line into whitespace-separated fields, honoring
// single- and double-quoted spans. Quote characters are stripped from the
// emitted fields; interior content, including embedded whitespace or commas,
// is preserved verbatim. An unterminated quote is closed at end of line.
// Returns nil for a blank or whitespace-only line.
//
// Fields is used only for header lines (@relation, @attribute, @data); data
// rows go through SplitDense or ExpandSparse instead.
func Fields(line string) []string {
	var (
		fields []string
		sb     strings.Builder
		state  = stateSpace
	)

	flush := func() {
		fields = append(fields, sb.String())
		sb.Reset()
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch state {
		case stateSpace:
			switch ch {
			case ' ', '\t', '\r', '\n':
				// still in the run
			case '\'':
				state = stateSingle
			case '"':
				state = stateDouble
			default:
				sb.WriteByte(ch)
				state = stateNormal
			}

		case stateNormal:
			switch ch {
			case ' ', '\t', '\r', '\n':
				flush()
				state = stateSpace
			case '\'':
				// Quote opening mid-field starts a quoted continuation of
				// the same field; the quote itself is stripped.
				state = stateSingle
			case '"':
				state = stateDouble
			default:
				sb.WriteByte(ch)
			}

		case stateSingle:
			if ch == '\'' {
				flush()
				state = stateSpace
			} else {
				sb.WriteByte(ch)
			}

		case stateDouble:
			if ch == '"' {
				flush()
				state = stateSpace
			} else {
				sb.WriteByte(ch)
			}
		}
	}

	// Flush a pending field, treating an unterminated quote as closed at
	// end of line.
	if state == stateNormal || sb.Len() > 0 {
		flush()
	}

	return fields
}

// stripQuotes removes one pair of matching surrounding quote characters,
// either single or double, from s. Unmatched or absent quotes leave s as is.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
