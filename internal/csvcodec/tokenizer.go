package csvcodec

import "strings"

// splitFields tokenizes one CSV line.
//
// Grammar, applied left to right:
//
//	line   = field { "," field }
//	field  = quoted | bare
//	quoted = '"' { any char except '"' } '"'   followed by "," or end of line
//	bare   = { any char except "," }           with every '"' removed
//
// A quote that does not close cleanly before a comma or end of line is not a
// quoted field; the run is read as bare instead, so `"abc,def` yields "abc"
// and "def". Fields are trimmed of surrounding whitespace.
func splitFields(line string) []string {
	var fields []string
	i := 0
	for {
		field, next := readField(line, i)
		fields = append(fields, strings.TrimSpace(field))
		if next >= len(line) {
			return fields
		}
		// line[next] is the separating comma.
		i = next + 1
		if i == len(line) {
			// Trailing comma: one more empty field.
			return append(fields, "")
		}
	}
}

// readField reads the field starting at line[start] and returns its value
// and the index just past it (a comma, or len(line)).
func readField(line string, start int) (string, int) {
	if start < len(line) && line[start] == '"' {
		if end := strings.IndexByte(line[start+1:], '"'); end >= 0 {
			closeIdx := start + 1 + end
			after := closeIdx + 1
			if after == len(line) || line[after] == ',' {
				return line[start+1 : closeIdx], after
			}
		}
	}

	end := strings.IndexByte(line[start:], ',')
	if end < 0 {
		end = len(line)
	} else {
		end += start
	}
	return strings.ReplaceAll(line[start:end], `"`, ""), end
}

// splitLines returns the non-blank lines of text with any trailing carriage
// return removed.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
