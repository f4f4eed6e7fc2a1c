// Package detect infers the formatting conventions of a JSON document
// from its raw text: the indentation unit, the dominant line-ending
// style, and whether the text ends with a line ending.
package detect

import "strings"

// Format describes the formatting conventions inferred from one document.
type Format struct {
	// Indent is the substring judged to represent one level of
	// indentation. Empty when no consistent indentation was found.
	Indent string
	// CRLF reports that CRLF line boundaries strictly outnumbered LF.
	CRLF bool
	// TrailingNewline reports that the text ends with a line ending.
	TrailingNewline bool
}

// Scan infers the Format of data in a single pass. It never fails;
// text without any formatting signal yields the zero Format.
func Scan(data []byte) Format {
	var f Format
	if len(data) == 0 {
		return f
	}
	f.TrailingNewline = data[len(data)-1] == '\n'

	lf, crlf := 0, 0
	for i, b := range data {
		if b != '\n' {
			continue
		}
		if i > 0 && data[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	// Ties resolve to LF.
	f.CRLF = crlf > lf

	f.Indent = indentUnit(string(data))
	return f
}

// indentUnit derives the dominant indentation unit from the delta
// between the leading whitespace runs of successive lines. Comparing
// deltas rather than raw prefixes isolates a single nesting step even
// in deeply nested documents.
func indentUnit(text string) string {
	var (
		prevRun  string
		prevUnit string
		counts   = map[string]int{}
		order    []string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		run, ok := leadingRun(line)
		if !ok {
			// Mixed spaces and tabs carry no signal either way.
			continue
		}
		if run == "" {
			prevRun, prevUnit = "", ""
			continue
		}
		var unit string
		switch {
		case run == prevRun:
			// Same depth as the previous line reuses its unit.
			unit = prevUnit
		case prevRun != "" && run[0] == prevRun[0]:
			// Same character class at a different depth: the unit is
			// one nesting step, i.e. the length difference.
			n := len(run) - len(prevRun)
			if n < 0 {
				n = -n
			}
			unit = strings.Repeat(run[:1], n)
		default:
			unit = run
		}
		if _, seen := counts[unit]; !seen {
			order = append(order, unit)
		}
		counts[unit]++
		prevRun, prevUnit = run, unit
	}

	// Strictly highest count wins; ties keep the first-seen unit.
	best, bestN := "", 0
	for _, u := range order {
		if counts[u] > bestN {
			best, bestN = u, counts[u]
		}
	}
	return best
}

// leadingRun returns the leading whitespace run of line when it
// consists of a single character class (all spaces or all tabs).
// ok is false when the classes are mixed; a line with no leading
// whitespace returns ("", true).
func leadingRun(line string) (run string, ok bool) {
	c := line[0]
	if c != ' ' && c != '\t' {
		return "", true
	}
	i := 1
	for i < len(line) && line[i] == c {
		i++
	}
	if i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		return "", false
	}
	return line[:i], true
}
