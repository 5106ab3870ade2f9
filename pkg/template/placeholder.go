package template

import (
	"strconv"
	"strings"
)

// maxPrecision bounds the decimals a placeholder may request.
const maxPrecision = 100

// Token describes one placeholder kind.
type Token struct {
	Letter byte
	// Precision allows an optional ".N" suffix.
	Precision bool
}

var (
	Percent = Token{Letter: 'p', Precision: true}
	Series  = Token{Letter: 's'}
	XValue  = Token{Letter: 'x', Precision: true}
	YValue  = Token{Letter: 'y', Precision: true}
)

// String returns the bare placeholder, e.g. "%x".
func (t Token) String() string { return "%" + string(t.Letter) }

// Placeholder is the result of matching a token against template text.
type Placeholder struct {
	Matched bool
	// Start and End delimit the whole placeholder, suffix included.
	Start, End int
	// Precision is valid only when HasPrecision is set.
	Precision    int
	HasPrecision bool
}

// Match finds the first occurrence of tok in content. For tokens that take a
// precision, an optional "." and the digits after it are consumed as part of
// the placeholder, so "%x." is replaced whole. The digits, if any, become the
// precision.
func Match(content string, tok Token) Placeholder {
	marker := tok.String()
	start := strings.Index(content, marker)
	if start < 0 {
		return Placeholder{}
	}
	ph := Placeholder{Matched: true, Start: start, End: start + len(marker)}
	if !tok.Precision {
		return ph
	}

	i := ph.End
	if i < len(content) && content[i] == '.' {
		i++
	}
	digits := i
	for digits < len(content) && content[digits] >= '0' && content[digits] <= '9' {
		digits++
	}
	ph.End = digits
	if digits > i {
		ph.HasPrecision = true
		ph.Precision = parsePrecision(content[i:digits])
	}
	return ph
}

func parsePrecision(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n > maxPrecision {
		return maxPrecision
	}
	return n
}

// Replace substitutes text for the matched placeholder. An unmatched
// placeholder leaves content unchanged.
func (ph Placeholder) Replace(content, text string) string {
	if !ph.Matched {
		return content
	}
	return content[:ph.Start] + text + content[ph.End:]
}
