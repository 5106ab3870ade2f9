package surface

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a fixed visual style for a tooltip surface, expressed as CSS
// values so web hosts can apply it verbatim.
type Theme struct {
	Background   string
	Border       string
	BorderRadius string
	Padding      string
	FontSize     string
	WhiteSpace   string
	Display      string
	ZIndex       int
}

// DefaultTheme is applied when the tooltip options ask for the default theme.
var DefaultTheme = Theme{
	Background:   "#fff",
	Border:       "1px solid #111",
	BorderRadius: "0.5em",
	Padding:      "0.4em 0.6em",
	FontSize:     "0.8em",
	WhiteSpace:   "nowrap",
	Display:      "inline-block",
	ZIndex:       100,
}

// Declarations returns the theme as ordered CSS property/value pairs.
// Empty values are skipped.
func (t Theme) Declarations() [][2]string {
	all := [][2]string{
		{"background", t.Background},
		{"z-index", zIndex(t.ZIndex)},
		{"padding", t.Padding},
		{"border-radius", t.BorderRadius},
		{"font-size", t.FontSize},
		{"border", t.Border},
		{"display", t.Display},
		{"white-space", t.WhiteSpace},
	}
	out := all[:0]
	for _, d := range all {
		if d[1] != "" {
			out = append(out, d)
		}
	}
	return out
}

func zIndex(z int) string {
	if z == 0 {
		return ""
	}
	return fmt.Sprint(z)
}

// CSS renders the theme as a declaration block body.
func (t Theme) CSS() string {
	var b strings.Builder
	for i, d := range t.Declarations() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", d[0], d[1])
	}
	return b.String()
}

// Rule renders a complete CSS rule for selector.
func (t Theme) Rule(selector string) string {
	return fmt.Sprintf("%s { position: absolute; %s }", selector, t.CSS())
}

// Style is the terminal rendition of the theme: an opaque box with a rounded
// border when the theme has a radius, one cell of horizontal padding when it
// has padding.
func (t Theme) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.Background != "" {
		s = s.Background(lipgloss.Color(expandHex(t.Background)))
	}
	if color := borderColor(t.Border); color != "" {
		border := lipgloss.NormalBorder()
		if t.BorderRadius != "" {
			border = lipgloss.RoundedBorder()
		}
		s = s.Border(border).BorderForeground(lipgloss.Color(color))
		if t.Background != "" {
			s = s.BorderBackground(lipgloss.Color(expandHex(t.Background))).
				Foreground(lipgloss.Color(color))
		}
	}
	if t.Padding != "" {
		s = s.Padding(0, 1)
	}
	return s
}

// borderColor extracts the color from a CSS border shorthand.
func borderColor(border string) string {
	for _, f := range strings.Fields(border) {
		if strings.HasPrefix(f, "#") {
			return expandHex(f)
		}
	}
	return ""
}

// expandHex turns "#abc" into "#aabbcc". Other values are returned as is.
func expandHex(c string) string {
	if len(c) != 4 || c[0] != '#' {
		return c
	}
	return string([]byte{'#', c[1], c[1], c[2], c[2], c[3], c[3]})
}
