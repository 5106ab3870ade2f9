package surface

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/hovertip/pkg/placement"
)

// Layer is a terminal Document. Coordinates are cells. It is not safe for
// concurrent use; drive it from the UI event loop.
type Layer struct {
	boxes map[string]*Box
	seq   int
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{boxes: make(map[string]*Box)}
}

// Lookup returns the surface owned by id.
func (l *Layer) Lookup(id string) (Surface, bool) {
	b, ok := l.boxes[id]
	if !ok {
		return nil, false
	}
	return b, true
}

// Create inserts a hidden, unstyled surface for id. An existing surface for
// id is returned unchanged.
func (l *Layer) Create(id string) Surface {
	if b, ok := l.boxes[id]; ok {
		return b
	}
	l.seq++
	b := &Box{id: id, seq: l.seq, style: lipgloss.NewStyle()}
	l.boxes[id] = b
	return b
}

// Remove hides and detaches the surface for id.
func (l *Layer) Remove(id string) {
	if b, ok := l.boxes[id]; ok {
		b.Hide()
		delete(l.boxes, id)
	}
}

// Len reports how many surfaces are attached.
func (l *Layer) Len() int { return len(l.boxes) }

// Compose draws every visible surface over base, lowest z-index first. Parts
// of a surface outside base are clipped; base never grows.
func (l *Layer) Compose(base string) string {
	visible := make([]*Box, 0, len(l.boxes))
	for _, b := range l.boxes {
		if b.visible {
			visible = append(visible, b)
		}
	}
	if len(visible) == 0 {
		return base
	}
	slices.SortFunc(visible, func(a, b *Box) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	lines := strings.Split(base, "\n")
	for _, b := range visible {
		overlay(lines, b.Render(), int(b.pos.X), int(b.pos.Y))
	}
	return strings.Join(lines, "\n")
}

func overlay(lines []string, box string, x, y int) {
	for i, row := range strings.Split(box, "\n") {
		ly := y + i
		if ly < 0 || ly >= len(lines) {
			continue
		}
		col := x
		if col < 0 {
			row = ansi.TruncateLeft(row, -col, "")
			col = 0
		}
		lines[ly] = splice(lines[ly], row, col)
	}
}

// splice writes row over line starting at cell col.
func splice(line, row string, col int) string {
	w := ansi.StringWidth(row)
	left := ansi.Truncate(line, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if ansi.StringWidth(line) > col+w {
		right = ansi.TruncateLeft(line, col+w, "")
	}
	return left + row + right
}

// Box is a Layer surface.
type Box struct {
	id      string
	seq     int
	z       int
	content string
	pos     placement.Point
	visible bool
	style   lipgloss.Style
}

func (b *Box) ID() string                { return b.id }
func (b *Box) SetContent(text string)    { b.content = text }
func (b *Box) Content() string           { return b.content }
func (b *Box) MoveTo(p placement.Point)  { b.pos = p }
func (b *Box) Position() placement.Point { return b.pos }
func (b *Box) Show()                     { b.visible = true }
func (b *Box) Hide()                     { b.visible = false }
func (b *Box) Visible() bool             { return b.visible }

// SetTheme applies t's terminal style and stacking order.
func (b *Box) SetTheme(t *Theme) {
	if t == nil {
		b.style = lipgloss.NewStyle()
		b.z = 0
		return
	}
	b.style = t.Style()
	b.z = t.ZIndex
}

// Render returns the box as it would be drawn.
func (b *Box) Render() string {
	return b.style.Render(b.content)
}

// Size measures the rendered box in cells.
func (b *Box) Size() placement.Size {
	r := b.Render()
	return placement.Size{W: float64(lipgloss.Width(r)), H: float64(lipgloss.Height(r))}
}
