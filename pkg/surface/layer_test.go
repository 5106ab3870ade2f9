package surface

import (
	"strings"
	"testing"

	"github.com/matzehuels/hovertip/pkg/placement"
)

func TestLayerCreateIsIdempotent(t *testing.T) {
	l := NewLayer()

	a := l.Create("chart-1")
	a.SetContent("kept")
	b := l.Create("chart-1")

	if a != b {
		t.Fatal("Create() returned a second surface for the same owner")
	}
	if b.Content() != "kept" {
		t.Errorf("Content() = %q", b.Content())
	}
	if b.Visible() {
		t.Error("new surface should start hidden")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestLayerOwnersDoNotCollide(t *testing.T) {
	l := NewLayer()
	a := l.Create("chart-1")
	b := l.Create("chart-2")

	a.SetContent("one")
	b.SetContent("two")

	if a == b || a.Content() == b.Content() {
		t.Fatal("surfaces of different owners must be distinct")
	}
	if got, ok := l.Lookup("chart-2"); !ok || got.Content() != "two" {
		t.Errorf("Lookup(chart-2) = %v, %v", got, ok)
	}
}

func TestLayerRemove(t *testing.T) {
	l := NewLayer()
	s := l.Create("chart-1")
	s.Show()

	l.Remove("chart-1")

	if s.Visible() {
		t.Error("removed surface should be hidden")
	}
	if _, ok := l.Lookup("chart-1"); ok {
		t.Error("removed surface still attached")
	}
	l.Remove("missing")
}

func TestBoxSize(t *testing.T) {
	l := NewLayer()
	s := l.Create("c")
	s.SetContent("hi")

	if got := s.Size(); got != (placement.Size{W: 2, H: 1}) {
		t.Errorf("plain Size() = %+v", got)
	}

	theme := DefaultTheme
	s.SetTheme(&theme)
	if got := s.Size(); got != (placement.Size{W: 6, H: 3}) {
		t.Errorf("themed Size() = %+v, want border and padding", got)
	}

	s.SetTheme(nil)
	if got := s.Size(); got.W != 2 {
		t.Errorf("Size() after SetTheme(nil) = %+v", got)
	}
}

func TestLayerCompose(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"....",
	}, "\n")

	tests := []struct {
		name string
		pos  placement.Point
		want []string
	}{
		{"inside", placement.Point{X: 3, Y: 1}, []string{"..........", "...hi.....", "...."}},
		{"clipped left", placement.Point{X: -1, Y: 0}, []string{"i.........", "..........", "...."}},
		{"past line end", placement.Point{X: 6, Y: 2}, []string{"..........", "..........", "....  hi"}},
		{"below screen", placement.Point{X: 0, Y: 5}, []string{"..........", "..........", "...."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayer()
			s := l.Create("c")
			s.SetContent("hi")
			s.MoveTo(tt.pos)
			s.Show()

			got := l.Compose(base)
			if want := strings.Join(tt.want, "\n"); got != want {
				t.Errorf("Compose() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestLayerComposeSkipsHidden(t *testing.T) {
	l := NewLayer()
	s := l.Create("c")
	s.SetContent("hidden")

	if got := l.Compose("....."); got != "....." {
		t.Errorf("Compose() = %q", got)
	}
}

func TestLayerComposeStacking(t *testing.T) {
	l := NewLayer()

	top := l.Create("top")
	top.SetContent("T")
	top.MoveTo(placement.Point{X: 1})
	top.Show()
	top.(*Box).z = 100

	low := l.Create("low")
	low.SetContent("LL")
	low.MoveTo(placement.Point{X: 0})
	low.Show()

	if got := l.Compose("...."); got != "LT.." {
		t.Errorf("Compose() = %q, want higher z-index drawn last", got)
	}
}
