package tooltip

import (
	"github.com/matzehuels/hovertip/pkg/chart"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/observability"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
	"github.com/matzehuels/hovertip/pkg/template"
)

// Binder connects one plot's event streams to its tooltip surface.
//
// Surface states: hidden until a hover with an item shows it, hidden again
// with cleared content on a hover without one. Pointer moves while shown only
// reposition. Shutdown hides and detaches the surface in any state.
type Binder struct {
	plot *chart.Plot
	opts Options

	tip surface.Surface
	// pos is the last anchor computed by the positioner.
	pos placement.Point

	unsubHover func()
	unsubMove  func()
}

// NewBinder creates a binder for p. Nothing is subscribed until Bind.
func NewBinder(p *chart.Plot, opts Options) *Binder {
	return &Binder{plot: p, opts: opts}
}

// Options returns the options the binder was created with.
func (b *Binder) Options() Options { return b.opts }

// Bind subscribes to hover and pointer-move notifications. It does nothing
// when the tooltip is disabled or already bound.
func (b *Binder) Bind() {
	if !b.opts.Enabled || b.unsubHover != nil {
		return
	}
	b.unsubHover = b.plot.OnHover(b.handleHover)
	b.unsubMove = b.plot.OnPointerMove(b.handleMove)
	observability.Tooltip().OnBind(b.plot.ID())
}

// Shutdown unsubscribes and removes the surface from the document.
func (b *Binder) Shutdown() {
	if b.unsubHover != nil {
		b.unsubHover()
		b.unsubHover = nil
	}
	if b.unsubMove != nil {
		b.unsubMove()
		b.unsubMove = nil
	}
	if doc := b.plot.Document(); doc != nil {
		if s, ok := doc.Lookup(b.plot.ID()); ok {
			s.Hide()
			doc.Remove(b.plot.ID())
		}
	}
	b.tip = nil
	observability.Tooltip().OnShutdown(b.plot.ID())
}

// Bound reports whether the binder is subscribed.
func (b *Binder) Bound() bool { return b.unsubHover != nil }

// Position returns the last computed anchor.
func (b *Binder) Position() placement.Point { return b.pos }

// Surface returns the tooltip surface once it has been created.
func (b *Binder) Surface() (surface.Surface, bool) {
	return b.tip, b.tip != nil
}

func (b *Binder) handleMove(pos placement.Point) {
	tip := b.ensureSurface()
	if tip == nil {
		return
	}
	pl := b.place(pos, tip)
	if tip.Visible() {
		tip.MoveTo(pl.Point)
		observability.Tooltip().OnMove(b.plot.ID(), pl.Point.X, pl.Point.Y)
	}
}

func (b *Binder) handleHover(pos placement.Point, item *hover.Context) {
	tip := b.ensureSurface()
	if tip == nil {
		return
	}

	if item == nil {
		wasVisible := tip.Visible()
		tip.Hide()
		tip.SetContent("")
		if wasVisible {
			observability.Tooltip().OnHide(b.plot.ID())
		}
		return
	}

	text := template.Format(b.opts.content(), item, template.Options{
		XDateFormat: b.opts.XDateFormat,
		YDateFormat: b.opts.YDateFormat,
		FormatDate:  b.plot.FormatDate(),
	})
	tip.SetContent(text)

	pl := b.place(pos, tip)
	tip.MoveTo(pl.Point)
	tip.Show()
	observability.Tooltip().OnShow(b.plot.ID(), text)

	if b.opts.OnHover != nil {
		b.opts.OnHover(item, tip)
	}
}

// place runs the positioner for the current surface size and records the
// anchor.
func (b *Binder) place(pos placement.Point, tip surface.Surface) placement.Placement {
	pl := placement.Clamp(pos, tip.Size(), b.plot.Viewport(), b.opts.Shifts)
	b.pos = pl.Anchor
	return pl
}

// ensureSurface returns the plot's tooltip surface, creating it on first use. It
// returns nil when the plot has no document.
func (b *Binder) ensureSurface() surface.Surface {
	if b.tip != nil {
		return b.tip
	}
	doc := b.plot.Document()
	if doc == nil {
		return nil
	}
	if s, ok := doc.Lookup(b.plot.ID()); ok {
		b.tip = s
		return s
	}
	s := doc.Create(b.plot.ID())
	s.Hide()
	if b.opts.DefaultTheme {
		theme := surface.DefaultTheme
		s.SetTheme(&theme)
	}
	b.tip = s
	return s
}
