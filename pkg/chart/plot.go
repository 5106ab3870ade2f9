package chart

import (
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/hovertip/pkg/datefmt"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
)

// HoverFunc receives hover notifications. item is nil when the pointer is not
// over a data point.
type HoverFunc func(pos placement.Point, item *hover.Context)

// MoveFunc receives raw pointer movements.
type MoveFunc func(pos placement.Point)

// Plot is a chart instance.
type Plot struct {
	id   string
	opts Options

	plugins    []Plugin
	pluginOpts map[string]any
	hooks      Hooks

	hover []subscription[HoverFunc]
	move  []subscription[MoveFunc]
	subID int

	bound, shut bool
}

type subscription[F any] struct {
	id int
	fn F
}

// New creates a plot and initializes plugins in order.
func New(opts Options, plugins ...Plugin) *Plot {
	p := &Plot{
		id:         uuid.NewString(),
		opts:       opts,
		pluginOpts: make(map[string]any, len(plugins)),
	}
	for _, pl := range plugins {
		if v, ok := opts.Plugins[pl.Name]; ok {
			p.pluginOpts[pl.Name] = v
		} else {
			p.pluginOpts[pl.Name] = pl.Options
		}
		p.plugins = append(p.plugins, pl)
		if pl.Init != nil {
			pl.Init(p)
		}
	}
	return p
}

// ID is the unique identity of this chart instance.
func (p *Plot) ID() string { return p.id }

// Options returns the plot options.
func (p *Plot) Options() Options { return p.opts }

// Series returns the plotted series.
func (p *Plot) Series() []Series { return p.opts.Series }

// Viewport returns the visible window.
func (p *Plot) Viewport() placement.Viewport { return p.opts.Viewport }

// SetViewport updates the visible window, e.g. after a terminal resize.
func (p *Plot) SetViewport(vp placement.Viewport) { p.opts.Viewport = vp }

// Document returns the document plugins draw into.
func (p *Plot) Document() surface.Document { return p.opts.Document }

// FormatDate returns the host date utility.
func (p *Plot) FormatDate() datefmt.Func {
	if p.opts.FormatDate != nil {
		return p.opts.FormatDate
	}
	return datefmt.Format
}

// Bind runs the bind hook chain. Only the first call has an effect.
func (p *Plot) Bind() {
	if p.bound || p.shut {
		return
	}
	p.bound = true
	for _, h := range p.hooks.BindEvents {
		h(p)
	}
}

// Shutdown runs the shutdown hook chain. Only the first call has an effect.
func (p *Plot) Shutdown() {
	if p.shut {
		return
	}
	p.shut = true
	for _, h := range p.hooks.Shutdown {
		h(p)
	}
}

// =============================================================================
// Event streams
// =============================================================================

// OnHover subscribes fn to hover notifications. The returned function
// unsubscribes it.
func (p *Plot) OnHover(fn HoverFunc) (unsubscribe func()) {
	id := p.nextSubID()
	p.hover = append(p.hover, subscription[HoverFunc]{id: id, fn: fn})
	return func() { p.hover = without(p.hover, id) }
}

// OnPointerMove subscribes fn to raw pointer movements. The returned function
// unsubscribes it.
func (p *Plot) OnPointerMove(fn MoveFunc) (unsubscribe func()) {
	id := p.nextSubID()
	p.move = append(p.move, subscription[MoveFunc]{id: id, fn: fn})
	return func() { p.move = without(p.move, id) }
}

// Hover delivers a hover notification to every subscriber.
func (p *Plot) Hover(pos placement.Point, item *hover.Context) {
	for _, s := range p.hover {
		s.fn(pos, item)
	}
}

// PointerMove delivers a pointer movement to every subscriber.
func (p *Plot) PointerMove(pos placement.Point) {
	for _, s := range p.move {
		s.fn(pos)
	}
}

// Subscribers reports the number of hover and pointer-move subscribers.
func (p *Plot) Subscribers() (hover, move int) { return len(p.hover), len(p.move) }

func (p *Plot) nextSubID() int {
	p.subID++
	return p.subID
}

func without[F any](subs []subscription[F], id int) []subscription[F] {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Items
// =============================================================================

// Item builds the hover context for data point index of series. It returns
// nil when either index is out of range.
func (p *Plot) Item(series, index int) *hover.Context {
	if series < 0 || series >= len(p.opts.Series) {
		return nil
	}
	s := p.opts.Series[series]
	if index < 0 || index >= len(s.Data) {
		return nil
	}
	pt := s.Data[index]
	return &hover.Context{
		Label:       s.Label,
		Percent:     s.Percent,
		X:           pt.X,
		Y:           pt.Y,
		XAxis:       p.axis("x", p.opts.XAxis),
		YAxis:       p.axis("y", p.opts.YAxis),
		Template:    s.Tooltip,
		SeriesIndex: series,
		DataIndex:   index,
	}
}

// Projection maps a data point to document coordinates.
type Projection func(pt DataPoint) placement.Point

// Nearest returns the context of the data point closest to pos within radius,
// or nil when there is none. Ties go to the earlier series and point.
func (p *Plot) Nearest(pos placement.Point, radius float64, project Projection) *hover.Context {
	if project == nil {
		return nil
	}
	best, bs, bi := math.Inf(1), -1, -1
	for si, s := range p.opts.Series {
		for di, pt := range s.Data {
			at := project(pt)
			d := math.Hypot(at.X-pos.X, at.Y-pos.Y)
			if d <= radius && d < best {
				best, bs, bi = d, si, di
			}
		}
	}
	if bs < 0 {
		return nil
	}
	return p.Item(bs, bi)
}

func (p *Plot) axis(name string, o AxisOptions) *hover.Axis {
	a := &hover.Axis{Name: name, TimeMode: o.Mode == ModeTime}
	if o.TickFormatter != nil {
		a.TickFormatter = o.TickFormatter
	} else {
		a.TickFormatter = p.defaultTickFormatter(o)
		a.DefaultTicks = true
	}
	return a
}

// defaultTickFormatter labels ticks the way the host does when an axis
// configures no formatter: dates on time-mode axes, fixed decimals when
// TickDecimals is set, the shortest decimal form otherwise.
func (p *Plot) defaultTickFormatter(o AxisOptions) hover.TickFormatter {
	formatDate := p.FormatDate()
	spec := o.TimeFormat
	if spec == "" {
		spec = datefmt.DefaultSpec
	}
	return func(v hover.Value, axis *hover.Axis) string {
		if axis.IsTimeMode() {
			if t, ok := v.AsTime(); ok {
				return formatDate(t, spec)
			}
		}
		if o.TickDecimals != nil && v.IsNumber() {
			return v.Fixed(*o.TickDecimals)
		}
		return v.String()
	}
}
