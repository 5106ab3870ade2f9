// Package pkg provides the libraries behind hovertip, the floating label a
// chart shows next to the pointer while it rests on a data point.
//
// # Overview
//
// Two algorithms do the real work. The template formatter turns a small
// placeholder language into text for one hovered point, and the positioner
// keeps the resulting box inside the visible window. Everything else wires
// those two into a chart's event streams:
//
//  1. [hover] - Value objects: hovered point, axes, templates
//  2. [template] - The formatter
//  3. [placement] - The positioner
//  4. [tooltip] - The chart plugin that binds both to hover events
//  5. [chart] - An in-memory chart host the plugin runs against
//
// # Architecture
//
// The flow of one pointer movement:
//
//	pointer event
//	     ↓
//	[chart] Plot.Hover / Plot.PointerMove
//	     ↓
//	[tooltip] Binder ──→ [template] Format (hover with item)
//	     ↓
//	[placement] Clamp
//	     ↓
//	[surface] Surface.MoveTo / Show / Hide
//
// # Quick Start
//
//	layer := surface.NewLayer()
//	p := chart.New(chart.Options{
//	    Series:   []chart.Series{{Label: hover.StringPtr("A"), Data: []chart.DataPoint{chart.XY(3.14159, 7)}}},
//	    Viewport: placement.Viewport{Width: 80, Height: 24},
//	    Document: layer,
//	    Plugins:  map[string]any{tooltip.Name: tooltip.Options{Enabled: true}},
//	}, tooltip.Plugin())
//	p.Bind()
//	p.Hover(placement.Point{X: 10, Y: 5}, p.Item(0, 0))
//	fmt.Println(layer.Compose(screen))
//
// # Main Packages
//
// ## Core
//
// [hover] - The hovered point ([hover.Context]), its heterogeneous values
// ([hover.Value]: number, time, text) and the [hover.Template] variant that is
// either a literal or a generator callback.
//
// [template] - Resolves %s, %p, %x, %y and their precision forms (%x.2) in a
// fixed order: percent, label, dates on time axes, precision, axis tick
// formatters. Unresolvable placeholders stay verbatim.
//
// [placement] - Puts the tooltip at pointer + offset and flips it to the
// other side of the pointer on axes where it would overflow the far edge.
//
// ## Plugin and Host
//
// [tooltip] - The plugin: options, lifecycle binder and descriptor.
//
// [chart] - Series, axes, plugins, hook chains and hover streams.
//
// [surface] - The element a tooltip is drawn into, its default theme, and a
// terminal document ([surface.Layer]) built on lipgloss.
//
// [datefmt] - strftime date formatting for time-mode axes.
//
// ## Infrastructure
//
// [config] - TOML configuration with defaults, validation and file watching.
//
// [server] - HTTP JSON API over the formatter and positioner.
//
// [errors] - Coded errors shared by config, server and CLI.
//
// [observability] - Hooks for tooltip lifecycle and HTTP events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/template/...   # Specific package
//	go test -run Example ./...   # Examples only
//
// [hover]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/hover
// [template]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/template
// [placement]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/placement
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/tooltip
// [chart]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/chart
// [surface]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/surface
// [datefmt]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/datefmt
// [config]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/buildinfo
// [hover.Context]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/hover#Context
// [hover.Value]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/hover#Value
// [hover.Template]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/hover#Template
// [surface.Layer]: https://pkg.go.dev/github.com/matzehuels/hovertip/pkg/surface#Layer
package pkg
