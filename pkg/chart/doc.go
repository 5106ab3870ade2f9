// Package chart is a small in-memory chart host: the part of a charting
// library that owns series data, axis options, plugins and the hover event
// streams a tooltip subscribes to.
//
// It does not draw anything. A renderer (the terminal preview, a test) owns
// the geometry and feeds pointer events in through [Plot.PointerMove] and
// [Plot.Hover]; plugins registered at construction time hook into
// [Plot.Bind] and [Plot.Shutdown].
//
// # Lifecycle
//
//	p := chart.New(opts, tooltip.Plugin())
//	p.Bind()          // plugins subscribe to hover and pointer-move
//	p.PointerMove(pos)
//	p.Hover(pos, p.Nearest(pos, 2, project))
//	p.Shutdown()      // plugins unsubscribe and release their surfaces
//
// A Plot is not safe for concurrent use. All dispatch is expected to happen
// on the embedding UI's event loop.
package chart
