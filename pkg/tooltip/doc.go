// Package tooltip shows a floating label next to the pointer while it rests on
// a data point of a chart.
//
// The package is a chart plugin. [Plugin] returns the descriptor a
// [chart.Plot] loads; on bind the plugin subscribes to the plot's hover and
// pointer-move streams, and on shutdown it unsubscribes and removes its
// surface from the document.
//
//	p := chart.New(chart.Options{
//	    Series:   series,
//	    Document: surface.NewLayer(),
//	    Plugins: map[string]any{
//	        tooltip.Name: tooltip.Options{Enabled: true, Content: hover.Literal("%s: %y.1")},
//	    },
//	}, tooltip.Plugin())
//	p.Bind()
//
// Text is produced by template.Format, placement by placement.Clamp. Each plot
// owns exactly one surface, keyed by the plot's ID.
package tooltip
