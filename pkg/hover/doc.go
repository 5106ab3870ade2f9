// Package hover defines the value objects a chart host hands to the tooltip
// core when the pointer rests on a data point.
//
// A [Context] is built fresh for every hover notification and discarded once
// the tooltip text has been produced. Nothing in hovertip keeps a reference to
// it after the notification returns.
//
// # Values
//
// Data coordinates are heterogeneous: plain numbers, timestamps on time-mode
// axes, and categorical text. [Value] is a small tagged variant over the three:
//
//	hover.Number(3.14159)
//	hover.Time(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
//	hover.Text("Q3")
//
// # Templates
//
// A tooltip template is either a literal with placeholders or a generator
// callback. [Template] models both and is resolved once, at the entry of
// template.Format:
//
//	hover.Literal("%s | X: %x.2 | Y: %y")
//	hover.Generate(func(label string, x, y hover.Value) string {
//	    return label + " @ " + x.String()
//	})
package hover
