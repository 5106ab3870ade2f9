package chart

import (
	"github.com/matzehuels/hovertip/pkg/datefmt"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
)

const (
	// ModeTime marks a time-mode axis.
	ModeTime = "time"

	// MaxTickDecimals bounds AxisOptions.TickDecimals.
	MaxTickDecimals = 20
)

// DataPoint is one (x, y) pair of a series.
type DataPoint struct {
	X, Y hover.Value
}

// XY is shorthand for a numeric data point.
func XY(x, y float64) DataPoint {
	return DataPoint{X: hover.Number(x), Y: hover.Number(y)}
}

// Series is one plotted data set.
type Series struct {
	// Label is nil for unlabeled series.
	Label *string
	Data  []DataPoint
	// Percent is the share of the whole for part-of-whole charts.
	Percent *float64
	// Tooltip replaces the plot-wide tooltip template for this series.
	Tooltip hover.Template
}

// AxisOptions configures one axis.
type AxisOptions struct {
	// Mode is "" for numeric axes or ModeTime.
	Mode string
	// TickDecimals fixes the number of decimals in tick labels, at most
	// MaxTickDecimals.
	TickDecimals *int
	// TimeFormat is the strftime spec for time-mode tick labels.
	TimeFormat string
	// TickFormatter replaces the default tick formatter.
	TickFormatter hover.TickFormatter
}

// Options configures a Plot.
type Options struct {
	Series []Series
	XAxis  AxisOptions
	YAxis  AxisOptions

	// Viewport is the visible window, in the document's units.
	Viewport placement.Viewport
	// Document hosts plugin surfaces. Nil means plugins have nowhere to draw.
	Document surface.Document
	// FormatDate is the date utility handed to plugins. Nil uses datefmt.Format.
	FormatDate datefmt.Func

	// Plugins holds per-plugin options keyed by plugin name. Plugins without
	// an entry get their defaults.
	Plugins map[string]any
}
