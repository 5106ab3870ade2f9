package hover

// TickFormatter turns a raw axis value into its label text.
type TickFormatter func(v Value, axis *Axis) string

// Axis is the per-axis information a hovered point carries.
type Axis struct {
	// Name is "x" or "y".
	Name string
	// TimeMode marks an axis whose values are timestamps.
	TimeMode bool
	// TickFormatter is nil when the axis supplies none.
	TickFormatter TickFormatter
	// DefaultTicks marks a TickFormatter the host installed on its own
	// rather than one the chart configured.
	DefaultTicks bool
}

// Format runs the axis tick formatter. ok is false when a is nil or has no
// formatter.
func (a *Axis) Format(v Value) (text string, ok bool) {
	if a == nil || a.TickFormatter == nil {
		return "", false
	}
	return a.TickFormatter(v, a), true
}

// CustomTicks reports whether a carries a tick formatter the chart
// configured explicitly. Such a formatter owns the placeholder, precision
// suffix included.
func (a *Axis) CustomTicks() bool {
	return a != nil && a.TickFormatter != nil && !a.DefaultTicks
}

// IsTimeMode reports whether a is a time-mode axis. A nil axis is not.
func (a *Axis) IsTimeMode() bool {
	return a != nil && a.TimeMode
}

// Context describes one hovered data point.
type Context struct {
	// Label is the series label, nil when the series has none.
	Label *string
	// Percent is set only for part-of-whole series such as pie slices.
	Percent *float64

	X, Y         Value
	XAxis, YAxis *Axis

	// Template overrides the global tooltip template for this series.
	// The zero Template means no override.
	Template Template

	SeriesIndex int
	DataIndex   int
}

// LabelText returns the series label or "" when there is none.
func (c *Context) LabelText() string {
	if c == nil || c.Label == nil {
		return ""
	}
	return *c.Label
}

// StringPtr is a convenience for filling optional string fields.
func StringPtr(s string) *string { return &s }

// FloatPtr is a convenience for filling optional float fields.
func FloatPtr(f float64) *float64 { return &f }
