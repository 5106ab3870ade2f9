package tooltip

import (
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
)

// HoverCallback runs after the tooltip for ctx has been shown on s.
type HoverCallback func(ctx *hover.Context, s surface.Surface)

// Options configures the tooltip of one chart.
type Options struct {
	// Enabled turns the tooltip on. Disabled tooltips never subscribe.
	Enabled bool `json:"-"`

	// Content is the template for every series without an override. The zero
	// Template means hover.DefaultContent.
	Content hover.Template `json:"content"`

	// XDateFormat and YDateFormat are strftime specs used for time-mode axes.
	// Empty means not configured.
	XDateFormat string `json:"xDateFormat"`
	YDateFormat string `json:"yDateFormat"`

	// Shifts is the gap between pointer and tooltip.
	Shifts placement.Offset `json:"shifts"`

	// DefaultTheme styles new surfaces with surface.DefaultTheme.
	DefaultTheme bool `json:"defaultTheme"`

	OnHover HoverCallback `json:"-"`
}

// DefaultOptions returns the plugin defaults. The tooltip is off until a
// chart enables it.
func DefaultOptions() Options {
	return Options{
		Content:      hover.Literal(hover.DefaultContent),
		Shifts:       placement.DefaultOffset,
		DefaultTheme: true,
	}
}

func (o Options) content() hover.Template {
	return o.Content.Or(hover.Literal(hover.DefaultContent))
}
