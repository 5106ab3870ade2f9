package tooltip

import "github.com/matzehuels/hovertip/pkg/chart"

const (
	// Name is the plugin name and the key of its options in chart.Options.Plugins.
	Name = "tooltip"
	// Version is the plugin version reported in its descriptor.
	Version = "0.6.2"
)

// Plugin returns the chart plugin descriptor.
func Plugin() chart.Plugin {
	return chart.Plugin{
		Name:    Name,
		Version: Version,
		Options: DefaultOptions(),
		Init:    initPlot,
	}
}

func initPlot(p *chart.Plot) {
	b := NewBinder(p, optionsFor(p))
	p.OnBind(func(*chart.Plot) { b.Bind() })
	p.OnShutdown(func(*chart.Plot) { b.Shutdown() })
}

// optionsFor reads the tooltip options of p. Anything that is not an Options
// value leaves the tooltip disabled.
func optionsFor(p *chart.Plot) Options {
	v, _ := p.PluginOptions(Name)
	switch o := v.(type) {
	case Options:
		return o
	case *Options:
		if o != nil {
			return *o
		}
	}
	return Options{}
}
