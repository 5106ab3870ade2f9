package chart

// Hook runs at a point in a plot's lifecycle.
type Hook func(p *Plot)

// Plugin describes an extension a Plot loads at construction time.
type Plugin struct {
	Name    string
	Version string
	// Options are the plugin defaults, used when the plot configures none.
	Options any
	// Init registers the plugin's hooks on p.
	Init func(p *Plot)
}

// Hooks are the lifecycle hook chains of a Plot.
type Hooks struct {
	BindEvents []Hook
	Shutdown   []Hook
}

// OnBind appends h to the bind chain.
func (p *Plot) OnBind(h Hook) { p.hooks.BindEvents = append(p.hooks.BindEvents, h) }

// OnShutdown appends h to the shutdown chain.
func (p *Plot) OnShutdown(h Hook) { p.hooks.Shutdown = append(p.hooks.Shutdown, h) }

// PluginOptions returns the options configured for the named plugin, falling
// back to the plugin's defaults.
func (p *Plot) PluginOptions(name string) (any, bool) {
	v, ok := p.pluginOpts[name]
	return v, ok
}

// Plugins returns the loaded plugin descriptors in load order.
func (p *Plot) Plugins() []Plugin {
	out := make([]Plugin, len(p.plugins))
	copy(out, p.plugins)
	return out
}
