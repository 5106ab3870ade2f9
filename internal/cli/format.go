package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hovertip/pkg/chart"
	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/observability"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
	"github.com/matzehuels/hovertip/pkg/tooltip"
)

// formatOptions holds the flags of the format command.
type formatOptions struct {
	label        string
	percent      float64
	x, y         string
	xTime, yTime bool
	xDate, yDate string
	tickDecimals int
}

// formatCommand creates the format command for rendering a template.
func (c *CLI) formatCommand() *cobra.Command {
	var opts formatOptions

	cmd := &cobra.Command{
		Use:   "format [template]",
		Short: "Render a tooltip template for a data point",
		Long: `Render a tooltip template for a data point.

Placeholders:
  %s      series label
  %x, %y  data values, formatted by the axis
  %x.2    data value with a fixed number of decimals
  %p      percentage of the whole, for pie-like series

Values are numbers, RFC 3339 timestamps, or categorical text. Without a
template argument the configured content is used.`,
		Example: `  hovertip format --label A --x 3.14159 --y 7
  hovertip format '%s: %y.1 at %x' --label load --x 2024-03-01T12:00:00Z --x-time --x-date '%H:%M' --y 0.734`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tmpl := hover.Literal(cfg.TooltipOpts.Content)
			if len(args) == 1 {
				if err := errors.ValidateTemplate(args[0]); err != nil {
					return err
				}
				tmpl = hover.Literal(args[0])
			}
			if !cmd.Flags().Changed("x-date") {
				opts.xDate = cfg.TooltipOpts.XDateFormat
			}
			if !cmd.Flags().Changed("y-date") {
				opts.yDate = cfg.TooltipOpts.YDateFormat
			}
			observability.SetTooltipHooks(&tooltipLog{logger: loggerFromContext(cmd.Context())})
			defer observability.Reset()

			text, err := runFormat(tmpl, opts, cmd.Flags().Changed("label"), cmd.Flags().Changed("percent"), cmd.Flags().Changed("tick-decimals"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "series label")
	cmd.Flags().Float64VarP(&opts.percent, "percent", "p", 0, "series percentage")
	cmd.Flags().StringVarP(&opts.x, "x", "x", "", "x value")
	cmd.Flags().StringVarP(&opts.y, "y", "y", "", "y value")
	cmd.Flags().BoolVar(&opts.xTime, "x-time", false, "x axis is in time mode")
	cmd.Flags().BoolVar(&opts.yTime, "y-time", false, "y axis is in time mode")
	cmd.Flags().StringVar(&opts.xDate, "x-date", "", "strftime format for time-mode x values")
	cmd.Flags().StringVar(&opts.yDate, "y-date", "", "strftime format for time-mode y values")
	cmd.Flags().IntVar(&opts.tickDecimals, "tick-decimals", 0, "fixed decimals of the default tick formatter")

	return cmd
}

// runFormat builds a one-point chart from opts, hovers the point with the
// tooltip plugin bound, and returns the text the tooltip shows.
func runFormat(tmpl hover.Template, opts formatOptions, hasLabel, hasPercent, hasDecimals bool) (string, error) {
	for _, spec := range []string{opts.xDate, opts.yDate} {
		if err := errors.ValidateDateFormat(spec); err != nil {
			return "", err
		}
	}

	series := chart.Series{
		Data: []chart.DataPoint{{X: hover.Parse(opts.x), Y: hover.Parse(opts.y)}},
	}
	if hasLabel {
		series.Label = hover.StringPtr(opts.label)
	}
	if hasPercent {
		series.Percent = hover.FloatPtr(opts.percent)
	}

	xAxis, yAxis := chart.AxisOptions{}, chart.AxisOptions{}
	if opts.xTime {
		xAxis.Mode = chart.ModeTime
	}
	if opts.yTime {
		yAxis.Mode = chart.ModeTime
	}
	if hasDecimals {
		if opts.tickDecimals < 0 || opts.tickDecimals > chart.MaxTickDecimals {
			return "", errors.New(errors.ErrCodeInvalidInput, "tick decimals must be between 0 and %d", chart.MaxTickDecimals)
		}
		xAxis.TickDecimals = &opts.tickDecimals
		yAxis.TickDecimals = &opts.tickDecimals
	}

	layer := surface.NewLayer()
	p := chart.New(chart.Options{
		Series:   []chart.Series{series},
		XAxis:    xAxis,
		YAxis:    yAxis,
		Viewport: placement.Viewport{Width: 80, Height: 24},
		Document: layer,
		Plugins: map[string]any{tooltip.Name: tooltip.Options{
			Enabled:     true,
			Content:     tmpl,
			XDateFormat: opts.xDate,
			YDateFormat: opts.yDate,
			Shifts:      placement.DefaultOffset,
		}},
	}, tooltip.Plugin())
	p.Bind()
	defer p.Shutdown()

	p.Hover(placement.Point{}, p.Item(0, 0))
	tip, ok := layer.Lookup(p.ID())
	if !ok {
		return "", errors.New(errors.ErrCodeInternal, "tooltip surface missing")
	}
	return tip.Content(), nil
}
