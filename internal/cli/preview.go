package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hovertip/pkg/config"
	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/observability"
)

// previewCommand creates the preview command for the interactive terminal chart.
func (c *CLI) previewCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive terminal chart with a live tooltip",
		Long: `Interactive terminal chart with a live tooltip.

Move the pointer over a data point to show its tooltip. The chart has a time
x axis, so xDateFormat in the config file takes effect.

Without --config the tooltip is enabled with default options. With --watch
the config file is reloaded whenever it changes and the chart is rebuilt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && c.configPath == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--watch needs --config")
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if c.configPath == "" {
				cfg.Tooltip = true
			}
			return c.runPreview(cmd.Context(), cfg, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file on change")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, cfg *config.Config, watch bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stats := &tooltipStats{}
	observability.SetTooltipHooks(stats)
	defer observability.Reset()

	var reloads chan configMsg
	if watch {
		reloads = make(chan configMsg)
		go func() {
			err := config.Watch(ctx, c.configPath, func(cfg *config.Config, err error) {
				select {
				case reloads <- configMsg{cfg: cfg, err: err}:
				case <-ctx.Done():
				}
			})
			if err != nil && ctx.Err() == nil {
				c.Logger.Error("config watch stopped", "err", err)
			}
		}()
	}

	m := newPreviewModel(cfg, demoSeries(), stats, reloads)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
