package cli

import (
	"context"
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hovertip/pkg/observability"
	"github.com/matzehuels/hovertip/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatter and positioner over HTTP",
		Long: `Serve the formatter and positioner over HTTP.

Endpoints:
  POST /v1/format     format a template for a data point
  POST /v1/position   place a tooltip inside a viewport
  GET  /v1/theme      default tooltip theme as CSS
  GET  /v1/plugin     plugin descriptor and default options
  GET  /healthz       liveness

Requests are logged at debug level; use --verbose to see them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", defaultAddr, "listen address")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	observability.SetHTTPHooks(&logHooks{logger: logger})
	defer observability.Reset()

	prog := newProgress(logger)
	err := server.New().ListenAndServe(ctx, addr, func(a net.Addr) {
		printSuccess("Listening on %s", StyleLink.Render("http://"+a.String()))
	})
	if err != nil {
		return err
	}
	prog.done("Server stopped")
	return nil
}
