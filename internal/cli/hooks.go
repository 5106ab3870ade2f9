package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hovertip/pkg/observability"
)

// logHooks reports HTTP traffic to the CLI logger.
type logHooks struct {
	logger *log.Logger
}

var _ observability.HTTPHooks = (*logHooks)(nil)

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "err", err)
}

// tooltipLog reports tooltip lifecycle events to the CLI logger at debug
// level.
type tooltipLog struct {
	logger *log.Logger
}

var _ observability.TooltipHooks = (*tooltipLog)(nil)

func (h *tooltipLog) OnBind(chartID string) {
	h.logger.Debug("tooltip bound", "chart", chartID)
}

func (h *tooltipLog) OnShutdown(chartID string) {
	h.logger.Debug("tooltip shut down", "chart", chartID)
}

func (h *tooltipLog) OnShow(chartID, text string) {
	h.logger.Debug("tooltip shown", "chart", chartID, "text", text)
}

func (h *tooltipLog) OnHide(chartID string) {
	h.logger.Debug("tooltip hidden", "chart", chartID)
}

func (h *tooltipLog) OnMove(chartID string, x, y float64) {
	h.logger.Debug("tooltip moved", "chart", chartID, "x", x, "y", y)
}

// tooltipStats counts tooltip events for the preview status line. The
// preview runs everything on the bubbletea update loop, so no locking.
type tooltipStats struct {
	observability.NoopTooltipHooks
	shows, hides, moves int
	// last is the most recently shown text.
	last string
}

var _ observability.TooltipHooks = (*tooltipStats)(nil)

func (s *tooltipStats) OnShow(_ string, text string) {
	s.shows++
	s.last = text
}

func (s *tooltipStats) OnHide(string) { s.hides++ }

func (s *tooltipStats) OnMove(string, float64, float64) { s.moves++ }
