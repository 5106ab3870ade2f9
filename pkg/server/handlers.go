package server

import (
	"io"
	"net/http"

	"github.com/matzehuels/hovertip/pkg/buildinfo"
	"github.com/matzehuels/hovertip/pkg/chart"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
	"github.com/matzehuels/hovertip/pkg/template"
	"github.com/matzehuels/hovertip/pkg/tooltip"
)

// ThemeSelector is the CSS selector of the served theme rule.
const ThemeSelector = ".hovertip"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

// handleFormat runs a single point through a one-series chart so axis tick
// formatting matches what an embedded chart would show.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, r, err)
		return
	}

	p := chart.New(chart.Options{
		Series: []chart.Series{{
			Label:   req.Label,
			Percent: req.Percent,
			Data:    []chart.DataPoint{{X: req.X.Value, Y: req.Y.Value}},
		}},
		XAxis: req.XAxis.options(),
		YAxis: req.YAxis.options(),
	})

	text := template.Format(req.template(), p.Item(0, 0), template.Options{
		XDateFormat: req.XDateFormat,
		YDateFormat: req.YDateFormat,
		FormatDate:  p.FormatDate(),
	})
	writeJSON(w, http.StatusOK, formatResponse{Text: text})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, r, err)
		return
	}

	off := placement.DefaultOffset
	if req.Shifts != nil {
		off = *req.Shifts
	}
	pl := placement.Clamp(
		placement.Point{X: req.Pointer.X, Y: req.Pointer.Y},
		placement.Size{W: req.Size.W, H: req.Size.H},
		placement.Viewport{
			Width:   req.Viewport.Width,
			Height:  req.Viewport.Height,
			ScrollX: req.Viewport.ScrollX,
			ScrollY: req.Viewport.ScrollY,
		},
		off,
	)
	writeJSON(w, http.StatusOK, positionResponse{
		X:        pl.Point.X,
		Y:        pl.Point.Y,
		Anchor:   pointJSON{X: pl.Anchor.X, Y: pl.Anchor.Y},
		FlippedX: pl.FlippedX,
		FlippedY: pl.FlippedY,
	})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, surface.DefaultTheme.Rule(ThemeSelector)+"\n")
}

type pluginResponse struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	DefaultOptions struct {
		Tooltip     bool            `json:"tooltip"`
		TooltipOpts tooltip.Options `json:"tooltipOpts"`
	} `json:"defaultOptions"`
}

func (s *Server) handlePlugin(w http.ResponseWriter, r *http.Request) {
	pl := tooltip.Plugin()
	opts, _ := pl.Options.(tooltip.Options)

	var resp pluginResponse
	resp.Name = pl.Name
	resp.Version = pl.Version
	resp.DefaultOptions.Tooltip = opts.Enabled
	resp.DefaultOptions.TooltipOpts = opts
	writeJSON(w, http.StatusOK, resp)
}
