package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hovertip/pkg/chart"
	"github.com/matzehuels/hovertip/pkg/config"
	"github.com/matzehuels/hovertip/pkg/errors"
	"github.com/matzehuels/hovertip/pkg/hover"
	"github.com/matzehuels/hovertip/pkg/placement"
	"github.com/matzehuels/hovertip/pkg/surface"
	"github.com/matzehuels/hovertip/pkg/tooltip"
)

// Preview styles
var (
	seriesStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorCyan),
		lipgloss.NewStyle().Foreground(colorYellow),
		lipgloss.NewStyle().Foreground(colorGreen),
	}
	seriesMarkers = []string{"●", "◆", "▲"}
	axisStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	// hitRadius is how close, in cells, the pointer must be to a point.
	hitRadius = 1.5

	// Rows above and below the plot area.
	headerRows = 1
	footerRows = 2
)

// =============================================================================
// previewModel - Terminal chart with a live tooltip
// =============================================================================

// configMsg carries a reloaded configuration into the update loop.
type configMsg struct {
	cfg *config.Config
	err error
}

// previewModel is the bubbletea model for the interactive preview. Mouse
// events are fed to a chart.Plot whose tooltip plugin draws into a
// surface.Layer composed over the rendered chart.
type previewModel struct {
	cfg    *config.Config
	series []chart.Series
	plot   *chart.Plot
	layer  *surface.Layer
	stats  *tooltipStats

	width, height int
	minX, maxX    float64
	minY, maxY    float64

	reloads <-chan configMsg
	err     error
}

// newPreviewModel creates a preview over series using the tooltip settings
// of cfg. reloads may be nil.
func newPreviewModel(cfg *config.Config, series []chart.Series, stats *tooltipStats, reloads <-chan configMsg) previewModel {
	m := previewModel{
		cfg:     cfg,
		series:  series,
		layer:   surface.NewLayer(),
		stats:   stats,
		width:   80,
		height:  24,
		reloads: reloads,
	}
	m.minX, m.maxX, m.minY, m.maxY = bounds(series)
	m.rebuild()
	return m
}

// rebuild replaces the plot, shutting down the previous one so its tooltip
// surface leaves the layer.
func (m *previewModel) rebuild() {
	if m.plot != nil {
		m.plot.Shutdown()
	}
	m.plot = chart.New(chart.Options{
		Series:   m.series,
		XAxis:    chart.AxisOptions{Mode: chart.ModeTime, TimeFormat: "%H:%M"},
		YAxis:    chart.AxisOptions{},
		Viewport: placement.Viewport{Width: float64(m.width), Height: float64(m.height)},
		Document: m.layer,
		Plugins:  map[string]any{tooltip.Name: m.cfg.TooltipOptions()},
	}, tooltip.Plugin())
	m.plot.Bind()
}

func (m previewModel) Init() tea.Cmd {
	return waitForConfig(m.reloads)
}

func waitForConfig(ch <-chan configMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.plot.Shutdown()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.plot.SetViewport(placement.Viewport{Width: float64(msg.Width), Height: float64(msg.Height)})
	case tea.MouseMsg:
		pos := placement.Point{X: float64(msg.X), Y: float64(msg.Y)}
		// Content first, then the position for the same movement.
		m.plot.Hover(pos, m.plot.Nearest(pos, hitRadius, m.project))
		m.plot.PointerMove(pos)
	case configMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.cfg = msg.cfg
			m.rebuild()
		}
		return m, waitForConfig(m.reloads)
	}
	return m, nil
}

func (m previewModel) View() string {
	w, h := m.plotSize()
	grid := make([][]string, h)
	for r := range grid {
		grid[r] = make([]string, w)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for c := range grid[h-1] {
		grid[h-1][c] = axisStyle.Render("─")
	}
	for si, s := range m.series {
		style := seriesStyles[si%len(seriesStyles)]
		marker := style.Render(seriesMarkers[si%len(seriesMarkers)])
		for _, pt := range s.Data {
			at := m.project(pt)
			r, c := int(at.Y)-headerRows, int(at.X)
			if r >= 0 && r < h && c >= 0 && c < w {
				grid[r][c] = marker
			}
		}
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("hovertip preview"))
	b.WriteString(StyleDim.Render("  move the pointer over a point · q quit"))
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(m.legend())
	b.WriteString("\n")
	b.WriteString(m.status())

	return m.layer.Compose(b.String())
}

func (m previewModel) legend() string {
	parts := make([]string, len(m.series))
	for i, s := range m.series {
		style := seriesStyles[i%len(seriesStyles)]
		label := "series " + fmt.Sprint(i)
		if s.Label != nil {
			label = *s.Label
		}
		parts[i] = style.Render(seriesMarkers[i%len(seriesMarkers)]) + " " + label
	}
	return strings.Join(parts, "   ")
}

func (m previewModel) status() string {
	if m.err != nil {
		return styleIconError.Render(iconError) + " " + errors.UserMessage(m.err)
	}
	if m.stats == nil {
		return ""
	}
	line := StyleDim.Render(fmt.Sprintf("shown %d · hidden %d · moves %d", m.stats.shows, m.stats.hides, m.stats.moves))
	if m.stats.last != "" {
		line += StyleDim.Render(" · last ") + StyleValue.Render(m.stats.last)
	}
	return line
}

// plotSize is the size of the plot area in cells.
func (m previewModel) plotSize() (w, h int) {
	w = max(m.width, 10)
	h = max(m.height-headerRows-footerRows, 3)
	return w, h
}

// project maps a data point to screen cells. The bottom row of the plot
// area is the axis line, so points use the rows above it.
func (m previewModel) project(pt chart.DataPoint) placement.Point {
	w, h := m.plotSize()
	fx := scale(pt.X.Float(), m.minX, m.maxX)
	fy := scale(pt.Y.Float(), m.minY, m.maxY)
	return placement.Point{
		X: math.Round(fx * float64(w-1)),
		Y: float64(headerRows) + math.Round((1-fy)*float64(h-2)),
	}
}

func scale(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func bounds(series []chart.Series) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range series {
		for _, pt := range s.Data {
			x, y := pt.X.Float(), pt.Y.Float()
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 1, 0, 1
	}
	return minX, maxX, minY, maxY
}

// demoSeries is a day of hourly samples for two series.
func demoSeries() []chart.Series {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	requests := make([]chart.DataPoint, 24)
	errs := make([]chart.DataPoint, 24)
	for i := range requests {
		at := hover.Time(start.Add(time.Duration(i) * time.Hour))
		requests[i] = chart.DataPoint{X: at, Y: hover.Number(math.Round((100+40*math.Sin(float64(i)/3))*10) / 10)}
		errs[i] = chart.DataPoint{X: at, Y: hover.Number(math.Round((20+12*math.Cos(float64(i)/2))*10) / 10)}
	}
	return []chart.Series{
		{Label: hover.StringPtr("requests"), Data: requests},
		{Label: hover.StringPtr("errors"), Data: errs},
	}
}
