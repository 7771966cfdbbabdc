// Package viz renders comparison charts for blocking-probability sweeps.
package viz

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// DataPoint is a single plot point. X is the offered load (or any numeric
// axis), Y the value.
type DataPoint struct {
	X float64
	Y float64
}

// DataSeries is a named sequence of points, e.g. the analytical curve or
// the simulated estimates.
type DataSeries struct {
	Name   string
	Points []DataPoint
}

// Plotter renders one or more series into a chart document.
type Plotter interface {
	Generate(series []DataSeries, title, xLabel, yLabel string) (string, error)
}

// PlotMetadata contains chart labels and title.
type PlotMetadata struct {
	XLabel string `json:"xLabel,omitempty"`
	YLabel string `json:"yLabel,omitempty"`
	Title  string `json:"title,omitempty"`
}

// PlotConfig holds styling and dimension configuration.
type PlotConfig struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	GridColor    string
	TextColor    string
	YAxisMode    YAxisMode
	Colors       []string // Palette for multi-series plots
}

// TemplateData contains all data needed for SVG template rendering.
type TemplateData struct {
	Config      PlotConfig
	Metadata    PlotMetadata
	InnerWidth  int
	InnerHeight int
	XTicks      []XTick
	YTicks      []YTick
	GridLines   []GridLine
	SeriesPaths []SeriesPath
	LegendItems []LegendItem
}

// Helper structs for template rendering
type XTick struct {
	X, Y  int
	Label string
}
type YTick struct {
	X, Y  int
	Label string
}
type GridLine struct{ X1, Y1, X2, Y2 int }
type SeriesPath struct{ Path, Color string }
type LegendItem struct {
	Name, Color string
	X, Y        int
}

// SVG template with multi-series and legend support.
const svgTemplate = `<svg width="{{.Config.Width}}" height="{{.Config.Height}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <style>
      .axis { font: 12px sans-serif; fill: {{.Config.TextColor}}; }
      .axis path, .axis line { fill: none; stroke: {{.Config.TextColor}}; shape-rendering: crispEdges; }
      .grid-line { stroke: {{.Config.GridColor}}; stroke-width: 0.5px; }
      .title { font: bold 16px sans-serif; text-anchor: middle; fill: {{.Config.TextColor}}; }
      .axis-label { font: 12px sans-serif; text-anchor: middle; fill: {{.Config.TextColor}}; }
      .legend { font: 12px sans-serif; fill: {{.Config.TextColor}}; }
    </style>
  </defs>

  {{if .Metadata.Title}}
  <text class="title" x="{{div .Config.Width 2}}" y="20">{{.Metadata.Title}}</text>
  {{end}}

  <g transform="translate({{.Config.MarginLeft}},{{.Config.MarginTop}})">
    <!-- Grid Lines -->
    {{range .GridLines}}<line class="grid-line" x1="{{.X1}}" x2="{{.X2}}" y1="{{.Y1}}" y2="{{.Y2}}"></line>{{end}}

    <!-- X Axis -->
    <g class="axis" transform="translate(0,{{.InnerHeight}})">
      {{range .XTicks}}<line x1="{{.X}}" x2="{{.X}}" y1="0" y2="6"></line><text x="{{.X}}" y="20" text-anchor="middle">{{.Label}}</text>{{end}}
      <path d="M0,0H{{$.InnerWidth}}"></path>
      {{if .Metadata.XLabel}}<text class="axis-label" x="{{div .InnerWidth 2}}" y="35">{{.Metadata.XLabel}}</text>{{end}}
    </g>

    <!-- Y Axis -->
    <g class="axis">
      {{range .YTicks}}<line x1="0" x2="-6" y1="{{.Y}}" y2="{{.Y}}"></line><text x="-10" y="{{add .Y 4}}" text-anchor="end">{{.Label}}</text>{{end}}
      <path d="M0,0V{{$.InnerHeight}}"></path>
      {{if .Metadata.YLabel}}<text class="axis-label" transform="rotate(-90)" x="{{neg (div .InnerHeight 2)}}" y="-50">{{.Metadata.YLabel}}</text>{{end}}
    </g>

    <!-- Data Lines (Multi-series) -->
    {{range .SeriesPaths}}
    <path fill="none" stroke="{{.Color}}" stroke-width="2px" d="{{.Path}}"></path>
    {{end}}
  </g>

  <!-- Legend -->
  <g class="legend" transform="translate({{add (add .Config.MarginLeft .InnerWidth) -100}}, {{.Config.MarginTop}})">
    {{range .LegendItems}}
    <rect x="0" y="{{.Y}}" width="12" height="12" fill="{{.Color}}"></rect>
    <text x="20" y="{{add .Y 10}}">{{.Name}}</text>
    {{end}}
  </g>
</svg>`

// SVGPlotter implements the Plotter interface to generate SVG charts.
type SVGPlotter struct {
	config   PlotConfig
	template *template.Template
}

func NewSVGPlotter(config PlotConfig) *SVGPlotter {
	tmpl := template.Must(template.New("svg").Funcs(template.FuncMap{
		"div": func(a, b int) int { return a / b },
		"add": func(a, b int) int { return a + b },
		"neg": func(a int) int { return -a },
	}).Parse(svgTemplate))
	return &SVGPlotter{config: config, template: tmpl}
}

// DefaultPlotConfig returns sensible defaults.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Width: 800, Height: 400, MarginTop: 40, MarginRight: 120,
		MarginBottom: 50, MarginLeft: 60, GridColor: "#e5e7eb", TextColor: "#000000",
		YAxisMode: YAxisAuto,
		Colors:    []string{"#3b82f6", "#ef4444", "#10b981", "#f97316", "#8b5cf6", "#ec4899"},
	}
}

// Generate creates an SVG string from a multi-series dataset.
func (p *SVGPlotter) Generate(series []DataSeries, title, xLabel, yLabel string) (string, error) {
	metadata := PlotMetadata{Title: title, XLabel: xLabel, YLabel: yLabel}
	if len(series) == 0 {
		return p.generateEmptyChart(metadata)
	}

	innerWidth := p.config.Width - p.config.MarginLeft - p.config.MarginRight
	innerHeight := p.config.Height - p.config.MarginTop - p.config.MarginBottom

	xExtent, yExtent := findMultiSeriesExtents(series)
	finalYExtent := adjustValueExtent(yExtent, p.config.YAxisMode)
	xScale := linearScale{domain: xExtent, rangePx: [2]int{0, innerWidth}}
	yScale := linearScale{domain: finalYExtent, rangePx: [2]int{innerHeight, 0}}

	seriesPaths := make([]SeriesPath, len(series))
	legendItems := make([]LegendItem, len(series))
	for i, s := range series {
		color := p.config.Colors[i%len(p.config.Colors)]
		seriesPaths[i] = SeriesPath{
			Path:  generateLinePath(s.Points, xScale, yScale),
			Color: color,
		}
		legendItems[i] = LegendItem{Name: s.Name, Color: color, Y: i * 20}
	}

	templateData := TemplateData{
		Config: p.config, Metadata: metadata, InnerWidth: innerWidth, InnerHeight: innerHeight,
		XTicks: p.generateXTicks(xScale), YTicks: p.generateYTicks(yScale),
		GridLines:   p.generateGridLines(yScale, innerWidth),
		SeriesPaths: seriesPaths, LegendItems: legendItems,
	}

	var result strings.Builder
	err := p.template.Execute(&result, templateData)
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>" + result.String(), err
}

func (p *SVGPlotter) generateEmptyChart(metadata PlotMetadata) (string, error) {
	templateData := TemplateData{
		Config: p.config, Metadata: metadata,
		InnerWidth:  p.config.Width - p.config.MarginLeft - p.config.MarginRight,
		InnerHeight: p.config.Height - p.config.MarginTop - p.config.MarginBottom,
	}
	var result strings.Builder
	err := p.template.Execute(&result, templateData)
	return result.String(), err
}

// --- Scales and path generation ---

// linearScale maps a float64 domain onto pixel coordinates. Both axes are
// numeric here; the X axis carries offered load, not time.
type linearScale struct {
	domain  [2]float64
	rangePx [2]int
}

func (ls linearScale) scale(v float64) int {
	d := ls.domain[1] - ls.domain[0]
	if d == 0 {
		return ls.rangePx[0]
	}
	r := (v - ls.domain[0]) / d
	return ls.rangePx[0] + int(r*float64(ls.rangePx[1]-ls.rangePx[0]))
}

func findMultiSeriesExtents(series []DataSeries) (x, y [2]float64) {
	x = [2]float64{math.Inf(1), math.Inf(-1)}
	y = [2]float64{math.Inf(1), math.Inf(-1)}
	for _, s := range series {
		for _, pt := range s.Points {
			if pt.X < x[0] {
				x[0] = pt.X
			}
			if pt.X > x[1] {
				x[1] = pt.X
			}
			if pt.Y < y[0] {
				y[0] = pt.Y
			}
			if pt.Y > y[1] {
				y[1] = pt.Y
			}
		}
	}
	if x[0] > x[1] {
		x = [2]float64{0, 1}
	}
	if y[0] > y[1] {
		y = [2]float64{0, 1}
	}
	return x, y
}

func generateLinePath(data []DataPoint, xs, ys linearScale) string {
	if len(data) < 2 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M")
	for i, pt := range data {
		x, y := xs.scale(pt.X), ys.scale(pt.Y)
		if i == 0 {
			b.WriteString(fmt.Sprintf("%d,%d", x, y))
		} else {
			b.WriteString(fmt.Sprintf(" L%d,%d", x, y))
		}
	}
	return b.String()
}

func (p *SVGPlotter) generateXTicks(xs linearScale) []XTick {
	var ticks []XTick
	valTicks := generateValueTicks(xs.domain[0], xs.domain[1], 8)
	prec := calculateOptimalPrecision(valTicks)
	for _, tick := range valTicks {
		ticks = append(ticks, XTick{X: xs.scale(tick), Label: formatValue(tick, prec)})
	}
	return ticks
}

func (p *SVGPlotter) generateYTicks(ys linearScale) []YTick {
	var ticks []YTick
	valTicks := generateValueTicks(ys.domain[0], ys.domain[1], 6)
	prec := calculateOptimalPrecision(valTicks)
	for _, tick := range valTicks {
		ticks = append(ticks, YTick{Y: ys.scale(tick), Label: formatValue(tick, prec)})
	}
	return ticks
}

func (p *SVGPlotter) generateGridLines(ys linearScale, w int) []GridLine {
	var lines []GridLine
	for _, tick := range generateValueTicks(ys.domain[0], ys.domain[1], 6) {
		y := ys.scale(tick)
		lines = append(lines, GridLine{0, y, w, y})
	}
	return lines
}

// --- Value formatting and scaling helpers ---

type YAxisMode int

const (
	YAxisAuto YAxisMode = iota
	YAxisZeroBased
	YAxisTight
	YAxisNice
)

func adjustValueExtent(extent [2]float64, mode YAxisMode) [2]float64 {
	min, max := extent[0], extent[1]
	if min == max {
		if min == 0 {
			return [2]float64{-1, 1}
		}
		padding := math.Abs(min) * 0.1
		return [2]float64{min - padding, max + padding}
	}
	if mode == YAxisZeroBased {
		if min > 0 {
			min = 0
		}
		if max < 0 {
			max = 0
		}
	}
	padding := (max - min) * 0.05
	return [2]float64{min - padding, max + padding}
}

func generateValueTicks(min, max float64, maxTicks int) []float64 {
	if min >= max {
		return []float64{min}
	}
	rawStep := (max - min) / float64(maxTicks-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rawStep)))
	var step float64
	if normalizedStep := rawStep / magnitude; normalizedStep <= 1 {
		step = magnitude
	} else if normalizedStep <= 2 {
		step = 2 * magnitude
	} else if normalizedStep <= 5 {
		step = 5 * magnitude
	} else {
		step = 10 * magnitude
	}
	start := math.Floor(min/step) * step
	var ticks []float64
	for tick := start; tick <= max+step/2; tick += step {
		if tick >= min-step/2 {
			ticks = append(ticks, tick)
		}
	}
	return ticks
}

func calculateOptimalPrecision(values []float64) int {
	if len(values) <= 1 {
		return 1
	}
	minDiff := math.Inf(1)
	for i := 1; i < len(values); i++ {
		diff := math.Abs(values[i] - values[i-1])
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	if minDiff > 0 && !math.IsInf(minDiff, 0) {
		precision := int(math.Max(0, -math.Floor(math.Log10(minDiff)))) + 1
		if precision > 8 {
			return 8
		}
		return precision
	}
	return 2
}

func formatValue(value float64, precision int) string {
	formatted := fmt.Sprintf("%."+fmt.Sprintf("%d", precision)+"f", value)
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	}
	if formatted == "" || formatted == "-" {
		return "0"
	}
	return formatted
}
